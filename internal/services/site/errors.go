package site

import (
	"net/http"

	apperrors "github.com/tsolutions/site/internal/platform/errors"
)

// writeFailure renders the status page for an unexpected error, choosing the
// status and message from the error's domain code.
func (a *app) writeFailure(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := apperrors.HTTPStatus(err)
	entry := a.log(r).WithError(err).WithField("code", apperrors.CodeOf(err))
	if status >= http.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Warn(msg)
	}
	a.writeError(w, r, status, failureKey(status))
}

func failureKey(status int) string {
	switch status {
	case http.StatusServiceUnavailable:
		return "error.session_unavailable"
	case http.StatusForbidden:
		return "error.forbidden_origin"
	case http.StatusNotFound:
		return "error.not_found"
	case http.StatusBadRequest:
		return "error.bad_request"
	default:
		return "error.internal"
	}
}
