package site

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"

	apperrors "github.com/tsolutions/site/internal/platform/errors"
	"github.com/tsolutions/site/internal/services/site/i18n"
	"github.com/tsolutions/site/internal/services/site/platform/flash"
	"github.com/tsolutions/site/internal/services/site/platform/httpx"
	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
	"github.com/tsolutions/site/internal/services/site/platform/sessioncookie"
	"github.com/tsolutions/site/internal/services/site/session"
	"github.com/tsolutions/site/internal/services/site/templates"
)

type sessionContextKey struct{}

// sessionFrom returns the session loaded by withSession, or Anonymous.
func sessionFrom(r *http.Request) session.Session {
	if r == nil {
		return session.Anonymous
	}
	s, ok := r.Context().Value(sessionContextKey{}).(session.Session)
	if !ok {
		return session.Anonymous
	}
	return s
}

// withSession loads the caller session once per request. A session backend
// failure stops the request rather than treating the caller as logged out.
func (a *app) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := a.sessions.Load(r)
		if err != nil {
			a.writeFailure(w, r, err, "load session")
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey{}, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSameOrigin rejects cross-site form posts that would ride on an
// existing session cookie.
func (a *app) requireSameOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if _, ok := sessioncookie.Read(r); ok && !a.checkOrigin(w, r) {
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// requireOriginProof rejects any cross-site post, cookie or not. The login
// form uses it so another site cannot sign a visitor in.
func (a *app) requireOriginProof(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && !a.checkOrigin(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *app) checkOrigin(w http.ResponseWriter, r *http.Request) bool {
	if requestmeta.SameOrigin(r, a.policy) {
		return true
	}
	a.writeFailure(w, r, apperrors.New(apperrors.CodeForbidden, "cross-origin post rejected"), "same-origin check")
	return false
}

// page resolves the per-request layout state: language, session and any
// pending flash notice.
func (a *app) page(w http.ResponseWriter, r *http.Request, title string) templates.Page {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	printer := i18n.Printer(tag)
	page := templates.Page{
		Title:    title,
		Lang:     tag.String(),
		Path:     r.URL.Path,
		LoggedIn: sessionFrom(r).LoggedIn,
		Printer:  printer,
	}
	if notice, ok := flash.ReadAndClear(w, r, a.policy); ok {
		page.Notice = &templates.Notice{Kind: string(notice.Kind), Message: printer.Sprintf(notice.Key)}
	}
	return page
}

// writePage renders body inside the layout. Rendering is buffered so a
// template failure still produces a clean 500.
func (a *app) writePage(w http.ResponseWriter, r *http.Request, status int, page templates.Page, body templ.Component) {
	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := templates.Layout(page).Render(ctx, &buf); err != nil {
		a.log(r).WithError(err).Error("render page")
		_ = httpx.WriteText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	if err := httpx.WriteHTML(w, status, buf.Bytes()); err != nil {
		a.log(r).WithError(err).Debug("write page")
	}
}

func (a *app) writeError(w http.ResponseWriter, r *http.Request, status int, key string) {
	page := a.page(w, r, key)
	a.writePage(w, r, status, page, templates.Error(page, key))
}

func (a *app) log(r *http.Request) *logrus.Entry {
	return a.logger.WithFields(logrus.Fields{
		"path":       r.URL.Path,
		"request_id": httpx.RequestIDOf(r),
	})
}
