package site

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tsolutions/site/internal/services/site/platform/flash"
	"github.com/tsolutions/site/internal/services/site/platform/httpx"
	"github.com/tsolutions/site/internal/services/site/resource"
	"github.com/tsolutions/site/internal/services/site/templates"
)

// Mutation results reported to metrics.
const (
	resultOK           = "ok"
	resultRejected     = "rejected"
	resultUnauthorized = "unauthorized"
	resultError        = "error"
)

// resourceHandlers adapts one controller to HTTP.
type resourceHandlers struct {
	app        *app
	controller *resource.Controller
}

func (h resourceHandlers) list(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.controller.List(r.Context(), sessionFrom(r)))
}

func (h resourceHandlers) detail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	h.respond(w, r, h.controller.Get(r.Context(), sessionFrom(r), id))
}

func (h resourceHandlers) createForm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.controller.CreateForm(r.Context(), sessionFrom(r)))
}

func (h resourceHandlers) create(w http.ResponseWriter, r *http.Request) {
	if !h.app.parseForm(w, r) {
		return
	}
	out := h.controller.Create(r.Context(), sessionFrom(r), formValues(r))
	h.record("create", out)
	h.respond(w, r, out)
}

func (h resourceHandlers) editForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	h.respond(w, r, h.controller.EditForm(r.Context(), sessionFrom(r), id))
}

func (h resourceHandlers) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	if !h.app.parseForm(w, r) {
		return
	}
	out := h.controller.Update(r.Context(), sessionFrom(r), id, formValues(r))
	h.record("update", out)
	h.respond(w, r, out)
}

func (h resourceHandlers) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	out := h.controller.Delete(r.Context(), sessionFrom(r), id)
	h.record("delete", out)
	h.respond(w, r, out)
}

// respond turns a controller outcome into a redirect or a rendered page.
// Lookups that found nothing still render with 200.
func (h resourceHandlers) respond(w http.ResponseWriter, r *http.Request, out resource.Outcome) {
	if out.Err != nil {
		h.app.log(r).WithError(out.Err).WithField("kind", h.controller.Kind.Name).Error("content store failure")
	}
	if out.IsRedirect() {
		if out.Notice != "" {
			flash.Write(w, r, flash.Success(out.Notice), h.app.policy)
		}
		httpx.WriteRedirect(w, r, out.Redirect)
		return
	}
	page := h.app.page(w, r, h.controller.Kind.Title)
	h.app.writePage(w, r, http.StatusOK, page, templates.Resource(page, out.View))
}

func (h resourceHandlers) record(operation string, out resource.Outcome) {
	h.app.metrics.RecordMutation(h.controller.Kind.Name, operation, mutationResult(out))
}

func (h resourceHandlers) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.app.handleNotFound(w, r)
		return 0, false
	}
	return id, true
}

func mutationResult(out resource.Outcome) string {
	switch {
	case out.Err != nil:
		return resultError
	case out.Redirect == resource.LoginPath:
		return resultUnauthorized
	case out.IsRedirect():
		return resultOK
	default:
		for _, problem := range out.View.Problems {
			if problem.Code == resource.ProblemUnauthorized {
				return resultUnauthorized
			}
		}
		return resultRejected
	}
}

// formValues takes the first value of every posted key. The controller keeps
// only the fields its kind declares.
func formValues(r *http.Request) resource.Values {
	values := resource.Values{}
	for key, list := range r.PostForm {
		if len(list) > 0 {
			values[key] = list[0]
		}
	}
	return values
}
