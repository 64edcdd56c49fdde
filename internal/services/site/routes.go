package site

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/tsolutions/site/internal/services/site/auth"
	"github.com/tsolutions/site/internal/services/site/platform/httpx"
	"github.com/tsolutions/site/internal/services/site/platform/observability"
	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
	"github.com/tsolutions/site/internal/services/site/resource"
	"github.com/tsolutions/site/internal/services/site/session"
	"github.com/tsolutions/site/internal/services/site/static"
	"github.com/tsolutions/site/internal/services/site/templates"
)

// idPattern keeps non-numeric ids from ever matching a resource route.
const idPattern = "/{id:[0-9]+}"

type app struct {
	sessions    session.Store
	verifier    *auth.Verifier
	logger      logrus.FieldLogger
	metrics     *observability.Metrics
	policy      requestmeta.SchemePolicy
	contact     templates.ContactDetails
	ping        func(context.Context) error
	controllers []*resource.Controller
}

func (a *app) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(
		httpx.RequestID(),
		httpx.RecoverPanic(a.logger),
		middleware.StripSlashes,
		observability.Tracing(),
	)
	if a.metrics != nil {
		router.Use(a.metrics.Middleware())
	}
	router.Use(observability.RequestLogger(a.logger))

	router.NotFound(a.handleNotFound)
	router.MethodNotAllowed(a.handleMethodNotAllowed)

	router.Get("/healthz", a.handleHealth)
	if a.metrics != nil {
		router.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}
	router.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.FS(static.FS))))

	router.Group(func(r chi.Router) {
		r.Use(a.requireSameOrigin, a.withSession)

		r.Get("/", a.handleHome)
		r.Get("/about", a.handleAbout)
		r.Get("/contact", a.handleContact)

		r.Get(resource.LoginPath, a.handleLoginPage)
		r.With(a.requireOriginProof).Post(resource.LoginPath, a.handleLogin)
		r.Post("/logout", a.handleLogout)

		for _, controller := range a.controllers {
			mountResource(r, resourceHandlers{app: a, controller: controller})
		}
	})
	return router
}

// mountResource serves a kind under both the plural-prefixed paths and the
// older singular forms, e.g. /services/update/3 and /update-service/3.
func mountResource(r chi.Router, h resourceHandlers) {
	kind := h.controller.Kind
	plural := kind.ListPath()
	singular := "/" + kind.Name

	r.Get(plural, h.list)
	for _, path := range []string{plural + "/create", plural + "/create-" + kind.Name, "/create-" + kind.Name} {
		r.Get(path, h.createForm)
		r.Post(path, h.create)
	}
	for _, path := range []string{plural + idPattern, singular + idPattern} {
		r.Get(path, h.detail)
	}
	for _, path := range []string{plural + "/update" + idPattern, "/update-" + kind.Name + idPattern} {
		r.Get(path, h.editForm)
		r.Post(path, h.update)
	}
	for _, path := range []string{plural + "/delete" + idPattern, singular + "/delete" + idPattern} {
		r.Post(path, h.delete)
	}
}
