// Package site hosts the public marketing site and its admin content pages.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tsolutions/site/internal/platform/timeouts"
	"github.com/tsolutions/site/internal/services/site/auth"
	"github.com/tsolutions/site/internal/services/site/platform/observability"
	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
	"github.com/tsolutions/site/internal/services/site/resource"
	"github.com/tsolutions/site/internal/services/site/session"
	"github.com/tsolutions/site/internal/services/site/storage"
	"github.com/tsolutions/site/internal/services/site/templates"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr string
	// Stores holds one store per resource kind, keyed by plural name.
	Stores   map[string]storage.Store
	Sessions session.Store
	Verifier *auth.Verifier
	Logger   logrus.FieldLogger
	// Metrics is optional; nil disables /metrics.
	Metrics      *observability.Metrics
	SchemePolicy requestmeta.SchemePolicy
	Contact      templates.ContactDetails
	// Ping backs /healthz. Nil always reports healthy.
	Ping func(context.Context) error
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from cfg.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if cfg.Verifier == nil {
		return nil, errors.New("credential verifier is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	controllers := make([]*resource.Controller, 0, len(resource.Kinds()))
	for _, kind := range resource.Kinds() {
		store, ok := cfg.Stores[kind.Plural]
		if !ok || store == nil {
			return nil, fmt.Errorf("store for %s is required", kind.Plural)
		}
		controllers = append(controllers, resource.NewController(kind, store))
	}
	a := &app{
		sessions:    cfg.Sessions,
		verifier:    cfg.Verifier,
		logger:      logger,
		metrics:     cfg.Metrics,
		policy:      cfg.SchemePolicy,
		contact:     cfg.Contact,
		ping:        cfg.Ping,
		controllers: controllers,
	}
	return a.routes(), nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
