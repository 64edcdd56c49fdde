// Package site parses site command configuration and runs the web server.
package site

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	entrypoint "github.com/tsolutions/site/internal/platform/cmd"
	"github.com/tsolutions/site/internal/platform/logging"
	"github.com/tsolutions/site/internal/platform/timeouts"
	server "github.com/tsolutions/site/internal/services/site"
	"github.com/tsolutions/site/internal/services/site/auth"
	"github.com/tsolutions/site/internal/services/site/platform/observability"
	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
	"github.com/tsolutions/site/internal/services/site/session"
	"github.com/tsolutions/site/internal/services/site/storage/sqlstore"
	"github.com/tsolutions/site/internal/services/site/templates"
)

// Session backends.
const (
	SessionBackendCookie = "cookie"
	SessionBackendRedis  = "redis"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr            string        `env:"SITE_HTTP_ADDR"             envDefault:"localhost:6969"`
	DBDriver            string        `env:"SITE_DB_DRIVER"             envDefault:"sqlite"`
	DBDSN               string        `env:"SITE_DB_DSN"                envDefault:"tsolutions-database.db"`
	AdminUsername       string        `env:"SITE_ADMIN_USERNAME"        envDefault:"tsolutions"`
	AdminPasswordHash   string        `env:"SITE_ADMIN_PASSWORD_HASH"`
	SessionBackend      string        `env:"SITE_SESSION_BACKEND"       envDefault:"cookie"`
	SessionSecret       string        `env:"SITE_SESSION_SECRET"`
	SessionTTL          time.Duration `env:"SITE_SESSION_TTL"           envDefault:"12h"`
	RedisAddr           string        `env:"SITE_REDIS_ADDR"            envDefault:"localhost:6379"`
	TrustForwardedProto bool          `env:"SITE_TRUST_FORWARDED_PROTO" envDefault:"false"`
	ContactEmail        string        `env:"SITE_CONTACT_EMAIL"         envDefault:"info@tsolutions.se"`
	ContactPhone        string        `env:"SITE_CONTACT_PHONE"`
	Logging             logging.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "site HTTP listen address")
	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "content database driver (sqlite or postgres)")
	fs.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "content database path or DSN")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "session backend (cookie or redis)")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the content database and serves the site until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSite, options, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger logrus.FieldLogger) error {
	verifier, err := auth.NewVerifier(cfg.AdminUsername, cfg.AdminPasswordHash)
	if err != nil {
		return fmt.Errorf("admin credentials: %w", err)
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	sessions, closeSessions, err := NewSessionStore(ctx, cfg, policy)
	if err != nil {
		return err
	}
	defer closeSessions()

	db, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open content database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("close content database")
		}
	}()

	srv, err := server.NewServer(ctx, server.Config{
		HTTPAddr:     cfg.HTTPAddr,
		Stores:       db.Stores(),
		Sessions:     sessions,
		Verifier:     verifier,
		Logger:       logger,
		Metrics:      observability.NewMetrics(),
		SchemePolicy: policy,
		Contact:      templates.ContactDetails{Email: cfg.ContactEmail, Phone: cfg.ContactPhone},
		Ping:         db.Ping,
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	logger.WithFields(logrus.Fields{
		"addr":            srv.Addr(),
		"db_driver":       cfg.DBDriver,
		"session_backend": cfg.SessionBackend,
	}).Info("site listening")
	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve site: %w", err)
	}
	return nil
}

// NewSessionStore builds the configured session backend. The returned close
// function releases backend connections.
func NewSessionStore(ctx context.Context, cfg Config, policy requestmeta.SchemePolicy) (session.Store, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.SessionBackend)) {
	case "", SessionBackendCookie:
		store, err := session.NewCookieStore([]byte(cfg.SessionSecret), cfg.SessionTTL, policy)
		if err != nil {
			return nil, nil, fmt.Errorf("cookie sessions: %w", err)
		}
		return store, func() {}, nil
	case SessionBackendRedis:
		if strings.TrimSpace(cfg.RedisAddr) == "" {
			return nil, nil, errors.New("redis sessions: SITE_REDIS_ADDR is required")
		}
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, timeouts.SessionBackend)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis sessions: ping %s: %w", cfg.RedisAddr, err)
		}
		return session.NewRedisStore(client, cfg.SessionTTL, policy), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported session backend %q", cfg.SessionBackend)
	}
}
