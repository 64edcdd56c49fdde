package site

import (
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
	"github.com/tsolutions/site/internal/services/site/session"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:6969" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" || cfg.DBDSN != "tsolutions-database.db" {
		t.Fatalf("expected default sqlite database, got %q %q", cfg.DBDriver, cfg.DBDSN)
	}
	if cfg.AdminUsername != "tsolutions" {
		t.Fatalf("expected default admin username, got %q", cfg.AdminUsername)
	}
	if cfg.SessionBackend != SessionBackendCookie {
		t.Fatalf("expected cookie sessions, got %q", cfg.SessionBackend)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("expected 12h session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected info log level, got %q", cfg.Logging.Level)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("SITE_HTTP_ADDR", "env-addr")
	t.Setenv("SITE_DB_DSN", "env.db")
	t.Setenv("SITE_SESSION_TTL", "30m")
	t.Setenv("SITE_TRUST_FORWARDED_PROTO", "true")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	args := []string{
		"-http-addr", "flag-addr",
		"-db-dsn", "flag.db",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBDSN != "flag.db" {
		t.Fatalf("expected flag db dsn, got %q", cfg.DBDSN)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected env session ttl, got %v", cfg.SessionTTL)
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("expected forwarded proto to be trusted")
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("SITE_SESSION_TTL", "soon")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestNewSessionStoreCookie(t *testing.T) {
	cfg := Config{SessionBackend: "cookie", SessionSecret: strings.Repeat("x", 32), SessionTTL: time.Hour}
	store, closeStore, err := NewSessionStore(context.Background(), cfg, requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("NewSessionStore() error = %v", err)
	}
	defer closeStore()
	if _, ok := store.(*session.CookieStore); !ok {
		t.Fatalf("store = %T, want *session.CookieStore", store)
	}

	cfg.SessionSecret = "short"
	if _, _, err := NewSessionStore(context.Background(), cfg, requestmeta.SchemePolicy{}); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestNewSessionStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := Config{SessionBackend: "redis", RedisAddr: mr.Addr(), SessionTTL: time.Hour}
	store, closeStore, err := NewSessionStore(context.Background(), cfg, requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("NewSessionStore() error = %v", err)
	}
	defer closeStore()
	if _, ok := store.(*session.RedisStore); !ok {
		t.Fatalf("store = %T, want *session.RedisStore", store)
	}
}

func TestNewSessionStoreRejectsUnknownBackend(t *testing.T) {
	cfg := Config{SessionBackend: "memcached"}
	if _, _, err := NewSessionStore(context.Background(), cfg, requestmeta.SchemePolicy{}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestRunRejectsMissingPasswordHash(t *testing.T) {
	t.Setenv("SITE_OTEL_ENDPOINT", "")
	cfg := Config{
		HTTPAddr:       "127.0.0.1:0",
		AdminUsername:  "tsolutions",
		SessionBackend: "cookie",
		SessionSecret:  strings.Repeat("x", 32),
		DBDSN:          t.TempDir() + "/site.db",
	}
	if err := Run(context.Background(), cfg); err == nil {
		t.Fatal("expected error without admin password hash")
	}
}
