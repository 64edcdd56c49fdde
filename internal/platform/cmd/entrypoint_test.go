package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type siteTestConfig struct {
	HTTPAddr string `env:"CMD_TEST_HTTP_ADDR" envDefault:"localhost:6969"`
	DBDSN    string `env:"CMD_TEST_DB_DSN" envDefault:"site.db"`
}

func TestParseConfigDefaults(t *testing.T) {
	var cfg siteTestConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:6969" || cfg.DBDSN != "site.db" {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[siteTestConfig](nil); err == nil {
		t.Fatal("expected error for nil config target")
	}
}

func TestParseArgs(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	if err := ParseArgs(fs, nil); err != nil {
		t.Fatalf("ParseArgs(nil args) error = %v", err)
	}
	if err := ParseArgs(flag.NewFlagSet("site", flag.ContinueOnError), []string{"-unknown"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunWithTelemetryAndOptionsValidatesInputs(t *testing.T) {
	noop := func(context.Context) error { return nil }
	if err := RunWithTelemetryAndOptions(context.Background(), "  ", RunOptions{}, noop); err == nil {
		t.Fatal("expected error for blank service name")
	}
	if err := RunWithTelemetryAndOptions(context.Background(), ServiceSite, RunOptions{}, nil); err == nil {
		t.Fatal("expected error for nil run function")
	}
}

func TestRunWithTelemetryAndOptionsReturnsRunError(t *testing.T) {
	t.Setenv("SITE_OTEL_ENDPOINT", "")

	want := errors.New("listen failed")
	calls := 0
	err := RunWithTelemetryAndOptions(context.Background(), ServiceSite, RunOptions{}, func(context.Context) error {
		calls++
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetryAndOptions() error = %v, want %v", err, want)
	}
	if calls != 1 {
		t.Fatalf("run calls = %d, want 1", calls)
	}
}
