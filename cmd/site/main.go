// Package main starts the marketing site and handles termination.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	sitecmd "github.com/tsolutions/site/internal/cmd/site"
	"github.com/tsolutions/site/internal/platform/config"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		config.Exitf("%v", err)
	}
	cfg, err := sitecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sitecmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exitf("%v", err)
	}
}
