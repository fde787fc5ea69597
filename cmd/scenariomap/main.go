// Package main provides a CLI rendering scenario maps from a content bundle.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/voidshard/condottieri/internal/platform/config"

	scenariomapcmd "github.com/voidshard/condottieri/internal/cmd/scenariomap"
)

func main() {
	cfg, err := scenariomapcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := scenariomapcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
