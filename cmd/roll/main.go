// Package main rolls a dice pool from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	rollcmd "github.com/louisbranch/narrative.dice/internal/cmd/roll"
	"github.com/louisbranch/narrative.dice/internal/platform/config"
	apperrors "github.com/louisbranch/narrative.dice/internal/platform/errors"
)

func main() {
	cfg, err := rollcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitUsagef("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rollcmd.Run(ctx, cfg, os.Stdout); err != nil {
		if apperrors.CodeOf(err).InvalidInput() {
			config.ExitUsagef("Error: %s", apperrors.UserMessage(err, cfg.Locale))
		}
		config.Exitf("Error: %v", err)
	}
}
