// Package cmd holds the startup plumbing shared by every narrative.dice
// command: env-then-flags configuration and a telemetry-wrapped run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/louisbranch/narrative.dice/internal/platform/config"
	"github.com/louisbranch/narrative.dice/internal/platform/otel"
	"github.com/louisbranch/narrative.dice/internal/platform/timeouts"
)

// Service names double as the otel service.name of each command.
const (
	ServiceMCP      = "mcp"
	ServiceRoll     = "roll"
	ServiceScenario = "scenario"
	ServiceWeb      = "web"
)

// ParseConfig loads environment defaults into cfg. Env tags are read
// under config.EnvPrefix.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnvPrefixed(cfg)
}

// ParseArgs parses command-line flags over the env defaults already bound
// to fs.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for service, runs run and flushes spans
// on the way out, even when run fails.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer flush(service, shutdown)
	return run(ctx)
}

func flush(service string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Telemetry)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s otel shutdown: %v", service, err)
	}
}
