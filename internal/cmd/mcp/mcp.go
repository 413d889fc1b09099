// Package mcp launches the dice MCP server on stdio.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/narrative.dice/internal/platform/cmd"
	"github.com/louisbranch/narrative.dice/internal/services/mcp/service"
)

// Config holds MCP command configuration. The server speaks stdio only, so
// there is nothing to configure beyond the shared environment.
type Config struct{}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves MCP over stdio until ctx is cancelled or the client disconnects.
func Run(ctx context.Context, _ Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, service.Run)
}
