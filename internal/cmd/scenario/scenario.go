// Package scenario parses scenario command flags and runs Lua dice scripts.
package scenario

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	entrypoint "github.com/louisbranch/narrative.dice/internal/platform/cmd"
	"github.com/louisbranch/narrative.dice/internal/tools/scenario"
)

// Config holds scenario command configuration.
type Config struct {
	Scenarios  []string `env:"SCENARIO_FILE" envSeparator:","`
	Locale     string   `env:"LOCALE" envDefault:"en-US"`
	Assertions bool     `env:"SCENARIO_ASSERT" envDefault:"true"`
	Verbose    bool     `env:"SCENARIO_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config. Positional
// arguments are scenario paths and are run after any -scenario path.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	var path string
	fs.StringVar(&path, "scenario", "", "path to scenario lua file")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "default locale for expect_text steps")
	fs.BoolVar(&cfg.Assertions, "assert", cfg.Assertions, "enable assertions (disable to log expectations)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if path != "" || fs.NArg() > 0 {
		cfg.Scenarios = nil
		if path != "" {
			cfg.Scenarios = append(cfg.Scenarios, path)
		}
		cfg.Scenarios = append(cfg.Scenarios, fs.Args()...)
	}
	return cfg, nil
}

// Run executes every configured scenario and reports the ones that failed.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScenario, func(ctx context.Context) error {
		return runScenarios(ctx, cfg, out, errOut)
	})
}

func runScenarios(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if len(cfg.Scenarios) == 0 {
		return errors.New("scenario path is required")
	}

	mode := scenario.AssertionStrict
	if !cfg.Assertions {
		mode = scenario.AssertionLogOnly
	}
	runCfg := scenario.Config{
		Locale:     cfg.Locale,
		Assertions: mode,
		Verbose:    cfg.Verbose,
		Logger:     log.New(errOut, "", 0),
	}

	var failed []error
	for _, path := range cfg.Scenarios {
		if err := scenario.RunFile(ctx, runCfg, path); err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			failed = append(failed, fmt.Errorf("%s: %w", path, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", path)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d scenarios failed: %w", len(failed), len(cfg.Scenarios), errors.Join(failed...))
	}
	return nil
}
