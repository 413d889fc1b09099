// Package roll parses roll command flags and prints one pool roll.
package roll

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/narrative.dice/internal/core/check"
	"github.com/louisbranch/narrative.dice/internal/core/poolcode"
	entrypoint "github.com/louisbranch/narrative.dice/internal/platform/cmd"
	apperrors "github.com/louisbranch/narrative.dice/internal/platform/errors"
	"github.com/louisbranch/narrative.dice/internal/random"
	"github.com/louisbranch/narrative.dice/internal/render"
)

// Config holds roll command configuration.
type Config struct {
	Pool   string `env:"ROLL_POOL"`
	Seed   string `env:"ROLL_SEED"`
	Locale string `env:"LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into Config. A single
// positional argument is read as the pool code.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Pool, "pool", cfg.Pool, "pool code, one character per die (A P D C B S F)")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed for a replayable roll")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for rendered results")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 1 {
		return Config{}, errors.New("at most one pool code argument is accepted")
	}
	if fs.NArg() == 1 {
		cfg.Pool = fs.Arg(0)
	}
	return cfg, nil
}

// Run rolls the configured pool and writes the outcome to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRoll, func(context.Context) error {
		return roll(cfg, out, random.NewSeed)
	})
}

func roll(cfg Config, out io.Writer, newSeed func() (int64, error)) error {
	if out == nil {
		out = io.Discard
	}
	pool, skipped := poolcode.DecodeStrict(cfg.Pool)
	if len(skipped) > 0 {
		return apperrors.WithMetadata(apperrors.CodeDieUnknown, fmt.Sprintf("unknown pool character %q", string(skipped[0])),
			map[string]string{"die": string(skipped[0])})
	}
	if pool.IsEmpty() {
		return apperrors.New(apperrors.CodePoolEmpty, "pool is empty")
	}

	requested, err := random.ParseSeed(cfg.Seed)
	if err != nil {
		return err
	}
	seed, source, err := random.ResolveSeed(requested, newSeed)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(cfg.Locale)
	rolled := pool.Roll(random.NewSource(seed))
	result := rolled.Aggregate()
	outcome := check.Check(result)

	fmt.Fprintf(out, "pool: %s (%s)\n", renderer.Pool(pool), poolcode.Encode(pool))
	for _, dieRoll := range rolled.Rolls() {
		fmt.Fprintf(out, "  %s #%d: %s\n", renderer.Die(dieRoll.Die()), dieRoll.Index(), dieRoll.Face())
	}
	fmt.Fprintf(out, "result: %s\n", renderer.Format(result))
	fmt.Fprintf(out, "check: success=%t margin=%d\n", outcome.Success, outcome.Margin)
	fmt.Fprintf(out, "seed: %d (%s)\n", seed, source)
	return nil
}
