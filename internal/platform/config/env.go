package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the namespace shared by every narrative.dice environment
// variable.
const EnvPrefix = "NARRATIVE_DICE_"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvPrefixed loads configuration whose env tags omit EnvPrefix, so
// a field tagged `env:"SEED"` reads NARRATIVE_DICE_SEED.
func ParseEnvPrefixed(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
