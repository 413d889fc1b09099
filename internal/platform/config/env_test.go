package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"NARRATIVE_DICE_TEST_PORT" envDefault:"123"`
}

type prefixedTestConfig struct {
	Locale string `env:"TEST_LOCALE" envDefault:"en-US"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NARRATIVE_DICE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvPrefixed(t *testing.T) {
	t.Setenv("NARRATIVE_DICE_TEST_LOCALE", "pt-BR")
	t.Setenv("TEST_LOCALE", "fr-FR")

	var cfg prefixedTestConfig
	if err := ParseEnvPrefixed(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected prefixed locale pt-BR, got %q", cfg.Locale)
	}
}
