package scenario

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {

	cfg, err := ParseConfig(flag.NewFlagSet("scenario", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.Assertions {
		t.Fatal("expected assertions to default to true")
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("locale = %q, want en-US", cfg.Locale)
	}
	if len(cfg.Scenarios) != 0 {
		t.Fatalf("scenarios = %v, want none", cfg.Scenarios)
	}
}

func TestParseConfigPaths(t *testing.T) {
	t.Setenv("NARRATIVE_DICE_SCENARIO_FILE", "env-a.lua,env-b.lua")

	cfg, err := ParseConfig(flag.NewFlagSet("scenario", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if strings.Join(cfg.Scenarios, ",") != "env-a.lua,env-b.lua" {
		t.Fatalf("scenarios = %v", cfg.Scenarios)
	}

	cfg, err = ParseConfig(flag.NewFlagSet("scenario", flag.ContinueOnError), []string{"-scenario", "flag.lua", "-assert=false", "extra.lua"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if strings.Join(cfg.Scenarios, ",") != "flag.lua,extra.lua" {
		t.Fatalf("scenarios = %v", cfg.Scenarios)
	}
	if cfg.Assertions {
		t.Fatal("expected assertions disabled")
	}
}

func TestRunRequiresScenario(t *testing.T) {
	if err := runScenarios(context.Background(), Config{}, nil, nil); err == nil {
		t.Fatal("expected error without scenario paths")
	}
}

func TestRunReportsEachScenario(t *testing.T) {
	dir := t.TempDir()
	passing := writeScenario(t, dir, "passing.lua", `local scene = Scenario.new("passing")
scene:pool("B")
scene:roll({faces = {2}})
scene:expect({success = 1})
return scene
`)
	failing := writeScenario(t, dir, "failing.lua", `local scene = Scenario.new("failing")
scene:pool("B")
scene:roll({faces = {2}})
scene:expect({failure = 1})
return scene
`)

	var out bytes.Buffer
	err := runScenarios(context.Background(), Config{
		Scenarios:  []string{passing, failing},
		Locale:     "en-US",
		Assertions: true,
	}, &out, nil)
	if err == nil {
		t.Fatal("expected failing scenario error")
	}
	if !strings.Contains(err.Error(), "1 of 2 scenarios failed") {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(out.String(), "ok   "+passing) || !strings.Contains(out.String(), "FAIL "+failing) {
		t.Fatalf("unexpected report:\n%s", out.String())
	}
}

func TestRunLogOnlyAssertions(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "soft.lua", `local scene = Scenario.new("soft")
scene:pool("B")
scene:roll({faces = {2}})
scene:expect({failure = 1})
return scene
`)

	var out, errOut bytes.Buffer
	if err := runScenarios(context.Background(), Config{Scenarios: []string{path}}, &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(errOut.String(), "assertion failed") {
		t.Fatalf("expected logged assertion, got %q", errOut.String())
	}
}

func writeScenario(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}
