package scenario

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/louisbranch/narrative.dice/internal/core/dice"
	apperrors "github.com/louisbranch/narrative.dice/internal/platform/errors"
)

// fixedSource always draws the same face index.
type fixedSource struct {
	index int
}

func (s fixedSource) Intn(n int) int {
	return s.index % n
}

func newTestRunner(t *testing.T, mode AssertionMode) (*Runner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	deps := runnerDeps{
		newSource: func(int64) dice.Source { return fixedSource{} },
		newSeed:   func() (int64, error) { return 99, nil },
	}
	cfg := DefaultConfig()
	cfg.Assertions = mode
	cfg.Logger = log.New(&buf, "", 0)
	cfg.Verbose = true
	return newRunnerWithDeps(cfg, deps), &buf
}

func runSource(t *testing.T, runner *Runner, source string) error {
	t.Helper()
	scenario, err := LoadScenario(source)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	return runner.RunScenario(context.Background(), scenario)
}

func TestRunPinnedFacesScenario(t *testing.T) {
	runner, _ := newTestRunner(t, AssertionStrict)
	err := runSource(t, runner, `
local scene = Scenario.new("opposed")
scene:pool("DA")
scene:expect_pool("AD")
scene:roll({faces = {2, 2}})
scene:expect({success = 2, threat = 1})
scene:expect_text("2 Successes, 1 Threat")
scene:expect_text("2 Sucessos, 1 Ameaça", "pt-BR")
scene:expect_check({success = true, margin = 2, advantage = -1, critical = false})
return scene
`)
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
}

func TestRunTriumphAndDespair(t *testing.T) {
	runner, _ := newTestRunner(t, AssertionStrict)
	err := runSource(t, runner, `
local scene = Scenario.new("critical")
scene:add("proficiency"):add("challenge")
scene:roll({faces = {3, 5}})
scene:expect({triumph = 1, despair = 1})
scene:expect_text("1 Triumph, 1 Despair")
scene:expect_check({success = false, margin = 0, triumph = 1, despair = 1, critical = true})
return scene
`)
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
}

func TestRunSeededRollUsesSource(t *testing.T) {
	runner, buf := newTestRunner(t, AssertionStrict)
	err := runSource(t, runner, `
local scene = Scenario.new("seeded")
scene:pool("AD")
scene:roll({seed = 7})
scene:expect({})
scene:expect_text("<blank>")
scene:roll()
scene:expect_text("<blank>")
return scene
`)
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
	logs := buf.String()
	if !strings.Contains(logs, "seed=7 (client)") {
		t.Fatalf("expected client seed in logs, got:\n%s", logs)
	}
	if !strings.Contains(logs, "seed=99 (server)") {
		t.Fatalf("expected server seed in logs, got:\n%s", logs)
	}
}

func TestRunStrictAssertionFails(t *testing.T) {
	runner, _ := newTestRunner(t, AssertionStrict)
	err := runSource(t, runner, `
local scene = Scenario.new("wrong")
scene:pool("A")
scene:roll({faces = {1}})
scene:expect({success = 2})
return scene
`)
	if err == nil {
		t.Fatal("expected assertion failure")
	}
	if !strings.Contains(err.Error(), "step 3 (expect)") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "success = 1, want 2") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunLogOnlyAssertionContinues(t *testing.T) {
	runner, buf := newTestRunner(t, AssertionLogOnly)
	err := runSource(t, runner, `
local scene = Scenario.new("lenient")
scene:pool("A")
scene:roll({faces = {1}})
scene:expect_text("3 Successes")
scene:expect_pool("AA")
return scene
`)
	if err != nil {
		t.Fatalf("expected log-only run to pass, got %v", err)
	}
	logs := buf.String()
	if strings.Count(logs, "assertion failed:") != 2 {
		t.Fatalf("expected two logged assertions, got:\n%s", logs)
	}
}

func TestRunScriptErrorsAlwaysFail(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name: "expect before roll",
			source: `local scene = Scenario.new()
scene:expect({success = 1})
return scene`,
			want: "expect before roll",
		},
		{
			name: "face count mismatch",
			source: `local scene = Scenario.new()
scene:pool("AD")
scene:roll({faces = {1}})
return scene`,
			want: "got 1 indexes for 2 dice",
		},
		{
			name: "face out of range",
			source: `local scene = Scenario.new()
scene:pool("B")
scene:roll({faces = {6}})
return scene`,
			want: "out of range for boost die",
		},
		{
			name: "unknown symbol",
			source: `local scene = Scenario.new()
scene:roll({faces = {}})
scene:expect({glory = 1})
return scene`,
			want: `unknown symbol "glory"`,
		},
		{
			name: "unknown check field",
			source: `local scene = Scenario.new()
scene:roll({faces = {}})
scene:expect_check({luck = 1})
return scene`,
			want: `unknown check field "luck"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runner, _ := newTestRunner(t, AssertionLogOnly)
			err := runSource(t, runner, tc.source)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestRunUnknownDieIsCoded(t *testing.T) {
	runner, _ := newTestRunner(t, AssertionStrict)
	err := runSource(t, runner, `
local scene = Scenario.new()
scene:add("purple")
return scene
`)
	if !errors.Is(err, &apperrors.Error{Code: apperrors.CodeDieUnknown}) {
		t.Fatalf("expected DIE_UNKNOWN, got %v", err)
	}
}

func TestRunEmptyPoolRollIsBlank(t *testing.T) {
	runner, _ := newTestRunner(t, AssertionStrict)
	err := runSource(t, runner, `
local scene = Scenario.new()
scene:pool("AP"):clear()
scene:expect_pool("")
scene:roll({faces = {}})
scene:expect_text("<blank>")
scene:expect_check({success = false, margin = 0})
return scene
`)
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
}

func TestRunScenarioRequiresScenario(t *testing.T) {
	runner, _ := newTestRunner(t, AssertionStrict)
	if err := runner.RunScenario(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil scenario")
	}
}

func TestRunScenarioStopsOnCancelledContext(t *testing.T) {
	runner, _ := newTestRunner(t, AssertionStrict)
	scenario := &Scenario{Name: "cancelled", Steps: []Step{{Kind: "clear"}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runner.RunScenario(ctx, scenario); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
