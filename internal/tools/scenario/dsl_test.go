package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPoolChainingCreatesSteps(t *testing.T) {
	path := writeScenarioFixture(t, `-- Setup
local scene = Scenario.new("chain")
scene:pool("A"):add("difficulty"):add("boost", 2):remove("ability")

-- Roll
scene:roll({faces = {0, 1, 2}})
scene:expect({success = 1})

return scene
`)

	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "chain" {
		t.Fatalf("name = %q, want chain", scenario.Name)
	}
	kinds := make([]string, 0, len(scenario.Steps))
	for _, step := range scenario.Steps {
		kinds = append(kinds, step.Kind)
	}
	if got, want := strings.Join(kinds, ","), "pool,add,add,remove,roll,expect"; got != want {
		t.Fatalf("steps = %s, want %s", got, want)
	}

	boost := scenario.Steps[2]
	if boost.Args["die"] != "boost" || boost.Args["count"] != 2 {
		t.Fatalf("boost args = %v", boost.Args)
	}
	faces, ok := scenario.Steps[4].Args["faces"].([]any)
	if !ok || len(faces) != 3 || faces[2] != 2 {
		t.Fatalf("faces = %#v", scenario.Steps[4].Args["faces"])
	}
	if scenario.Steps[5].Args["success"] != 1 {
		t.Fatalf("expect args = %v", scenario.Steps[5].Args)
	}
}

func TestScenarioNameDefaultsToFileName(t *testing.T) {
	path := writeScenarioFixture(t, `return Scenario.new()`)

	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "scenario" {
		t.Fatalf("name = %q, want scenario", scenario.Name)
	}
}

func TestScenarioMustBeReturned(t *testing.T) {
	_, err := LoadScenario(`local scene = Scenario.new("lost")`)
	if err == nil {
		t.Fatal("expected error when script returns nothing")
	}
	if !strings.Contains(err.Error(), "must return Scenario") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScenarioAddRejectsNonPositiveCount(t *testing.T) {
	_, err := LoadScenario(`
local scene = Scenario.new("bad")
scene:add("ability", 0)
return scene
`)
	if err == nil {
		t.Fatal("expected error for zero count")
	}
}

func TestScenarioExpectRequiresTable(t *testing.T) {
	_, err := LoadScenario(`
local scene = Scenario.new("bad")
scene:expect("success")
return scene
`)
	if err == nil {
		t.Fatal("expected error for non-table expect")
	}
}

func TestExpectTextKeepsLocale(t *testing.T) {
	scenario, err := LoadScenario(`
local scene = Scenario.new("text")
scene:expect_text("<vazio>", "pt-BR")
return scene
`)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	step := scenario.Steps[0]
	if step.Args["text"] != "<vazio>" || step.Args["locale"] != "pt-BR" {
		t.Fatalf("args = %v", step.Args)
	}
}

func writeScenarioFixture(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.lua")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}
