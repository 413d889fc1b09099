// Package check interprets a net dice result as the outcome of a skill check.
package check

import "github.com/louisbranch/narrative.dice/internal/core/dice"

// Succeeds reports whether at least one net success remains.
// This is the only pass condition of a narrative check.
func Succeeds(result dice.Result) bool {
	return result.Count(dice.SymbolSuccess) > 0
}

// Margin returns net successes minus net failures.
// Positive values indicate success, negative indicate failure.
func Margin(result dice.Result) int {
	return result.Count(dice.SymbolSuccess) - result.Count(dice.SymbolFailure)
}

// Side returns net advantages minus net threats.
func Side(result dice.Result) int {
	return result.Count(dice.SymbolAdvantage) - result.Count(dice.SymbolThreat)
}

// Result represents the outcome of a narrative check.
type Result struct {
	Success bool
	Margin  int
	// Advantage is net advantage when positive and net threat when negative.
	Advantage int
	Triumphs  int
	Despairs  int
}

// Check evaluates a net dice result.
func Check(result dice.Result) Result {
	return Result{
		Success:   Succeeds(result),
		Margin:    Margin(result),
		Advantage: Side(result),
		Triumphs:  result.Count(dice.SymbolTriumph),
		Despairs:  result.Count(dice.SymbolDespair),
	}
}

// Critical reports whether the check produced a triumph or a despair.
func (r Result) Critical() bool {
	return r.Triumphs > 0 || r.Despairs > 0
}
