// Package numeric rolls plain numbered dice such as d10 and d100, which
// narrative tables use alongside the symbol dice for critical injuries and
// similar lookups.
package numeric

import (
	"errors"

	"github.com/louisbranch/narrative.dice/internal/core/dice"
)

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// MaxCount is the most dice a single Spec may roll.
const MaxCount = 100

// Kind names the numbered dice offered next to the symbol pool.
type Kind int

const (
	D10 Kind = iota
	D100
)

// Sides returns the number of sides for the kind.
func (k Kind) Sides() int {
	if k == D100 {
		return 100
	}
	return 10
}

func (k Kind) String() string {
	if k == D100 {
		return "d100"
	}
	return "d10"
}

// ParseKind resolves "d10" or "d100".
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "d10":
		return D10, true
	case "d100":
		return D100, true
	default:
		return 0, false
	}
}

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// Roll captures the results for a single dice spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result captures the results from rolling multiple specs.
type Result struct {
	Rolls []Roll
	Total int
}

// RollKind rolls a single die of the given kind, returning a value in
// [1, sides].
func RollKind(src dice.Source, kind Kind) int {
	return rollDie(src, kind.Sides())
}

// RollSpecs rolls every spec in order using src.
//
// Specs are processed in slice order and Result.Rolls keeps that order.
// Each Roll.Total is the sum of its Results and Result.Total is the sum of
// every die rolled.
//
//   - At least one Spec must be provided, otherwise ErrMissingDice.
//   - Each Spec must have Sides > 0 and 0 < Count <= MaxCount, otherwise
//     ErrInvalidDiceSpec.
func RollSpecs(src dice.Source, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 || spec.Count > MaxCount {
			return Result{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := 0; i < spec.Count; i++ {
			value := rollDie(src, spec.Sides)
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(src dice.Source, sides int) int {
	return src.Intn(sides) + 1
}
