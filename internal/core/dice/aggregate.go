package dice

import (
	"fmt"
	"maps"
	"strings"
)

// BlankLabel is the rendering of a result without symbols.
const BlankLabel = "<blank>"

// Counts maps symbols to how many times they were scored.
type Counts map[Symbol]int

// Result is the net outcome of a roll after cancellation. Zero counts are
// never stored, and at most one side of each opposed pair is present.
type Result struct {
	counts Counts
}

// Aggregate reduces die rolls to their net result.
func Aggregate(rolls ...Roll) Result {
	return Result{counts: Cancel(Tally(rolls...))}
}

// Tally counts every symbol of every roll. A triumph also scores a success
// and a despair also scores a failure.
func Tally(rolls ...Roll) Counts {
	counts := Counts{}
	for _, r := range rolls {
		for _, s := range r.Symbols() {
			counts[s]++
			if base, ok := s.implied(); ok {
				counts[base]++
			}
		}
	}
	return counts
}

// Cancel nets each opposed pair against each other one for one and drops
// zero entries. The input is not modified. Triumph and despair are never
// cancelled themselves.
func Cancel(counts Counts) Counts {
	out := Counts{}
	for s, n := range counts {
		if n > 0 {
			out[s] = n
		}
	}
	for _, pair := range opposedPairs {
		left, right := out[pair.left], out[pair.right]
		if left == 0 || right == 0 {
			continue
		}
		switch {
		case left > right:
			out[pair.left] = left - right
			delete(out, pair.right)
		case right > left:
			out[pair.right] = right - left
			delete(out, pair.left)
		default:
			delete(out, pair.left)
			delete(out, pair.right)
		}
	}
	return out
}

// Count returns the net count for s; absent symbols count zero.
func (r Result) Count(s Symbol) int {
	return r.counts[s]
}

// Counts returns a copy of the non-zero counts.
func (r Result) Counts() Counts {
	out := Counts{}
	maps.Copy(out, r.counts)
	return out
}

// Symbols returns the symbols present in the result, in priority order.
func (r Result) Symbols() []Symbol {
	present := make([]Symbol, 0, len(r.counts))
	for _, s := range Symbols() {
		if r.counts[s] > 0 {
			present = append(present, s)
		}
	}
	return present
}

// IsBlank reports whether the result holds no symbols.
func (r Result) IsBlank() bool {
	return len(r.counts) == 0
}

// Equal reports whether both results hold the same counts.
func (r Result) Equal(other Result) bool {
	return maps.Equal(r.counts, other.counts)
}

func (r Result) String() string {
	return Format(r)
}

// Format renders the result in symbol priority order, for example
// "2 Successes, 1 Threat". A blank result renders as BlankLabel.
func Format(r Result) string {
	if r.IsBlank() {
		return BlankLabel
	}
	phrases := make([]string, 0, len(r.counts))
	for _, s := range r.Symbols() {
		n := r.counts[s]
		phrases = append(phrases, fmt.Sprintf("%d %s", n, Label(s, n)))
	}
	return strings.Join(phrases, ", ")
}

// Label returns the English name of s, pluralized for n.
func Label(s Symbol, n int) string {
	singular, plural := symbolLabels(s)
	if n == 1 {
		return singular
	}
	return plural
}

func symbolLabels(s Symbol) (string, string) {
	switch s {
	case SymbolSuccess:
		return "Success", "Successes"
	case SymbolAdvantage:
		return "Advantage", "Advantages"
	case SymbolFailure:
		return "Failure", "Failures"
	case SymbolThreat:
		return "Threat", "Threats"
	case SymbolTriumph:
		return "Triumph", "Triumphs"
	case SymbolDespair:
		return "Despair", "Despairs"
	case SymbolLightSide:
		return "Light Side", "Light Sides"
	case SymbolDarkSide:
		return "Dark Side", "Dark Sides"
	default:
		return "Unknown", "Unknown"
	}
}
