package dice

import "strings"

// Die identifies a kind of narrative die. The declaration order is the
// canonical pool order.
type Die int

const (
	DieAbility Die = iota
	DieProficiency
	DieDifficulty
	DieChallenge
	DieBoost
	DieSetback
	DieForce
)

const dieCount = int(DieForce) + 1

// Dice returns every die kind in canonical order.
func Dice() []Die {
	out := make([]Die, dieCount)
	for i := range out {
		out[i] = Die(i)
	}
	return out
}

// Valid reports whether d is a known die kind.
func (d Die) Valid() bool {
	return d >= 0 && int(d) < dieCount
}

func (d Die) String() string {
	switch d {
	case DieAbility:
		return "ability"
	case DieProficiency:
		return "proficiency"
	case DieDifficulty:
		return "difficulty"
	case DieChallenge:
		return "challenge"
	case DieBoost:
		return "boost"
	case DieSetback:
		return "setback"
	case DieForce:
		return "force"
	default:
		return "unknown"
	}
}

// ParseDie resolves a die kind from its name, ignoring case and
// surrounding whitespace.
func ParseDie(name string) (Die, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range Dice() {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// Faces returns a copy of the die's face table.
func (d Die) Faces() []Face {
	table := d.table()
	out := make([]Face, len(table))
	copy(out, table)
	return out
}

// Sides returns the number of faces on the die.
func (d Die) Sides() int {
	return len(d.table())
}

func (d Die) table() []Face {
	if !d.Valid() {
		panic("dice: unknown die kind")
	}
	return faceTables[d]
}

// faceTables reproduces the published face distribution of each die.
var faceTables = [dieCount][]Face{
	DieAbility: {
		Blank,
		One(SymbolSuccess),
		Two(SymbolSuccess, SymbolSuccess),
		One(SymbolAdvantage),
		Two(SymbolAdvantage, SymbolAdvantage),
		One(SymbolSuccess),
		Two(SymbolAdvantage, SymbolSuccess),
		One(SymbolAdvantage),
	},
	DieProficiency: {
		Blank,
		One(SymbolSuccess),
		One(SymbolSuccess),
		One(SymbolTriumph),
		Two(SymbolSuccess, SymbolSuccess),
		Two(SymbolSuccess, SymbolSuccess),
		Two(SymbolAdvantage, SymbolAdvantage),
		Two(SymbolAdvantage, SymbolAdvantage),
		One(SymbolAdvantage),
		Two(SymbolSuccess, SymbolAdvantage),
		Two(SymbolSuccess, SymbolAdvantage),
		Two(SymbolSuccess, SymbolAdvantage),
	},
	DieDifficulty: {
		Blank,
		Two(SymbolFailure, SymbolFailure),
		One(SymbolThreat),
		Two(SymbolFailure, SymbolThreat),
		Two(SymbolThreat, SymbolThreat),
		One(SymbolThreat),
		One(SymbolFailure),
		One(SymbolThreat),
	},
	DieChallenge: {
		Blank,
		One(SymbolFailure),
		One(SymbolFailure),
		One(SymbolThreat),
		One(SymbolThreat),
		One(SymbolDespair),
		Two(SymbolThreat, SymbolThreat),
		Two(SymbolThreat, SymbolThreat),
		Two(SymbolFailure, SymbolFailure),
		Two(SymbolFailure, SymbolFailure),
		Two(SymbolFailure, SymbolThreat),
		Two(SymbolFailure, SymbolThreat),
	},
	DieBoost: {
		Blank,
		Blank,
		One(SymbolSuccess),
		One(SymbolAdvantage),
		Two(SymbolSuccess, SymbolAdvantage),
		Two(SymbolAdvantage, SymbolAdvantage),
	},
	DieSetback: {
		Blank,
		Blank,
		One(SymbolFailure),
		One(SymbolFailure),
		One(SymbolThreat),
		One(SymbolThreat),
	},
	DieForce: {
		One(SymbolLightSide),
		One(SymbolLightSide),
		One(SymbolDarkSide),
		One(SymbolDarkSide),
		One(SymbolDarkSide),
		One(SymbolDarkSide),
		One(SymbolDarkSide),
		One(SymbolDarkSide),
		Two(SymbolLightSide, SymbolLightSide),
		Two(SymbolLightSide, SymbolLightSide),
		Two(SymbolLightSide, SymbolLightSide),
		Two(SymbolDarkSide, SymbolDarkSide),
	},
}
