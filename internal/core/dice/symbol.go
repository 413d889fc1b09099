package dice

// Symbol is an outcome marker printed on a die face.
type Symbol int

const (
	SymbolSuccess Symbol = iota
	SymbolAdvantage
	SymbolFailure
	SymbolThreat
	SymbolTriumph
	SymbolDespair
	SymbolLightSide
	SymbolDarkSide
)

// symbolCount is the size of the closed Symbol vocabulary.
const symbolCount = int(SymbolDarkSide) + 1

// Symbols returns every symbol in rendering priority order.
func Symbols() []Symbol {
	return []Symbol{
		SymbolSuccess,
		SymbolFailure,
		SymbolAdvantage,
		SymbolThreat,
		SymbolTriumph,
		SymbolDespair,
		SymbolLightSide,
		SymbolDarkSide,
	}
}

func (s Symbol) String() string {
	switch s {
	case SymbolSuccess:
		return "success"
	case SymbolAdvantage:
		return "advantage"
	case SymbolFailure:
		return "failure"
	case SymbolThreat:
		return "threat"
	case SymbolTriumph:
		return "triumph"
	case SymbolDespair:
		return "despair"
	case SymbolLightSide:
		return "lightside"
	case SymbolDarkSide:
		return "darkside"
	default:
		return "unknown"
	}
}

// ParseSymbol resolves a symbol from its lowercase name.
func ParseSymbol(name string) (Symbol, bool) {
	for s := Symbol(0); int(s) < symbolCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// implied returns the base symbol a compound symbol also scores as.
func (s Symbol) implied() (Symbol, bool) {
	switch s {
	case SymbolTriumph:
		return SymbolSuccess, true
	case SymbolDespair:
		return SymbolFailure, true
	default:
		return 0, false
	}
}

// opposedPair is a pair of symbols that cancel each other one for one.
type opposedPair struct {
	left, right Symbol
}

var opposedPairs = []opposedPair{
	{SymbolSuccess, SymbolFailure},
	{SymbolAdvantage, SymbolThreat},
	{SymbolLightSide, SymbolDarkSide},
}
