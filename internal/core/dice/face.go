package dice

import "strings"

// Face is one side of a die. It carries zero, one or two symbols.
type Face struct {
	n       int
	symbols [2]Symbol
}

// Blank is the face without symbols.
var Blank = Face{}

// One returns a face bearing a single symbol.
func One(s Symbol) Face {
	return Face{n: 1, symbols: [2]Symbol{s}}
}

// Two returns a face bearing two symbols. They may repeat.
func Two(a, b Symbol) Face {
	return Face{n: 2, symbols: [2]Symbol{a, b}}
}

// Symbols returns the symbols on the face in printed order.
func (f Face) Symbols() []Symbol {
	out := make([]Symbol, f.n)
	copy(out, f.symbols[:f.n])
	return out
}

// IsBlank reports whether the face has no symbols.
func (f Face) IsBlank() bool {
	return f.n == 0
}

func (f Face) String() string {
	if f.n == 0 {
		return "blank"
	}
	names := make([]string, 0, f.n)
	for _, s := range f.symbols[:f.n] {
		names = append(names, s.String())
	}
	return strings.Join(names, "+")
}
