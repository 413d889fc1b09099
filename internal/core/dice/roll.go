package dice

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Source provides the random indices used to pick die faces.
//
// *math/rand.Rand satisfies Source. Implementations are not required to be
// safe for concurrent use; callers rolling from several goroutines must use
// one Source each or serialize access.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Roll is the face drawn from one die. Rolls are only produced by the
// engine, so the face always belongs to the die's own table.
type Roll struct {
	die   Die
	index int
}

// Die returns the die that produced the roll.
func (r Roll) Die() Die {
	return r.die
}

// Index returns the zero-based position of the face in the die's table.
func (r Roll) Index() int {
	return r.index
}

// Face returns the face drawn.
func (r Roll) Face() Face {
	return faceTables[r.die][r.index]
}

// Symbols returns the symbols the roll contributes.
func (r Roll) Symbols() []Symbol {
	return r.Face().Symbols()
}

// Aggregate returns the net result of this single roll.
func (r Roll) Aggregate() Result {
	return Aggregate(r)
}

func (r Roll) String() string {
	return fmt.Sprintf("%s:%s", r.die, r.Face())
}

// RollFace draws the face at index from the die's table. It is the pure
// form of Roll: callers supply the random index themselves.
//
// RollFace panics when index is outside the table; a face that does not
// belong to the die is an engine defect, not a user condition.
func (d Die) RollFace(index int) Roll {
	table := d.table()
	if index < 0 || index >= len(table) {
		panic(fmt.Sprintf("dice: face index %d out of range for %s die (%d faces)", index, d, len(table)))
	}
	return Roll{die: d, index: index}
}

// Roll draws one face uniformly at random. A nil src uses the package
// default source.
func (d Die) Roll(src Source) Roll {
	if src == nil {
		src = defaultSource
	}
	return d.RollFace(src.Intn(d.Sides()))
}

// PoolRoll is the ordered outcome of rolling every die in a pool.
type PoolRoll struct {
	rolls []Roll
}

// NewPoolRoll builds a pool roll from die rolls, keeping their order.
func NewPoolRoll(rolls ...Roll) PoolRoll {
	out := make([]Roll, len(rolls))
	copy(out, rolls)
	return PoolRoll{rolls: out}
}

// Rolls returns a copy of the die rolls in pool order.
func (p PoolRoll) Rolls() []Roll {
	out := make([]Roll, len(p.rolls))
	copy(out, p.rolls)
	return out
}

// Len returns the number of die rolls.
func (p PoolRoll) Len() int {
	return len(p.rolls)
}

// Symbols returns the concatenated symbols of every roll in pool order.
func (p PoolRoll) Symbols() []Symbol {
	var out []Symbol
	for _, r := range p.rolls {
		out = append(out, r.Symbols()...)
	}
	return out
}

// Aggregate returns the net result of the whole pool roll.
func (p PoolRoll) Aggregate() Result {
	return Aggregate(p.rolls...)
}

// lockedSource serializes access to a math/rand generator.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

var defaultSource Source = &lockedSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
