package dice

import (
	"iter"
	"slices"
	"strings"
)

// Pool is an ordered multiset of dice awaiting a roll. The dice are kept in
// canonical order after every mutation, so two pools holding the same dice
// compare and display identically.
//
// Pool is a value: copying a Pool and mutating the copy never affects the
// original.
type Pool struct {
	dice []Die
}

// EmptyPool returns a pool without dice.
func EmptyPool() Pool {
	return Pool{}
}

// NewPool returns a pool holding the given dice in canonical order.
func NewPool(dice ...Die) Pool {
	for _, d := range dice {
		if !d.Valid() {
			panic("dice: unknown die kind")
		}
	}
	p := Pool{dice: slices.Clone(dice)}
	slices.Sort(p.dice)
	return p
}

// Add puts a die into the pool.
func (p *Pool) Add(d Die) {
	if !d.Valid() {
		panic("dice: unknown die kind")
	}
	// Copy on write keeps earlier copies of the pool untouched.
	next := make([]Die, len(p.dice), len(p.dice)+1)
	copy(next, p.dice)
	next = append(next, d)
	slices.Sort(next)
	p.dice = next
}

// Remove takes the first die equal to d out of the pool. Removing a die the
// pool does not hold is a no-op.
func (p *Pool) Remove(d Die) {
	i := slices.Index(p.dice, d)
	if i < 0 {
		return
	}
	p.dice = slices.Delete(slices.Clone(p.dice), i, i+1)
}

// Clear empties the pool.
func (p *Pool) Clear() {
	p.dice = nil
}

// IsEmpty reports whether the pool holds no dice.
func (p Pool) IsEmpty() bool {
	return len(p.dice) == 0
}

// Len returns the number of dice in the pool.
func (p Pool) Len() int {
	return len(p.dice)
}

// Dice returns a copy of the pool's dice in canonical order.
func (p Pool) Dice() []Die {
	return slices.Clone(p.dice)
}

// All iterates the pool's dice in canonical order.
func (p Pool) All() iter.Seq[Die] {
	return slices.Values(p.dice)
}

// Count returns how many dice of kind d the pool holds.
func (p Pool) Count(d Die) int {
	n := 0
	for _, held := range p.dice {
		if held == d {
			n++
		}
	}
	return n
}

// Equal reports whether both pools hold the same multiset of dice.
func (p Pool) Equal(other Pool) bool {
	return slices.Equal(p.dice, other.dice)
}

// Roll draws one face per die, in pool order. Rolling an empty pool yields
// an empty PoolRoll. The pool itself is not modified.
func (p Pool) Roll(src Source) PoolRoll {
	rolls := make([]Roll, 0, len(p.dice))
	for _, d := range p.dice {
		rolls = append(rolls, d.Roll(src))
	}
	return PoolRoll{rolls: rolls}
}

func (p Pool) String() string {
	names := make([]string, 0, len(p.dice))
	for _, d := range p.dice {
		names = append(names, d.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
