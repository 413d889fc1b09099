// Package poolcode encodes dice pools as short strings, one character per
// die, suitable for sharing a pool in a link fragment such as "#AADP".
package poolcode

import (
	"strings"

	"github.com/louisbranch/narrative.dice/internal/core/dice"
)

var dieChars = map[dice.Die]rune{
	dice.DieAbility:     'A',
	dice.DieProficiency: 'P',
	dice.DieDifficulty:  'D',
	dice.DieChallenge:   'C',
	dice.DieBoost:       'B',
	dice.DieSetback:     'S',
	dice.DieForce:       'F',
}

var charDice = func() map[rune]dice.Die {
	out := make(map[rune]dice.Die, len(dieChars))
	for d, c := range dieChars {
		out[c] = d
	}
	return out
}()

// Char returns the code character for a die kind.
func Char(d dice.Die) (rune, bool) {
	c, ok := dieChars[d]
	return c, ok
}

// DieForChar returns the die kind encoded by c.
func DieForChar(c rune) (dice.Die, bool) {
	d, ok := charDice[c]
	return d, ok
}

// Encode returns the pool's code in canonical die order.
func Encode(pool dice.Pool) string {
	var b strings.Builder
	for d := range pool.All() {
		if c, ok := dieChars[d]; ok {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Decode rebuilds a pool from a code. Characters that do not name a die
// are skipped and decoding continues with the rest of the input. A leading
// '#' is accepted.
func Decode(code string) dice.Pool {
	pool, _ := DecodeStrict(code)
	return pool
}

// DecodeStrict decodes like Decode and also reports the characters it
// skipped, in input order.
func DecodeStrict(code string) (dice.Pool, []rune) {
	code = strings.TrimPrefix(code, "#")
	var found []dice.Die
	var skipped []rune
	for _, c := range code {
		d, ok := charDice[c]
		if !ok {
			skipped = append(skipped, c)
			continue
		}
		found = append(found, d)
	}
	return dice.NewPool(found...), skipped
}
