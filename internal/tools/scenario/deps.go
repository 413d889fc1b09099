package scenario

import (
	"github.com/louisbranch/narrative.dice/internal/core/dice"
	"github.com/louisbranch/narrative.dice/internal/random"
)

// runnerDeps bundles injectable dependencies for runner construction.
type runnerDeps struct {
	// newSource builds the face source for a seeded roll.
	newSource func(seed int64) dice.Source
	// newSeed supplies seeds for rolls that pin neither faces nor a seed.
	newSeed func() (int64, error)
}

func defaultRunnerDeps() runnerDeps {
	return runnerDeps{
		newSource: func(seed int64) dice.Source { return random.NewSource(seed) },
		newSeed:   random.NewSeed,
	}
}
