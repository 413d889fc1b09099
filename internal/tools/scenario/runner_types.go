package scenario

import "github.com/louisbranch/narrative.dice/internal/core/dice"

// scenarioState is the pool and latest roll a scenario is working on.
type scenarioState struct {
	pool   dice.Pool
	rolled bool
	roll   dice.PoolRoll
	result dice.Result
}

func (s *scenarioState) setRoll(roll dice.PoolRoll) {
	s.rolled = true
	s.roll = roll
	s.result = roll.Aggregate()
}
