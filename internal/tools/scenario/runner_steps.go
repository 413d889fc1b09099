package scenario

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/narrative.dice/internal/core/check"
	"github.com/louisbranch/narrative.dice/internal/core/dice"
	"github.com/louisbranch/narrative.dice/internal/core/poolcode"
	"github.com/louisbranch/narrative.dice/internal/random"
	"github.com/louisbranch/narrative.dice/internal/render"
)

func (r *Runner) runStep(ctx context.Context, state *scenarioState, step Step) error {
	switch step.Kind {
	case "pool":
		return r.runPoolStep(state, step)
	case "add":
		return r.runAddStep(state, step)
	case "remove":
		return r.runRemoveStep(state, step)
	case "clear":
		state.pool.Clear()
		return nil
	case "roll":
		return r.runRollStep(ctx, state, step)
	case "expect":
		return r.runExpectStep(state, step)
	case "expect_text":
		return r.runExpectTextStep(state, step)
	case "expect_pool":
		return r.runExpectPoolStep(state, step)
	case "expect_check":
		return r.runExpectCheckStep(state, step)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

func (r *Runner) runPoolStep(state *scenarioState, step Step) error {
	code := optionalString(step.Args, "code", "")
	pool, skipped := poolcode.DecodeStrict(code)
	if len(skipped) > 0 {
		r.logf("pool %q: skipped %q", code, string(skipped))
	}
	state.pool = pool
	return nil
}

func (r *Runner) runAddStep(state *scenarioState, step Step) error {
	die, err := parseDieArg(step.Args)
	if err != nil {
		return r.failf("%w", err)
	}
	for i := optionalInt(step.Args, "count", 1); i > 0; i-- {
		state.pool.Add(die)
	}
	return nil
}

func (r *Runner) runRemoveStep(state *scenarioState, step Step) error {
	die, err := parseDieArg(step.Args)
	if err != nil {
		return r.failf("%w", err)
	}
	state.pool.Remove(die)
	return nil
}

func (r *Runner) runRollStep(ctx context.Context, state *scenarioState, step Step) error {
	_, span := r.tracer.Start(ctx, "scenario.roll", trace.WithAttributes(
		attribute.String("dice.pool", poolcode.Encode(state.pool)),
	))
	defer span.End()

	if faces, ok := step.Args["faces"]; ok {
		roll, err := pinnedRoll(state.pool, faces)
		if err != nil {
			return r.failf("%w", err)
		}
		state.setRoll(roll)
		r.logf("roll %s pinned %v: %s", state.pool, state.roll.Rolls(), state.result)
		return nil
	}

	var requested *uint64
	if seed, ok := readInt(step.Args, "seed"); ok {
		if seed < 0 {
			return r.failf("seed must not be negative, got %d", seed)
		}
		value := uint64(seed)
		requested = &value
	}
	seed, source, err := random.ResolveSeed(requested, r.deps.newSeed)
	if err != nil {
		return r.failf("resolve seed: %v", err)
	}
	span.SetAttributes(attribute.Int64("dice.seed", seed), attribute.String("dice.seed_source", source))
	state.setRoll(state.pool.Roll(r.deps.newSource(seed)))
	r.logf("roll %s seed=%d (%s): %s", state.pool, seed, source, state.result)
	return nil
}

// pinnedRoll draws the scripted face index for each die in pool order.
func pinnedRoll(pool dice.Pool, faces any) (dice.PoolRoll, error) {
	indexes, err := intList(faces)
	if err != nil {
		return dice.PoolRoll{}, fmt.Errorf("faces: %w", err)
	}
	if len(indexes) != pool.Len() {
		return dice.PoolRoll{}, fmt.Errorf("faces: got %d indexes for %d dice", len(indexes), pool.Len())
	}
	rolls := make([]dice.Roll, 0, len(indexes))
	i := 0
	for d := range pool.All() {
		index := indexes[i]
		if index < 0 || index >= d.Sides() {
			return dice.PoolRoll{}, fmt.Errorf("faces[%d]: index %d out of range for %s die (%d faces)", i+1, index, d, d.Sides())
		}
		rolls = append(rolls, d.RollFace(index))
		i++
	}
	return dice.NewPoolRoll(rolls...), nil
}

func (r *Runner) runExpectStep(state *scenarioState, step Step) error {
	if !state.rolled {
		return r.failf("expect before roll")
	}
	want := dice.Counts{}
	for key, value := range step.Args {
		symbol, ok := dice.ParseSymbol(key)
		if !ok {
			return r.failf("unknown symbol %q", key)
		}
		n, ok := value.(int)
		if !ok {
			return r.failf("%s count must be an integer, got %v", key, value)
		}
		want[symbol] = n
	}
	got := state.result.Counts()
	var mismatches []string
	for _, symbol := range dice.Symbols() {
		if got[symbol] != want[symbol] {
			mismatches = append(mismatches, fmt.Sprintf("%s = %d, want %d", symbol, got[symbol], want[symbol]))
		}
	}
	if len(mismatches) > 0 {
		return r.assertf("result %q: %s", state.result, strings.Join(mismatches, "; "))
	}
	return nil
}

func (r *Runner) runExpectTextStep(state *scenarioState, step Step) error {
	if !state.rolled {
		return r.failf("expect_text before roll")
	}
	want := requiredString(step.Args, "text")
	locale := optionalString(step.Args, "locale", r.locale)
	got := render.NewRenderer(locale).Format(state.result)
	if got != want {
		return r.assertf("text = %q, want %q", got, want)
	}
	return nil
}

func (r *Runner) runExpectPoolStep(state *scenarioState, step Step) error {
	code := optionalString(step.Args, "code", "")
	want := poolcode.Decode(code)
	if !state.pool.Equal(want) {
		return r.assertf("pool = %s, want %s", poolcode.Encode(state.pool), poolcode.Encode(want))
	}
	return nil
}

func (r *Runner) runExpectCheckStep(state *scenarioState, step Step) error {
	if !state.rolled {
		return r.failf("expect_check before roll")
	}
	got := check.Check(state.result)
	actual := map[string]any{
		"success":   got.Success,
		"margin":    got.Margin,
		"advantage": got.Advantage,
		"triumph":   got.Triumphs,
		"despair":   got.Despairs,
		"critical":  got.Critical(),
	}

	keys := make([]string, 0, len(step.Args))
	for key := range step.Args {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var mismatches []string
	for _, key := range keys {
		value, ok := actual[key]
		if !ok {
			return r.failf("unknown check field %q", key)
		}
		if value != step.Args[key] {
			mismatches = append(mismatches, fmt.Sprintf("%s = %v, want %v", key, value, step.Args[key]))
		}
	}
	if len(mismatches) > 0 {
		return r.assertf("check for %q: %s", state.result, strings.Join(mismatches, "; "))
	}
	return nil
}
