package scenario

import (
	"fmt"
	"strings"

	"github.com/louisbranch/narrative.dice/internal/core/dice"
	apperrors "github.com/louisbranch/narrative.dice/internal/platform/errors"
)

func (r *Runner) failf(format string, args ...any) error {
	return r.assertions.Failf(format, args...)
}

func (r *Runner) assertf(format string, args ...any) error {
	return r.assertions.Assertf(format, args...)
}

func parseDieArg(args map[string]any) (dice.Die, error) {
	name := requiredString(args, "die")
	die, ok := dice.ParseDie(name)
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeDieUnknown,
			fmt.Sprintf("unknown die %q", name),
			map[string]string{"die": name})
	}
	return die, nil
}

func intList(value any) ([]int, error) {
	switch v := value.(type) {
	case []any:
		out := make([]int, 0, len(v))
		for i, item := range v {
			n, ok := item.(int)
			if !ok {
				return nil, fmt.Errorf("item %d is not an integer: %v", i+1, item)
			}
			out = append(out, n)
		}
		return out, nil
	case map[string]any:
		// An empty Lua table converts to a map.
		if len(v) == 0 {
			return []int{}, nil
		}
	}
	return nil, fmt.Errorf("expected a list of integers, got %T", value)
}

func requiredString(args map[string]any, key string) string {
	value, ok := args[key]
	if !ok {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}

func readInt(args map[string]any, key string) (int, bool) {
	value, ok := args[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func optionalString(args map[string]any, key, fallback string) string {
	value := requiredString(args, key)
	if value == "" {
		return fallback
	}
	return value
}

func optionalInt(args map[string]any, key string, fallback int) int {
	value, ok := readInt(args, key)
	if !ok {
		return fallback
	}
	return value
}
