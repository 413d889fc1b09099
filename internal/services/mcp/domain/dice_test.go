package domain

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/louisbranch/narrative.dice/internal/core/numeric"
)

func fixedSeeder(seed int64) Seeder {
	return func() (int64, error) { return seed, nil }
}

func TestRollPoolHandlerIsDeterministicForSeed(t *testing.T) {
	seed := uint64(42)
	handler := RollPoolHandler(fixedSeeder(1))
	input := RollPoolInput{Pool: "#PPDC", Dice: []string{"force"}, Rng: &RngRequest{Seed: &seed}}

	_, first, err := handler(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	_, second, err := handler(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if first.Result.Pool != "PPDCF" {
		t.Fatalf("pool = %q, want PPDCF", first.Result.Pool)
	}
	if len(first.Result.Rolls) != 5 {
		t.Fatalf("rolls = %d, want 5", len(first.Result.Rolls))
	}
	if first.Result.Text != second.Result.Text {
		t.Fatalf("same seed gave %q and %q", first.Result.Text, second.Result.Text)
	}
	if first.Rng == nil || first.Rng.SeedUsed != 42 || first.Rng.SeedSource != "client" {
		t.Fatalf("rng = %+v", first.Rng)
	}
}

func TestRollPoolHandlerUsesSeederWithoutSeed(t *testing.T) {
	_, result, err := RollPoolHandler(fixedSeeder(7))(context.Background(), nil, RollPoolInput{Pool: "AXD"})
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if result.Rng.SeedUsed != 7 || result.Rng.SeedSource != "server" {
		t.Fatalf("rng = %+v", result.Rng)
	}
	if result.Skipped != "X" {
		t.Fatalf("skipped = %q, want X", result.Skipped)
	}
}

func TestRollPoolHandlerErrors(t *testing.T) {
	tooBig := uint64(1) << 63
	tests := []struct {
		name  string
		input RollPoolInput
		want  string
	}{
		{name: "empty pool", input: RollPoolInput{Pool: "xyz"}, want: "POOL_EMPTY"},
		{name: "unknown die", input: RollPoolInput{Dice: []string{"purple"}}, want: `Unknown die "purple".`},
		{name: "seed out of range", input: RollPoolInput{Pool: "A", Rng: &RngRequest{Seed: &tooBig}}, want: "The seed must fit in a signed 64-bit integer. [SEED_OUT_OF_RANGE]"},
		{name: "localized", input: RollPoolInput{Pool: "", Locale: "pt-BR"}, want: "Adicione pelo menos um dado"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := RollPoolHandler(fixedSeeder(1))(context.Background(), nil, tc.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestEvaluateFacesHandler(t *testing.T) {
	input := EvaluateFacesInput{Faces: []FaceInput{
		{Die: "difficulty", Index: 2},
		{Die: "ability", Index: 2},
	}}
	_, result, err := EvaluateFacesHandler()(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Text != "2 Successes, 1 Threat" {
		t.Fatalf("text = %q", result.Text)
	}
	if result.Counts["success"] != 2 || result.Counts["threat"] != 1 || len(result.Counts) != 2 {
		t.Fatalf("counts = %v", result.Counts)
	}
	if result.Pool != "AD" {
		t.Fatalf("pool = %q, want AD", result.Pool)
	}
	if !result.Check.Success || result.Check.Margin != 2 || result.Check.Advantage != -1 {
		t.Fatalf("check = %+v", result.Check)
	}
}

func TestEvaluateFacesHandlerEmptyIsBlank(t *testing.T) {
	_, result, err := EvaluateFacesHandler()(context.Background(), nil, EvaluateFacesInput{Faces: []FaceInput{}})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Text != "<blank>" || len(result.Counts) != 0 {
		t.Fatalf("result = %+v", result)
	}
}

func TestEvaluateFacesHandlerRejectsOutOfRange(t *testing.T) {
	input := EvaluateFacesInput{Faces: []FaceInput{{Die: "boost", Index: 6}}}
	_, _, err := EvaluateFacesHandler()(context.Background(), nil, input)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Face 6 does not exist on the boost die.") {
		t.Fatalf("error = %q", err)
	}
}

func TestFacesHandler(t *testing.T) {
	_, all, err := FacesHandler()(context.Background(), nil, FacesInput{})
	if err != nil {
		t.Fatalf("faces: %v", err)
	}
	if len(all.Dice) != 7 {
		t.Fatalf("dice = %d, want 7", len(all.Dice))
	}

	_, force, err := FacesHandler()(context.Background(), nil, FacesInput{Die: "Force"})
	if err != nil {
		t.Fatalf("faces: %v", err)
	}
	if len(force.Dice) != 1 || force.Dice[0].Code != "F" || len(force.Dice[0].Faces) != 12 {
		t.Fatalf("force = %+v", force)
	}
	last := force.Dice[0].Faces[11]
	if last.Index != 11 || strings.Join(last.Symbols, ",") != "darkside,darkside" {
		t.Fatalf("last force face = %+v", last)
	}
}

func TestNumericRollHandler(t *testing.T) {
	seed := uint64(5)
	_, result, err := NumericRollHandler(fixedSeeder(1))(context.Background(), nil, NumericRollInput{
		Kind:  "D100",
		Count: 3,
		Rng:   &RngRequest{Seed: &seed},
	})
	if err != nil {
		t.Fatalf("numeric: %v", err)
	}
	if result.Kind != "d100" || len(result.Results) != 3 {
		t.Fatalf("result = %+v", result)
	}
	sum := 0
	for _, n := range result.Results {
		if n < 1 || n > 100 {
			t.Fatalf("result %d out of range", n)
		}
		sum += n
	}
	if sum != result.Total {
		t.Fatalf("total = %d, want %d", result.Total, sum)
	}
}

func TestNumericRollHandlerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input NumericRollInput
		want  string
	}{
		{name: "unknown kind", input: NumericRollInput{Kind: "d6"}, want: "NUMERIC_KIND_UNKNOWN"},
		{name: "negative count", input: NumericRollInput{Kind: "d10", Count: -3}, want: "Roll between 1 and 100 numeric dice. [NUMERIC_COUNT_OUT_OF_RANGE]"},
		{name: "over limit", input: NumericRollInput{Kind: "d100", Count: numeric.MaxCount + 1}, want: "[NUMERIC_COUNT_OUT_OF_RANGE]"},
		{name: "huge count", input: NumericRollInput{Kind: "d10", Count: math.MaxInt}, want: "[NUMERIC_COUNT_OUT_OF_RANGE]"},
	}
	handler := NumericRollHandler(fixedSeeder(1))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := handler(context.Background(), nil, tc.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestNumericRollHandlerAcceptsMaxCount(t *testing.T) {
	_, result, err := NumericRollHandler(fixedSeeder(1))(context.Background(), nil, NumericRollInput{
		Kind:  "d10",
		Count: numeric.MaxCount,
	})
	if err != nil {
		t.Fatalf("numeric: %v", err)
	}
	if len(result.Results) != numeric.MaxCount {
		t.Fatalf("got %d results, want %d", len(result.Results), numeric.MaxCount)
	}
}

func TestToolErrorKeepsUncodedErrors(t *testing.T) {
	plain := errors.New("plain")
	if got := toolError(plain, "en-US"); got != plain {
		t.Fatalf("toolError changed uncoded error: %v", got)
	}
}
