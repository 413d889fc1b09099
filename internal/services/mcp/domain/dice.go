package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/narrative.dice/internal/core/check"
	"github.com/louisbranch/narrative.dice/internal/core/dice"
	"github.com/louisbranch/narrative.dice/internal/core/numeric"
	"github.com/louisbranch/narrative.dice/internal/core/poolcode"
	apperrors "github.com/louisbranch/narrative.dice/internal/platform/errors"
	"github.com/louisbranch/narrative.dice/internal/platform/otel"
	"github.com/louisbranch/narrative.dice/internal/random"
	"github.com/louisbranch/narrative.dice/internal/render"
)

// Seeder supplies seeds for rolls that do not request one.
type Seeder func() (int64, error)

// RngRequest represents optional RNG configuration for deterministic rolls.
type RngRequest struct {
	Seed *uint64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic rolls"`
}

// RngResult represents RNG details used for a roll.
type RngResult struct {
	SeedUsed   int64  `json:"seed_used" jsonschema:"seed value used for the roll"`
	SeedSource string `json:"seed_source" jsonschema:"seed source (client or server)"`
}

// FaceRoll describes the face drawn from one die.
type FaceRoll struct {
	Die     string   `json:"die" jsonschema:"die kind"`
	Index   int      `json:"index" jsonschema:"zero-based face index in the die's table"`
	Face    string   `json:"face" jsonschema:"face label"`
	Symbols []string `json:"symbols" jsonschema:"symbols printed on the face"`
}

// CheckResult summarizes a result as a skill check.
type CheckResult struct {
	Success   bool `json:"success" jsonschema:"at least one net success remains"`
	Margin    int  `json:"margin" jsonschema:"net successes minus net failures"`
	Advantage int  `json:"advantage" jsonschema:"net advantages minus net threats"`
	Triumphs  int  `json:"triumphs" jsonschema:"triumph count"`
	Despairs  int  `json:"despairs" jsonschema:"despair count"`
}

// PoolResult is the shared output of tools that resolve die faces.
type PoolResult struct {
	Pool   string         `json:"pool" jsonschema:"pool code, one character per die"`
	Rolls  []FaceRoll     `json:"rolls" jsonschema:"faces drawn, one per die"`
	Counts map[string]int `json:"counts" jsonschema:"net symbol counts after cancellation"`
	Text   string         `json:"text" jsonschema:"localized result summary"`
	Check  CheckResult    `json:"check" jsonschema:"check interpretation"`
}

// RollPoolInput represents the MCP tool input for rolling a pool.
type RollPoolInput struct {
	Pool   string      `json:"pool,omitempty" jsonschema:"pool code such as AADP (A ability, P proficiency, D difficulty, C challenge, B boost, S setback, F force)"`
	Dice   []string    `json:"dice,omitempty" jsonschema:"die kinds by name, added to the pool code"`
	Locale string      `json:"locale,omitempty" jsonschema:"locale for the result text, such as en-US or pt-BR"`
	Rng    *RngRequest `json:"rng,omitempty" jsonschema:"optional rng configuration"`
}

// RollPoolResult represents the MCP tool output for rolling a pool.
type RollPoolResult struct {
	Result  PoolResult `json:"result" jsonschema:"pool roll outcome"`
	Skipped string     `json:"skipped,omitempty" jsonschema:"pool code characters that named no die"`
	Rng     *RngResult `json:"rng,omitempty" jsonschema:"rng details"`
}

// FaceInput pins one die to a face.
type FaceInput struct {
	Die   string `json:"die" jsonschema:"die kind"`
	Index int    `json:"index" jsonschema:"zero-based face index in the die's table"`
}

// EvaluateFacesInput represents the MCP tool input for evaluating known faces.
type EvaluateFacesInput struct {
	Faces  []FaceInput `json:"faces" jsonschema:"faces to evaluate"`
	Locale string      `json:"locale,omitempty" jsonschema:"locale for the result text"`
}

// FacesInput represents the MCP tool input for listing face tables.
type FacesInput struct {
	Die string `json:"die,omitempty" jsonschema:"optional die kind; all dice when empty"`
}

// DieFaces lists one die's face table.
type DieFaces struct {
	Die   string     `json:"die" jsonschema:"die kind"`
	Code  string     `json:"code" jsonschema:"pool code character"`
	Faces []FaceRoll `json:"faces" jsonschema:"faces in table order"`
}

// FacesResult represents the MCP tool output for listing face tables.
type FacesResult struct {
	Dice []DieFaces `json:"dice" jsonschema:"face tables"`
}

// NumericRollInput represents the MCP tool input for numbered dice.
type NumericRollInput struct {
	Kind  string      `json:"kind" jsonschema:"d10 or d100"`
	Count int         `json:"count,omitempty" jsonschema:"number of dice from 1 to 100, default 1"`
	Rng   *RngRequest `json:"rng,omitempty" jsonschema:"optional rng configuration"`
}

// NumericRollResult represents the MCP tool output for numbered dice.
type NumericRollResult struct {
	Kind    string     `json:"kind" jsonschema:"die kind rolled"`
	Results []int      `json:"results" jsonschema:"individual results"`
	Total   int        `json:"total" jsonschema:"sum of the results"`
	Rng     *RngResult `json:"rng,omitempty" jsonschema:"rng details"`
}

// RollPoolTool defines the MCP tool schema for rolling a pool.
func RollPoolTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dice_roll_pool",
		Description: "Rolls a narrative dice pool and returns the net result",
	}
}

// EvaluateFacesTool defines the MCP tool schema for evaluating known faces.
func EvaluateFacesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dice_evaluate_faces",
		Description: "Aggregates known die faces without rolling",
	}
}

// FacesTool defines the MCP tool schema for listing face tables.
func FacesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dice_faces",
		Description: "Lists the face table of each die kind",
	}
}

// NumericRollTool defines the MCP tool schema for numbered dice.
func NumericRollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dice_numeric_roll",
		Description: "Rolls d10 or d100 dice",
	}
}

var tracer = otel.Tracer("narrative.dice/mcp")

// RollPoolHandler executes a pool roll.
func RollPoolHandler(seeder Seeder) mcp.ToolHandlerFor[RollPoolInput, RollPoolResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollPoolInput) (*mcp.CallToolResult, RollPoolResult, error) {
		_, span := tracer.Start(ctx, "mcp.dice_roll_pool")
		defer span.End()

		pool, skipped := poolcode.DecodeStrict(input.Pool)
		for _, name := range input.Dice {
			d, err := parseDie(name)
			if err != nil {
				return nil, RollPoolResult{}, toolError(err, input.Locale)
			}
			pool.Add(d)
		}
		if pool.IsEmpty() {
			err := apperrors.New(apperrors.CodePoolEmpty, "pool is empty")
			return nil, RollPoolResult{}, toolError(err, input.Locale)
		}

		seed, source, err := resolveSeed(input.Rng, seeder)
		if err != nil {
			return nil, RollPoolResult{}, toolError(err, input.Locale)
		}
		roll := pool.Roll(random.NewSource(seed))
		span.SetAttributes(
			attribute.String("dice.pool", poolcode.Encode(pool)),
			attribute.Int64("dice.seed", seed),
		)

		return nil, RollPoolResult{
			Result:  poolResult(pool, roll.Rolls(), input.Locale),
			Skipped: string(skipped),
			Rng:     &RngResult{SeedUsed: seed, SeedSource: source},
		}, nil
	}
}

// EvaluateFacesHandler aggregates caller supplied faces.
func EvaluateFacesHandler() mcp.ToolHandlerFor[EvaluateFacesInput, PoolResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EvaluateFacesInput) (*mcp.CallToolResult, PoolResult, error) {
		_, span := tracer.Start(ctx, "mcp.dice_evaluate_faces", trace.WithAttributes(
			attribute.Int("dice.faces", len(input.Faces)),
		))
		defer span.End()

		rolls := make([]dice.Roll, 0, len(input.Faces))
		for _, face := range input.Faces {
			d, err := parseDie(face.Die)
			if err != nil {
				return nil, PoolResult{}, toolError(err, input.Locale)
			}
			if face.Index < 0 || face.Index >= d.Sides() {
				err := apperrors.WithMetadata(apperrors.CodeFaceOutOfRange,
					fmt.Sprintf("face %d out of range for %s", face.Index, d),
					map[string]string{"face": fmt.Sprint(face.Index), "die": d.String()})
				return nil, PoolResult{}, toolError(err, input.Locale)
			}
			rolls = append(rolls, d.RollFace(face.Index))
		}

		pool := dice.EmptyPool()
		for _, r := range rolls {
			pool.Add(r.Die())
		}
		return nil, poolResult(pool, rolls, input.Locale), nil
	}
}

// FacesHandler lists face tables.
func FacesHandler() mcp.ToolHandlerFor[FacesInput, FacesResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FacesInput) (*mcp.CallToolResult, FacesResult, error) {
		kinds := dice.Dice()
		if strings.TrimSpace(input.Die) != "" {
			d, err := parseDie(input.Die)
			if err != nil {
				return nil, FacesResult{}, toolError(err, "")
			}
			kinds = []dice.Die{d}
		}

		result := FacesResult{Dice: make([]DieFaces, 0, len(kinds))}
		for _, d := range kinds {
			code, _ := poolcode.Char(d)
			faces := make([]FaceRoll, 0, d.Sides())
			for index := range d.Sides() {
				faces = append(faces, faceRoll(d.RollFace(index)))
			}
			result.Dice = append(result.Dice, DieFaces{Die: d.String(), Code: string(code), Faces: faces})
		}
		return nil, result, nil
	}
}

// NumericRollHandler rolls numbered dice.
func NumericRollHandler(seeder Seeder) mcp.ToolHandlerFor[NumericRollInput, NumericRollResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NumericRollInput) (*mcp.CallToolResult, NumericRollResult, error) {
		_, span := tracer.Start(ctx, "mcp.dice_numeric_roll")
		defer span.End()

		kind, ok := numeric.ParseKind(strings.ToLower(strings.TrimSpace(input.Kind)))
		if !ok {
			err := apperrors.WithMetadata(apperrors.CodeNumericKindUnknown,
				fmt.Sprintf("unknown numeric kind %q", input.Kind),
				map[string]string{"kind": input.Kind})
			return nil, NumericRollResult{}, toolError(err, "")
		}
		count := input.Count
		if count == 0 {
			count = 1
		}

		seed, source, err := resolveSeed(input.Rng, seeder)
		if err != nil {
			return nil, NumericRollResult{}, toolError(err, "")
		}
		result, err := numeric.RollSpecs(random.NewSource(seed), []numeric.Spec{{Sides: kind.Sides(), Count: count}})
		if errors.Is(err, numeric.ErrInvalidDiceSpec) || errors.Is(err, numeric.ErrMissingDice) {
			err = apperrors.WithMetadata(apperrors.CodeNumericCountRange,
				fmt.Sprintf("numeric roll count %d: %v", input.Count, err),
				map[string]string{"count": strconv.Itoa(input.Count), "max": strconv.Itoa(numeric.MaxCount)})
			return nil, NumericRollResult{}, toolError(err, "")
		}
		if err != nil {
			return nil, NumericRollResult{}, fmt.Errorf("numeric roll: %w", err)
		}
		span.SetAttributes(attribute.String("dice.kind", kind.String()), attribute.Int64("dice.seed", seed))

		return nil, NumericRollResult{
			Kind:    kind.String(),
			Results: result.Rolls[0].Results,
			Total:   result.Total,
			Rng:     &RngResult{SeedUsed: seed, SeedSource: source},
		}, nil
	}
}

func resolveSeed(rng *RngRequest, seeder Seeder) (int64, string, error) {
	var requested *uint64
	if rng != nil {
		requested = rng.Seed
	}
	return random.ResolveSeed(requested, seeder)
}

func parseDie(name string) (dice.Die, error) {
	d, ok := dice.ParseDie(name)
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeDieUnknown,
			fmt.Sprintf("unknown die %q", name),
			map[string]string{"die": name})
	}
	return d, nil
}

// toolError replaces a coded error with its localized message so clients see
// text meant for people. The code is kept as a suffix.
func toolError(err error, locale string) error {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		return err
	}
	return fmt.Errorf("%s [%s]", apperrors.UserMessage(err, locale), code)
}

func poolResult(pool dice.Pool, rolls []dice.Roll, locale string) PoolResult {
	result := dice.Aggregate(rolls...)
	counts := map[string]int{}
	for s, n := range result.Counts() {
		counts[s.String()] = n
	}
	faces := make([]FaceRoll, 0, len(rolls))
	for _, r := range rolls {
		faces = append(faces, faceRoll(r))
	}
	outcome := check.Check(result)
	return PoolResult{
		Pool:   poolcode.Encode(pool),
		Rolls:  faces,
		Counts: counts,
		Text:   render.NewRenderer(locale).Format(result),
		Check: CheckResult{
			Success:   outcome.Success,
			Margin:    outcome.Margin,
			Advantage: outcome.Advantage,
			Triumphs:  outcome.Triumphs,
			Despairs:  outcome.Despairs,
		},
	}
}

func faceRoll(r dice.Roll) FaceRoll {
	symbols := make([]string, 0, 2)
	for _, s := range r.Symbols() {
		symbols = append(symbols, s.String())
	}
	return FaceRoll{
		Die:     r.Die().String(),
		Index:   r.Index(),
		Face:    r.Face().String(),
		Symbols: symbols,
	}
}
