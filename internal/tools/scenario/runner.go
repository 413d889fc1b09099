package scenario

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/narrative.dice/internal/platform/i18n/catalog"
	"github.com/louisbranch/narrative.dice/internal/platform/otel"
)

// Config controls scenario execution.
type Config struct {
	// Locale renders expect_text steps that do not name their own locale.
	Locale     string
	Assertions AssertionMode
	Verbose    bool
	Logger     *log.Logger
}

// DefaultConfig returns default runner configuration.
func DefaultConfig() Config {
	return Config{
		Locale:     catalog.BaseLocale,
		Assertions: AssertionStrict,
		Verbose:    false,
	}
}

// Runner executes Lua scenarios against a dice pool.
type Runner struct {
	deps       runnerDeps
	assertions Assertions
	logger     *log.Logger
	verbose    bool
	locale     string
	tracer     trace.Tracer
}

// NewRunner prepares a scenario runner.
func NewRunner(cfg Config) *Runner {
	return newRunnerWithDeps(cfg, defaultRunnerDeps())
}

// newRunnerWithDeps builds a Runner from pre-built dependencies.
// Config defaults (logger, locale) are applied here so they are testable.
func newRunnerWithDeps(cfg Config, deps runnerDeps) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	locale := cfg.Locale
	if locale == "" {
		locale = catalog.BaseLocale
	}

	return &Runner{
		deps:       deps,
		assertions: Assertions{Mode: cfg.Assertions, Logger: logger},
		logger:     logger,
		verbose:    cfg.Verbose,
		locale:     locale,
		tracer:     otel.Tracer("narrative.dice/scenario"),
	}
}

// RunFile loads and executes a scenario file.
func RunFile(ctx context.Context, cfg Config, path string) error {
	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		return err
	}
	return NewRunner(cfg).RunScenario(ctx, scenario)
}

// RunScenario executes the scenario steps in order, starting from an empty
// pool.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) error {
	if scenario == nil {
		return errors.New("scenario is required")
	}
	ctx, span := r.tracer.Start(ctx, "scenario.run", trace.WithAttributes(
		attribute.String("scenario.name", scenario.Name),
		attribute.Int("scenario.steps", len(scenario.Steps)),
	))
	defer span.End()

	r.logf("scenario start: %s (%d steps)", scenario.Name, len(scenario.Steps))
	state := &scenarioState{}

	for index, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		stepNumber := index + 1
		r.logf("step %d/%d start: %s", stepNumber, len(scenario.Steps), step.Kind)
		stepStart := time.Now()
		if err := r.runStep(ctx, state, step); err != nil {
			span.RecordError(err)
			return fmt.Errorf("step %d (%s): %w", stepNumber, step.Kind, err)
		}
		r.logf("step %d/%d done: %s (%s)", stepNumber, len(scenario.Steps), step.Kind, time.Since(stepStart))
	}
	r.logf("scenario done: %s", scenario.Name)
	return nil
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}
