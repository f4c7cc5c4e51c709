// Package domain contains the sequence evolution pipeline: mutation,
// translation, impact analysis and the generation loop that chains them.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

// Simulator drives a single lineage through a fixed number of generations.
type Simulator interface {
	Run(ctx context.Context, args m.SimulationArgs) (m.SimulationResult, error)
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*simulator)

// WithRandFactory overrides how the per-run random source is built.
func WithRandFactory(factory RandFactory) SimulatorOption {
	return func(s *simulator) {
		s.newRand = factory
	}
}

// WithClock overrides the time source used for run timestamps.
func WithClock(now func() time.Time) SimulatorOption {
	return func(s *simulator) {
		s.now = now
	}
}

type simulator struct {
	Translator
	Classifier
	newRand RandFactory
	now     func() time.Time
}

// NewSimulator creates a Simulator backed by the given translator and
// classifier.
func NewSimulator(translator Translator, classifier Classifier, options ...SimulatorOption) Simulator {
	s := &simulator{
		Translator: translator,
		Classifier: classifier,
		newRand:    NewRand,
		now:        time.Now,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Run executes args.Generations generations. Each generation mutates the
// previous generation's output; translation failures are recorded on the
// report and never stop the loop. Cancellation is observed between
// generations and returns the partial lineage with ctx.Err().
func (s *simulator) Run(ctx context.Context, args m.SimulationArgs) (m.SimulationResult, error) {
	if err := ValidateArgs(args); err != nil {
		slog.Error("Invalid simulation arguments", "error", err)
		return m.SimulationResult{}, err
	}

	started := s.now()
	mutator := NewMutator(s.newRand(args.Seed))
	analyzer := NewImpactAnalyzer(s.Classifier, args.Policy)
	rate := EffectiveRate(args.BaseRate, args.Environment)

	result := m.SimulationResult{
		RunID:       uuid.NewString(),
		Seed:        args.Seed,
		Environment: args.Environment,
		Kind:        args.Kind,
		BaseRate:    args.BaseRate,
		Initial:     args.Sequence,
		StartedAt:   started,
		Reports:     make([]m.GenerationReport, 0, args.Generations),
	}

	slog.Debug("Starting simulation", "run", result.RunID, "generations", args.Generations,
		"kind", args.Kind, "environment", args.Environment, "rate", rate, "seed", args.Seed)

	current := args.Sequence

	for index := 1; index <= args.Generations; index++ {
		if err := ctx.Err(); err != nil {
			result.Final = current
			result.Duration = s.now().Sub(started)

			return result, fmt.Errorf("simulation stopped at generation %d: %w", index, err)
		}

		report := s.step(mutator, analyzer, current, rate, args.Kind)
		report.Index = index
		result.Reports = append(result.Reports, report)

		slog.Debug("Generation complete", "run", result.RunID, "generation", index,
			"records", len(report.Records), "length", report.Output.Len(), "verdict", report.Verdict)

		current = report.Output
	}

	result.Final = current
	result.Duration = s.now().Sub(started)

	return result, nil
}

func (s *simulator) step(mutator Mutator, analyzer ImpactAnalyzer, current m.Sequence, rate float64, kind m.MutationKind) m.GenerationReport {
	mutated, records := mutator.Mutate(current, rate, kind)

	report := m.GenerationReport{
		Rate:    rate,
		Input:   current,
		Output:  mutated,
		Records: records,
		Verdict: m.VerdictSilent,
	}

	original, originalErr := s.Translate(current)
	if originalErr != nil {
		report.OriginalTranslateErr = originalErr.Error()
	} else {
		report.OriginalProtein = original
	}

	translated, mutatedErr := s.Translate(mutated)
	if mutatedErr != nil {
		report.MutatedTranslateErr = mutatedErr.Error()
	} else {
		report.MutatedProtein = translated
	}

	if report.Translated() {
		report.Verdict, report.Changes = analyzer.Evaluate(original, translated)
	}

	return report
}

// ValidateArgs applies the strict configuration checks: known kind,
// environment and policy in their canonical spelling, a rate within [0, 1],
// non-negative generations and a sequence over the nucleotide alphabet.
func ValidateArgs(args m.SimulationArgs) error {
	if !args.Kind.Valid() {
		return &ConfigurationError{Field: "mutation type", Value: args.Kind, Reason: "expected one of substitution, insertion, deletion, duplication"}
	}

	if !slices.Contains(m.Environments, args.Environment) {
		return &ConfigurationError{Field: "environment", Value: args.Environment, Reason: "expected one of normal, high_radiation, high_pressure"}
	}

	if math.IsNaN(args.BaseRate) || args.BaseRate < 0 || args.BaseRate > 1 {
		return &ConfigurationError{Field: "base mutation rate", Value: args.BaseRate, Reason: "must be within [0, 1]"}
	}

	if args.Generations < 0 {
		return &ConfigurationError{Field: "generations", Value: args.Generations, Reason: "must not be negative"}
	}

	switch args.Policy {
	case "", m.PolicyEscalating, m.PolicyLastWriteWins:
	default:
		return &ConfigurationError{Field: "impact policy", Value: args.Policy, Reason: "expected escalating or last-write-wins"}
	}

	for i := range args.Sequence.Len() {
		if !m.IsBase(args.Sequence[i]) {
			return &ConfigurationError{Field: "sequence", Value: fmt.Sprintf("%q at %d", args.Sequence[i], i), Reason: "only A, T, C and G are allowed"}
		}
	}

	return nil
}
