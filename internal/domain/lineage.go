package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

// LineageRunner simulates several independent lineages from one ancestor.
type LineageRunner interface {
	RunLineages(ctx context.Context, args m.SimulationArgs, lineages, parallel int) ([]m.LineageResult, error)
}

type lineageRunner struct {
	Simulator
}

// NewLineageRunner creates a LineageRunner on top of simulator.
func NewLineageRunner(simulator Simulator) LineageRunner {
	return &lineageRunner{Simulator: simulator}
}

// RunLineages runs lineage i with seed args.Seed+i, at most parallel at a time.
// Lineages share no state, so results depend only on their seed. The first
// failing lineage cancels the rest.
func (lr *lineageRunner) RunLineages(ctx context.Context, args m.SimulationArgs, lineages, parallel int) ([]m.LineageResult, error) {
	if lineages < 1 {
		return nil, &ConfigurationError{Field: "lineages", Value: lineages, Reason: "must be at least 1"}
	}

	if err := ValidateArgs(args); err != nil {
		return nil, err
	}

	results := make([]m.LineageResult, lineages)

	group, groupCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	slog.Debug("Starting lineages", "lineages", lineages, "parallel", parallel)

	for i := range lineages {
		lineageArgs := args
		lineageArgs.Seed = args.Seed + uint64(i)

		group.Go(func() error {
			result, err := lr.Run(groupCtx, lineageArgs)
			if err != nil {
				return fmt.Errorf("lineage %d: %w", i, err)
			}

			results[i] = m.LineageResult{Lineage: i, Result: result, Summary: Summarize(result)}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Lineage simulation failed", "error", err)
		return nil, err
	}

	return results, nil
}
