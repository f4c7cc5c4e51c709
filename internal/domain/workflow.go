package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mutagene.dev/pkg/mutagene/internal/adapter"
	"mutagene.dev/pkg/mutagene/internal/controller"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

// SimulateArgs holds the arguments of the simulate workflow.
type SimulateArgs struct {
	m.SimulationArgs
	Lineages    int
	Parallel    int
	Export      m.Path
	Chart       m.Path
	Interactive bool
}

// TranslateArgs holds the arguments of the translate workflow.
type TranslateArgs struct {
	Sequence m.Sequence
}

// ImpactArgs holds the arguments of the impact workflow.
type ImpactArgs struct {
	Original m.Sequence
	Mutated  m.Sequence
	Policy   m.ImpactPolicy
}

// Workflow wires the simulation core to the UI and the exporters.
type Workflow interface {
	Simulate(ctx context.Context, args SimulateArgs) error
	Translate(ctx context.Context, args TranslateArgs) error
	Impact(ctx context.Context, args ImpactArgs) error
}

type workflow struct {
	Simulator
	LineageRunner
	controller.UI
	translator   Translator
	classifier   Classifier
	reportWriter adapter.ReportWriter
	chartWriter  adapter.ChartWriter
	now          func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	simulator Simulator,
	lineageRunner LineageRunner,
	translator Translator,
	classifier Classifier,
	reportWriter adapter.ReportWriter,
	chartWriter adapter.ChartWriter,
	ui controller.UI,
) Workflow {
	return &workflow{
		Simulator:     simulator,
		LineageRunner: lineageRunner,
		UI:            ui,
		translator:    translator,
		classifier:    classifier,
		reportWriter:  reportWriter,
		chartWriter:   chartWriter,
		now:           time.Now,
	}
}

// Simulate runs one lineage (or several independent ones), renders them and
// writes the optional export and chart.
func (w *workflow) Simulate(ctx context.Context, args SimulateArgs) error {
	mode := controller.WithSimulateMode()
	if args.Lineages > 1 {
		mode = controller.WithLineagesMode()
	}

	if err := w.Start(ctx, mode, controller.WithInteractive(args.Interactive)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	lineages, err := w.runLineages(ctx, args)
	if err != nil {
		return err
	}

	if err := w.export(ctx, args, lineages); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) runLineages(ctx context.Context, args SimulateArgs) ([]m.LineageResult, error) {
	if args.Lineages > 1 {
		lineages, err := w.RunLineages(ctx, args.SimulationArgs, args.Lineages, args.Parallel)
		if err != nil {
			return nil, fmt.Errorf("run lineages: %w", err)
		}

		w.DisplayLineages(ctx, lineages)

		return lineages, nil
	}

	result, err := w.Run(ctx, args.SimulationArgs)
	if err != nil && len(result.Reports) == 0 {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	// An interrupted run still reports the generations it completed.
	displayCtx := ctx
	if err != nil {
		displayCtx = context.WithoutCancel(ctx)
	}

	w.DisplayRun(displayCtx, result)

	for _, report := range result.Reports {
		w.DisplayGeneration(displayCtx, report)
	}

	summary := Summarize(result)
	w.DisplaySummary(displayCtx, summary)

	if err != nil {
		slog.Error("Simulation interrupted", "run", result.RunID, "generations", len(result.Reports), "error", err)
		return nil, fmt.Errorf("simulate: %w", err)
	}

	return []m.LineageResult{{Lineage: 0, Result: result, Summary: summary}}, nil
}

func (w *workflow) export(ctx context.Context, args SimulateArgs, lineages []m.LineageResult) error {
	if args.Export != "" {
		policy := args.Policy
		if policy == "" {
			policy = m.PolicyEscalating
		}

		document := m.Export{GeneratedAt: w.now(), Policy: policy, Lineages: lineages}
		if err := w.reportWriter.Write(ctx, args.Export, document); err != nil {
			slog.Error("Failed to export report", "path", args.Export, "error", err)
			return fmt.Errorf("export report: %w", err)
		}

		slog.Info("Exported report", "path", args.Export, "lineages", len(lineages))
	}

	if args.Chart != "" {
		if err := w.chartWriter.Write(ctx, args.Chart, lineages); err != nil {
			slog.Error("Failed to write chart", "path", args.Chart, "error", err)
			return fmt.Errorf("write chart: %w", err)
		}

		slog.Info("Wrote chart", "path", args.Chart)
	}

	return nil
}

// Translate renders the protein of one sequence. A translation error is shown
// and also returned so the caller can exit non-zero.
func (w *workflow) Translate(ctx context.Context, args TranslateArgs) error {
	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	protein, err := w.translator.Translate(args.Sequence)
	w.DisplayTranslation(ctx, args.Sequence, protein, err)

	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	return nil
}

// Impact translates two sequences and classifies the protein-level change.
func (w *workflow) Impact(ctx context.Context, args ImpactArgs) error {
	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	original, err := w.translator.Translate(args.Original)
	if err != nil {
		w.DisplayTranslation(ctx, args.Original, original, err)
		return fmt.Errorf("translate original: %w", err)
	}

	mutated, err := w.translator.Translate(args.Mutated)
	if err != nil {
		w.DisplayTranslation(ctx, args.Mutated, mutated, err)
		return fmt.Errorf("translate mutated: %w", err)
	}

	verdict, changes := NewImpactAnalyzer(w.classifier, args.Policy).Evaluate(original, mutated)
	w.DisplayImpact(ctx, original, mutated, verdict, changes)

	return nil
}
