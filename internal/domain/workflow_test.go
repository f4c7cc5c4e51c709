package domain_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "mutagene.dev/pkg/mutagene/internal/adapter/mocks"
	"mutagene.dev/pkg/mutagene/internal/controller"
	"mutagene.dev/pkg/mutagene/internal/domain"
	"mutagene.dev/pkg/mutagene/internal/domain/mocks"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

type workflowFixture struct {
	simulator    *mocks.MockSimulator
	lineages     *mocks.MockLineageRunner
	reportWriter *adaptermocks.MockReportWriter
	chartWriter  *adaptermocks.MockChartWriter
	output       *bytes.Buffer
	workflow     domain.Workflow
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	output := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(output)

	fixture := workflowFixture{
		simulator:    mocks.NewMockSimulator(t),
		lineages:     mocks.NewMockLineageRunner(t),
		reportWriter: adaptermocks.NewMockReportWriter(t),
		chartWriter:  adaptermocks.NewMockChartWriter(t),
		output:       output,
	}

	wf := domain.NewWorkflow(
		fixture.simulator,
		fixture.lineages,
		domain.NewTranslator(),
		domain.NewClassifier(),
		fixture.reportWriter,
		fixture.chartWriter,
		controller.NewSimpleUI(cmd, false),
	)
	fixture.workflow = wf

	return fixture
}

func sampleResult() m.SimulationResult {
	return m.SimulationResult{
		RunID:   "run-1",
		Seed:    42,
		Initial: "ATGGCCATT",
		Final:   "ATGGACATT",
		Reports: []m.GenerationReport{{
			Index:           1,
			Input:           "ATGGCCATT",
			Output:          "ATGGACATT",
			Records:         []m.MutationRecord{{Kind: m.MutationSubstitution, Position: 4, Length: 1, Before: "C", After: "A"}},
			OriginalProtein: "MAI",
			MutatedProtein:  "MDI",
			Verdict:         m.VerdictNonConservative,
		}},
	}
}

func TestWorkflow_SimulateSingleLineage(t *testing.T) {
	fixture := newWorkflowFixture(t)
	args := domain.SimulateArgs{SimulationArgs: lineageArgs(), Lineages: 1, Export: "out/run.yaml", Chart: "out/run.svg"}

	fixture.simulator.On("Run", mock.Anything, args.SimulationArgs).Return(sampleResult(), nil)
	fixture.reportWriter.On("Write", mock.Anything, m.Path("out/run.yaml"), mock.MatchedBy(func(export m.Export) bool {
		return !export.GeneratedAt.IsZero() &&
			export.Policy == m.PolicyEscalating &&
			len(export.Lineages) == 1 &&
			export.Lineages[0].Summary.Generations == 1
	})).Return(nil)
	fixture.chartWriter.On("Write", mock.Anything, m.Path("out/run.svg"), mock.Anything).Return(nil)

	require.NoError(t, fixture.workflow.Simulate(context.Background(), args))

	output := fixture.output.String()
	assert.Contains(t, output, "Run run-1")
	assert.Contains(t, output, "Substitution: C -> A at position 5")
	assert.Contains(t, output, "Summary")
}

func TestWorkflow_SimulateLineages(t *testing.T) {
	fixture := newWorkflowFixture(t)
	args := domain.SimulateArgs{SimulationArgs: lineageArgs(), Lineages: 3, Parallel: 2}

	results := []m.LineageResult{
		{Lineage: 0, Result: sampleResult()},
		{Lineage: 1, Result: sampleResult()},
		{Lineage: 2, Result: sampleResult()},
	}
	fixture.lineages.On("RunLineages", mock.Anything, args.SimulationArgs, 3, 2).Return(results, nil)

	require.NoError(t, fixture.workflow.Simulate(context.Background(), args))

	assert.Contains(t, fixture.output.String(), "Lineages (3)")
	fixture.simulator.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestWorkflow_SimulateConfigurationError(t *testing.T) {
	fixture := newWorkflowFixture(t)
	args := domain.SimulateArgs{SimulationArgs: lineageArgs(), Lineages: 1, Export: "run.json"}

	configErr := &domain.ConfigurationError{Field: "generations", Value: -1, Reason: "must not be negative"}
	fixture.simulator.On("Run", mock.Anything, args.SimulationArgs).Return(m.SimulationResult{}, configErr)

	err := fixture.workflow.Simulate(context.Background(), args)
	require.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Empty(t, fixture.output.String())
	fixture.reportWriter.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_SimulateInterruptedShowsPartialLineage(t *testing.T) {
	fixture := newWorkflowFixture(t)
	args := domain.SimulateArgs{SimulationArgs: lineageArgs(), Lineages: 1}

	fixture.simulator.On("Run", mock.Anything, args.SimulationArgs).Return(sampleResult(), context.Canceled)

	err := fixture.workflow.Simulate(context.Background(), args)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, fixture.output.String(), "Generation 1")
}

func TestWorkflow_SimulateCancelledContextShowsPartialLineage(t *testing.T) {
	fixture := newWorkflowFixture(t)
	args := domain.SimulateArgs{SimulationArgs: lineageArgs(), Lineages: 1}

	ctx, cancel := context.WithCancel(context.Background())

	fixture.simulator.On("Run", mock.Anything, args.SimulationArgs).
		Run(func(mock.Arguments) { cancel() }).
		Return(sampleResult(), context.Canceled)

	err := fixture.workflow.Simulate(ctx, args)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, fixture.output.String(), "Generation 1")
}

func TestWorkflow_SimulateInterruptedFlushesPagedReport(t *testing.T) {
	simulator := mocks.NewMockSimulator(t)
	output := &bytes.Buffer{}
	wf := domain.NewWorkflow(simulator, mocks.NewMockLineageRunner(t), domain.NewTranslator(), domain.NewClassifier(),
		adaptermocks.NewMockReportWriter(t), adaptermocks.NewMockChartWriter(t), controller.NewTUI(output))

	args := domain.SimulateArgs{SimulationArgs: lineageArgs(), Lineages: 1}

	ctx, cancel := context.WithCancel(context.Background())

	simulator.On("Run", mock.Anything, args.SimulationArgs).
		Run(func(mock.Arguments) { cancel() }).
		Return(sampleResult(), context.Canceled)

	err := wf.Simulate(ctx, args)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, output.String(), "Generation 1")
}

func TestWorkflow_SimulateExportError(t *testing.T) {
	fixture := newWorkflowFixture(t)
	args := domain.SimulateArgs{SimulationArgs: lineageArgs(), Lineages: 1, Export: "run.yaml", Chart: "run.svg"}

	fixture.simulator.On("Run", mock.Anything, args.SimulationArgs).Return(sampleResult(), nil)
	fixture.reportWriter.On("Write", mock.Anything, m.Path("run.yaml"), mock.Anything).Return(errors.New("disk full"))

	err := fixture.workflow.Simulate(context.Background(), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export report")
	fixture.chartWriter.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_SimulateEndToEnd(t *testing.T) {
	output := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(output)

	simulator := newSimulator()
	wf := domain.NewWorkflow(simulator, domain.NewLineageRunner(simulator), domain.NewTranslator(), domain.NewClassifier(),
		adaptermocks.NewMockReportWriter(t), adaptermocks.NewMockChartWriter(t), controller.NewSimpleUI(cmd, false))

	args := lineageArgs()
	args.Generations = 3

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, wf.Simulate(ctx, domain.SimulateArgs{SimulationArgs: args, Lineages: 1}))
	assert.Contains(t, output.String(), "Generation 3")
}

func TestWorkflow_Translate(t *testing.T) {
	t.Run("protein", func(t *testing.T) {
		fixture := newWorkflowFixture(t)

		require.NoError(t, fixture.workflow.Translate(context.Background(), domain.TranslateArgs{Sequence: "ATGGCCATT"}))
		assert.Contains(t, fixture.output.String(), "Protein (3 residues): MAI")
	})

	t.Run("bad length", func(t *testing.T) {
		fixture := newWorkflowFixture(t)

		err := fixture.workflow.Translate(context.Background(), domain.TranslateArgs{Sequence: "ATGG"})
		require.ErrorIs(t, err, domain.ErrTranslation)
		assert.Contains(t, fixture.output.String(), "Translation error")
	})
}

func TestWorkflow_Impact(t *testing.T) {
	tests := []struct {
		name     string
		original m.Sequence
		mutated  m.Sequence
		want     string
	}{
		{"silent", "GCCGCT", "GCAGCG", "Severity: silent"},
		{"conservative", "ATGGCC", "ATGGTC", "Severity: conservative"},
		{"non-conservative", "ATGGCC", "ATGGAC", "Severity: non-conservative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newWorkflowFixture(t)

			err := fixture.workflow.Impact(context.Background(), domain.ImpactArgs{Original: tt.original, Mutated: tt.mutated})
			require.NoError(t, err)
			assert.Contains(t, fixture.output.String(), tt.want)
		})
	}
}

func TestWorkflow_ImpactTranslationError(t *testing.T) {
	fixture := newWorkflowFixture(t)

	err := fixture.workflow.Impact(context.Background(), domain.ImpactArgs{Original: "ATGGCC", Mutated: "ATGGC"})
	require.ErrorIs(t, err, domain.ErrTranslation)
	assert.Contains(t, err.Error(), "translate mutated")
}
