package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd, false), &buf
}

func TestNarrateRecord(t *testing.T) {
	tests := []struct {
		name   string
		record m.MutationRecord
		want   string
	}{
		{
			name:   "substitution",
			record: m.MutationRecord{Kind: m.MutationSubstitution, Position: 4, Length: 1, Before: "A", After: "T"},
			want:   "Substitution: A -> T at position 5",
		},
		{
			name:   "insertion",
			record: m.MutationRecord{Kind: m.MutationInsertion, Position: 0, Length: 1, After: "G"},
			want:   "Insertion: G at position 1",
		},
		{
			name:   "deletion",
			record: m.MutationRecord{Kind: m.MutationDeletion, Position: 9, Length: 1, Before: "C"},
			want:   "Deletion: C removed from position 10",
		},
		{
			name:   "duplication",
			record: m.MutationRecord{Kind: m.MutationDuplication, Position: 2, Length: 3, After: "GGC", InsertAt: 7},
			want:   "Duplication: segment GGC (positions 3-5) inserted at position 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NarrateRecord(tt.record))
		})
	}
}

func TestCodonDiff(t *testing.T) {
	diff := CodonDiff("ATGGCCATT", "ATGGTCATT", 1)

	assert.Contains(t, diff, "--- generation 0")
	assert.Contains(t, diff, "+++ generation 1")
	assert.Contains(t, diff, "-GCC")
	assert.Contains(t, diff, "+GTC")
	assert.NotContains(t, diff, "-ATG")
}

func TestCodonDiff_Identical(t *testing.T) {
	assert.Empty(t, CodonDiff("ATGGCC", "ATGGCC", 3))
}

func TestSimpleUI_DisplayGeneration(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayGeneration(context.Background(), m.GenerationReport{
		Index:           1,
		Rate:            0.1,
		Input:           "ATGGCCATT",
		Output:          "ATGGACATT",
		Records:         []m.MutationRecord{{Kind: m.MutationSubstitution, Position: 4, Length: 1, Before: "C", After: "A"}},
		OriginalProtein: "MAI",
		MutatedProtein:  "MDI",
		Verdict:         m.VerdictNonConservative,
		Changes: []m.PositionalChange{{
			Position:         1,
			Original:         "A",
			Mutated:          "D",
			OriginalProperty: m.PropertyHydrophobic,
			MutatedProperty:  m.PropertyCharged,
		}},
	})

	output := buf.String()
	assert.Contains(t, output, "Generation 1 (effective rate 0.1000)")
	assert.Contains(t, output, "Substitution: C -> A at position 5")
	assert.Contains(t, output, "Original protein: MAI")
	assert.Contains(t, output, "Mutated protein:  MDI")
	assert.Contains(t, output, "hydrophobic -> charged")
	assert.Contains(t, output, "Severity: non-conservative")
	assert.Contains(t, output, "+GAC")
}

func TestSimpleUI_DisplayGeneration_TranslationError(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayGeneration(context.Background(), m.GenerationReport{
		Index:               2,
		Input:               "ATGGCCATT",
		Output:              "ATGGCCATTA",
		Records:             []m.MutationRecord{{Kind: m.MutationInsertion, Position: 9, Length: 1, After: "A"}},
		OriginalProtein:     "MAI",
		MutatedTranslateErr: "translation error: length 10 not multiple of three",
		Verdict:             m.VerdictSilent,
	})

	output := buf.String()
	assert.Contains(t, output, "Mutated protein:  translation error")
	assert.Contains(t, output, "Severity: silent")
}

func TestSimpleUI_DisplayGeneration_NoMutation(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayGeneration(context.Background(), m.GenerationReport{
		Index:           1,
		Input:           "ATG",
		Output:          "ATG",
		OriginalProtein: "M",
		MutatedProtein:  "M",
		Verdict:         m.VerdictSilent,
	})

	output := buf.String()
	assert.Contains(t, output, "No mutation")
	assert.NotContains(t, output, "+++")
}

func TestSimpleUI_CancelledContextPrintsNothing(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayRun(ctx, m.SimulationResult{RunID: "abc"})
	ui.DisplayGeneration(ctx, m.GenerationReport{Index: 1})
	ui.DisplaySummary(ctx, m.RunSummary{})

	assert.Empty(t, buf.String())
	require.Error(t, ui.Start(ctx))
}

func TestSimpleUI_DisplayRunAndSummary(t *testing.T) {
	ui, buf := newTestSimpleUI()
	ctx := context.Background()

	ui.DisplayRun(ctx, m.SimulationResult{
		RunID:       "run-1",
		Seed:        42,
		Environment: m.EnvironmentHighRadiation,
		Kind:        m.MutationSubstitution,
		BaseRate:    0.05,
		Initial:     "ATGGCC",
	})
	ui.DisplaySummary(ctx, m.RunSummary{
		Generations:   3,
		InitialLength: 6,
		FinalLength:   9,
		Records:       map[m.MutationKind]int{m.MutationInsertion: 3},
		Verdicts:      map[m.ImpactVerdict]int{m.VerdictSilent: 3},
	})

	output := buf.String()
	assert.Contains(t, output, "Run run-1")
	assert.Contains(t, output, "Environment: high_radiation")
	assert.Contains(t, output, "Seed: 42")
	assert.Contains(t, output, "Initial sequence (6 bases): ATGGCC")
	assert.Contains(t, output, "6 -> 9")
	assert.Contains(t, output, "Events: insertion")
	assert.Contains(t, output, "Verdict: silent")
}

func TestSimpleUI_DisplayLineagesSortsByIndex(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayLineages(context.Background(), []m.LineageResult{
		{Lineage: 1, Result: m.SimulationResult{Seed: 8, Final: "ATGATG"}},
		{Lineage: 0, Result: m.SimulationResult{Seed: 7, Final: "ATG"}},
	})

	output := buf.String()
	assert.Contains(t, output, "Lineages (2)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(" 7 ")), bytes.Index(buf.Bytes(), []byte(" 8 ")))
}

func TestSimpleUI_DisplayTranslation(t *testing.T) {
	t.Run("protein", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		ui.DisplayTranslation(context.Background(), "ATGTAA", "M*", nil)
		assert.Contains(t, buf.String(), "Protein (2 residues): M*")
	})

	t.Run("error", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		ui.DisplayTranslation(context.Background(), "ATGT", "", errors.New("boom"))
		assert.Contains(t, buf.String(), "Translation error: boom")
		assert.NotContains(t, buf.String(), "Protein")
	})
}

func TestSimpleUI_DisplayImpact(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayImpact(context.Background(), "MAI", "MVI", m.VerdictConservative, []m.PositionalChange{{
		Position:         1,
		Original:         "A",
		Mutated:          "V",
		OriginalProperty: m.PropertyHydrophobic,
		MutatedProperty:  m.PropertyHydrophobic,
	}})

	output := buf.String()
	assert.Contains(t, output, "Severity: conservative")
	assert.Contains(t, output, "hydrophobic")
	assert.NotContains(t, output, "->")
}
