package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

var verdictStyles = map[m.ImpactVerdict]lipgloss.Style{
	m.VerdictSilent:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	m.VerdictConservative:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	m.VerdictNonConservative: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// SimpleUI prints plain text reports through cobra's output writer.
type SimpleUI struct {
	out    func() io.Writer
	styled bool
}

// NewSimpleUI creates a new SimpleUI. styled enables ANSI colours.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{out: cmd.OutOrStdout, styled: styled}
}

func newWriterSimpleUI(w io.Writer, styled bool) *SimpleUI {
	return &SimpleUI{out: func() io.Writer { return w }, styled: styled}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayRun prints the run header.
func (s *SimpleUI) DisplayRun(ctx context.Context, result m.SimulationResult) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", s.heading(fmt.Sprintf("Run %s", result.RunID)))
	s.printf("Mutation: %s | Environment: %s | Base rate: %.4f | Seed: %d\n",
		result.Kind, result.Environment, result.BaseRate, result.Seed)
	s.printf("Initial sequence (%d bases): %s\n", result.Initial.Len(), result.Initial)
}

// DisplayGeneration narrates one generation: mutation events, both proteins,
// per-residue changes, the verdict and a codon diff.
func (s *SimpleUI) DisplayGeneration(ctx context.Context, report m.GenerationReport) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s\n", s.heading(fmt.Sprintf("Generation %d (effective rate %.4f)", report.Index, report.Rate)))

	if len(report.Records) == 0 {
		s.printf("  No mutation\n")
	}

	for _, record := range report.Records {
		s.printf("  %s\n", NarrateRecord(record))
	}

	s.printf("Original protein: %s\n", proteinOrError(report.OriginalProtein, report.OriginalTranslateErr))
	s.printf("Mutated protein:  %s\n", proteinOrError(report.MutatedProtein, report.MutatedTranslateErr))

	if len(report.Changes) > 0 {
		s.printf("%s", renderChangesTable(report.Changes))
	}

	s.printf("Severity: %s\n", s.verdict(report.Verdict))

	if len(report.Records) > 0 {
		s.printf("%s", CodonDiff(report.Input, report.Output, report.Index))
	}
}

// DisplaySummary prints aggregate statistics for a run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s\n%s", s.heading("Summary"), renderSummaryTable(summary))
}

// DisplayLineages prints one row per independent lineage.
func (s *SimpleUI) DisplayLineages(ctx context.Context, lineages []m.LineageResult) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n%s", s.heading(fmt.Sprintf("Lineages (%d)", len(lineages))), renderLineagesTable(lineages))
}

// DisplayTranslation prints a protein or the translation error.
func (s *SimpleUI) DisplayTranslation(ctx context.Context, seq m.Sequence, protein m.Protein, err error) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Sequence (%d bases): %s\n", seq.Len(), seq)

	if err != nil {
		s.printf("Translation error: %v\n", err)
		return
	}

	s.printf("Protein (%d residues): %s\n", protein.Len(), protein)
}

// DisplayImpact prints a protein comparison.
func (s *SimpleUI) DisplayImpact(ctx context.Context, original, mutated m.Protein, verdict m.ImpactVerdict, changes []m.PositionalChange) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Original protein: %s\n", original)
	s.printf("Mutated protein:  %s\n", mutated)

	if len(changes) > 0 {
		s.printf("%s", renderChangesTable(changes))
	}

	s.printf("Severity: %s\n", s.verdict(verdict))
}

func (s *SimpleUI) heading(text string) string {
	if !s.styled {
		return text
	}

	return headingStyle.Render(text)
}

func (s *SimpleUI) verdict(verdict m.ImpactVerdict) string {
	style, ok := verdictStyles[verdict]
	if !s.styled || !ok {
		return string(verdict)
	}

	return style.Render(string(verdict))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out(), format, args...)
}

// NarrateRecord renders a mutation event as one sentence with 1-based
// positions.
func NarrateRecord(record m.MutationRecord) string {
	switch record.Kind {
	case m.MutationSubstitution:
		return fmt.Sprintf("Substitution: %s -> %s at position %d", record.Before, record.After, record.Position+1)
	case m.MutationInsertion:
		return fmt.Sprintf("Insertion: %s at position %d", record.After, record.Position+1)
	case m.MutationDeletion:
		return fmt.Sprintf("Deletion: %s removed from position %d", record.Before, record.Position+1)
	case m.MutationDuplication:
		return fmt.Sprintf("Duplication: segment %s (positions %d-%d) inserted at position %d",
			record.After, record.Position+1, record.Position+record.Length, record.InsertAt+1)
	}

	return fmt.Sprintf("%s at position %d", record.Kind, record.Position+1)
}

// CodonDiff renders a unified diff of the two sequences, one codon per line.
func CodonDiff(before, after m.Sequence, generation int) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(before.Codons(), "\n")),
		B:        difflib.SplitLines(strings.Join(after.Codons(), "\n")),
		FromFile: fmt.Sprintf("generation %d", generation-1),
		ToFile:   fmt.Sprintf("generation %d", generation),
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}

func proteinOrError(protein m.Protein, translateErr string) string {
	if translateErr != "" {
		return translateErr
	}

	return string(protein)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func renderChangesTable(changes []m.PositionalChange) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Position", "Original", "Mutated", "Class"})

	for _, change := range changes {
		class := string(change.OriginalProperty)
		if !change.Conservative() {
			class = fmt.Sprintf("%s -> %s", change.OriginalProperty, change.MutatedProperty)
		}

		table.Append([]string{
			fmt.Sprintf("%d", change.Position+1),
			change.Original,
			change.Mutated,
			class,
		})
	}

	table.Render()

	return buf.String()
}

func renderSummaryTable(summary m.RunSummary) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Metric", "Value"})
	table.Append([]string{"Generations", fmt.Sprintf("%d", summary.Generations)})
	table.Append([]string{"Length", fmt.Sprintf("%d -> %d", summary.InitialLength, summary.FinalLength)})
	table.Append([]string{"Mean length", fmt.Sprintf("%.2f ± %.2f", summary.MeanLength, summary.StdDevLength)})
	table.Append([]string{"Mutations per generation", fmt.Sprintf("%.2f ± %.2f", summary.MeanMutations, summary.StdDevMutations)})

	for _, kind := range m.MutationKinds {
		if count, ok := summary.Records[kind]; ok {
			table.Append([]string{"Events: " + string(kind), fmt.Sprintf("%d", count)})
		}
	}

	for _, verdict := range []m.ImpactVerdict{m.VerdictSilent, m.VerdictConservative, m.VerdictNonConservative} {
		table.Append([]string{"Verdict: " + string(verdict), fmt.Sprintf("%d", summary.Verdicts[verdict])})
	}

	table.Append([]string{"Translation failures", fmt.Sprintf("%d", summary.TranslationFailures)})
	table.Render()

	return buf.String()
}

func renderLineagesTable(lineages []m.LineageResult) string {
	sorted := make([]m.LineageResult, len(lineages))
	copy(sorted, lineages)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Lineage < sorted[j].Lineage
	})

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Lineage", "Seed", "Final length", "Events", "Non-conservative", "Conservative", "Silent"})

	for _, lineage := range sorted {
		events := 0
		for _, count := range lineage.Summary.Records {
			events += count
		}

		table.Append([]string{
			fmt.Sprintf("%d", lineage.Lineage),
			fmt.Sprintf("%d", lineage.Result.Seed),
			fmt.Sprintf("%d", lineage.Result.Final.Len()),
			fmt.Sprintf("%d", events),
			fmt.Sprintf("%d", lineage.Summary.Verdicts[m.VerdictNonConservative]),
			fmt.Sprintf("%d", lineage.Summary.Verdicts[m.VerdictConservative]),
			fmt.Sprintf("%d", lineage.Summary.Verdicts[m.VerdictSilent]),
		})
	}

	table.Render()

	return buf.String()
}
