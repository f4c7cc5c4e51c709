package domain

import (
	"gonum.org/v1/gonum/stat"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

// Summarize aggregates verdicts, mutation events and length statistics.
func Summarize(result m.SimulationResult) m.RunSummary {
	summary := m.RunSummary{
		Generations:   len(result.Reports),
		Verdicts:      map[m.ImpactVerdict]int{},
		Records:       map[m.MutationKind]int{},
		InitialLength: result.Initial.Len(),
		FinalLength:   result.Final.Len(),
	}

	lengths := make([]float64, 0, len(result.Reports))
	counts := make([]float64, 0, len(result.Reports))

	for _, report := range result.Reports {
		summary.Verdicts[report.Verdict]++

		for _, record := range report.Records {
			summary.Records[record.Kind]++
		}

		if !report.Translated() {
			summary.TranslationFailures++
		}

		lengths = append(lengths, float64(report.Output.Len()))
		counts = append(counts, float64(len(report.Records)))
	}

	summary.MeanLength, summary.StdDevLength = meanStdDev(lengths)
	summary.MeanMutations, summary.StdDevMutations = meanStdDev(counts)

	return summary
}

func meanStdDev(values []float64) (float64, float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}

	return stat.MeanStdDev(values, nil)
}
