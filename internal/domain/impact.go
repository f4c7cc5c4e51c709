package domain

import m "mutagene.dev/pkg/mutagene/internal/model"

// ImpactAnalyzer compares two proteins residue by residue.
type ImpactAnalyzer interface {
	Evaluate(original, mutated m.Protein) (m.ImpactVerdict, []m.PositionalChange)
}

type impactAnalyzer struct {
	classifier Classifier
	policy     m.ImpactPolicy
}

// NewImpactAnalyzer creates an analyzer. An empty policy means escalating.
func NewImpactAnalyzer(classifier Classifier, policy m.ImpactPolicy) ImpactAnalyzer {
	if policy == "" {
		policy = m.PolicyEscalating
	}

	return &impactAnalyzer{classifier: classifier, policy: policy}
}

// Evaluate scans the overlapping prefix of both proteins. Residues beyond the
// shorter protein are not compared.
func (ia *impactAnalyzer) Evaluate(original, mutated m.Protein) (m.ImpactVerdict, []m.PositionalChange) {
	verdict := m.VerdictSilent

	var changes []m.PositionalChange

	for i := range min(original.Len(), mutated.Len()) {
		if original[i] == mutated[i] {
			continue
		}

		change := m.PositionalChange{
			Position:         i,
			Original:         string(original[i]),
			Mutated:          string(mutated[i]),
			OriginalProperty: ia.classifier.Classify(original[i]),
			MutatedProperty:  ia.classifier.Classify(mutated[i]),
		}
		changes = append(changes, change)

		outcome := m.VerdictNonConservative
		if change.Conservative() {
			outcome = m.VerdictConservative
		}

		verdict = ia.fold(verdict, outcome)
	}

	return verdict, changes
}

func (ia *impactAnalyzer) fold(current, outcome m.ImpactVerdict) m.ImpactVerdict {
	if ia.policy == m.PolicyLastWriteWins {
		return outcome
	}

	if outcome.Severity() > current.Severity() {
		return outcome
	}

	return current
}
