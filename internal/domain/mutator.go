package domain

import (
	"log/slog"

	m "mutagene.dev/pkg/mutagene/internal/model"
)

// Mutator applies mutation operators to nucleotide sequences.
//
// Substitution evaluates rate independently for every base and may change
// many sites in one call. Insertion, deletion and duplication evaluate rate
// once per call and produce at most one event. The asymmetry is part of the
// simulation model and must not be unified.
type Mutator interface {
	Mutate(seq m.Sequence, rate float64, kind m.MutationKind) (m.Sequence, []m.MutationRecord)
}

type mutator struct {
	rng Rand
}

// NewMutator creates a Mutator drawing from rng.
func NewMutator(rng Rand) Mutator {
	return &mutator{rng: rng}
}

// Mutate returns a new sequence and the events that produced it. When the
// gate fails, a length precondition is unmet or kind is unknown, seq is
// returned unchanged with no records.
func (mu *mutator) Mutate(seq m.Sequence, rate float64, kind m.MutationKind) (m.Sequence, []m.MutationRecord) {
	switch kind {
	case m.MutationSubstitution:
		return mu.substitute(seq, rate)
	case m.MutationInsertion:
		return mu.insert(seq, rate)
	case m.MutationDeletion:
		return mu.delete(seq, rate)
	case m.MutationDuplication:
		return mu.duplicate(seq, rate)
	}

	slog.Debug("Unknown mutation kind, sequence left unchanged", "kind", kind)

	return seq, nil
}

func (mu *mutator) fires(rate float64) bool {
	return mu.rng.Float64() < rate
}

func (mu *mutator) substitute(seq m.Sequence, rate float64) (m.Sequence, []m.MutationRecord) {
	bases := seq.Bases()

	var records []m.MutationRecord

	for i, original := range bases {
		if !mu.fires(rate) {
			continue
		}

		alternatives := alternativeBases(original)
		replacement := alternatives[mu.rng.IntN(len(alternatives))]
		bases[i] = replacement

		records = append(records, m.MutationRecord{
			Kind:     m.MutationSubstitution,
			Position: i,
			Length:   1,
			Before:   string(original),
			After:    string(replacement),
		})
	}

	if len(records) == 0 {
		return seq, nil
	}

	return m.Sequence(bases), records
}

func alternativeBases(original byte) []byte {
	alternatives := make([]byte, 0, len(m.Bases))

	for _, base := range m.Bases {
		if base != original {
			alternatives = append(alternatives, base)
		}
	}

	return alternatives
}

func (mu *mutator) insert(seq m.Sequence, rate float64) (m.Sequence, []m.MutationRecord) {
	if !mu.fires(rate) {
		return seq, nil
	}

	at := mu.rng.IntN(seq.Len() + 1)
	base := m.Bases[mu.rng.IntN(len(m.Bases))]

	mutated := string(seq[:at]) + string(base) + string(seq[at:])

	return m.Sequence(mutated), []m.MutationRecord{{
		Kind:     m.MutationInsertion,
		Position: at,
		Length:   1,
		After:    string(base),
	}}
}

func (mu *mutator) delete(seq m.Sequence, rate float64) (m.Sequence, []m.MutationRecord) {
	if !mu.fires(rate) || seq.Len() <= 1 {
		return seq, nil
	}

	at := mu.rng.IntN(seq.Len())
	mutated := string(seq[:at]) + string(seq[at+1:])

	return m.Sequence(mutated), []m.MutationRecord{{
		Kind:     m.MutationDeletion,
		Position: at,
		Length:   1,
		Before:   string(seq[at]),
	}}
}

// duplicate draws, in order: start in [0, n-2], length in [1, n-start-1] and
// the insertion point in [0, n] where n is the length before splicing.
func (mu *mutator) duplicate(seq m.Sequence, rate float64) (m.Sequence, []m.MutationRecord) {
	if !mu.fires(rate) || seq.Len() <= 1 {
		return seq, nil
	}

	n := seq.Len()
	start := mu.rng.IntN(n - 1)
	length := 1 + mu.rng.IntN(n-start-1)
	segment := string(seq[start : start+length])
	at := mu.rng.IntN(n + 1)

	mutated := string(seq[:at]) + segment + string(seq[at:])

	return m.Sequence(mutated), []m.MutationRecord{{
		Kind:     m.MutationDuplication,
		Position: start,
		Length:   length,
		After:    segment,
		InsertAt: at,
	}}
}
