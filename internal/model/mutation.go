package model

import (
	"fmt"
	"strings"
)

// MutationKind represents the category of mutation operator.
type MutationKind string

const (
	// MutationSubstitution replaces individual bases, evaluated per base.
	MutationSubstitution MutationKind = "substitution"
	// MutationInsertion inserts a single random base.
	MutationInsertion MutationKind = "insertion"
	// MutationDeletion removes a single base.
	MutationDeletion MutationKind = "deletion"
	// MutationDuplication copies a contiguous segment to a random position.
	MutationDuplication MutationKind = "duplication"
)

// MutationKinds lists every supported operator.
var MutationKinds = []MutationKind{
	MutationSubstitution,
	MutationInsertion,
	MutationDeletion,
	MutationDuplication,
}

// ParseMutationKind resolves a case-insensitive operator name.
func ParseMutationKind(value string) (MutationKind, error) {
	kind := MutationKind(strings.ToLower(strings.TrimSpace(value)))
	if !kind.Valid() {
		return "", fmt.Errorf("unsupported mutation type: %q", value)
	}

	return kind, nil
}

// Valid reports whether k is a known operator.
func (k MutationKind) Valid() bool {
	for _, known := range MutationKinds {
		if k == known {
			return true
		}
	}

	return false
}

// MutationRecord describes a single mutation event. Positions are 0-based
// offsets into the sequence the operator was applied to.
type MutationRecord struct {
	Kind     MutationKind `json:"kind" yaml:"kind"`
	Position int          `json:"position" yaml:"position"`
	Length   int          `json:"length" yaml:"length"`
	Before   string       `json:"before,omitempty" yaml:"before,omitempty"`
	After    string       `json:"after,omitempty" yaml:"after,omitempty"`
	InsertAt int          `json:"insert_at" yaml:"insert_at"` // duplication only
}

// LengthDelta is the change in sequence length caused by the event.
func (r MutationRecord) LengthDelta() int {
	switch r.Kind {
	case MutationInsertion, MutationDuplication:
		return r.Length
	case MutationDeletion:
		return -r.Length
	case MutationSubstitution:
		return 0
	}

	return 0
}
