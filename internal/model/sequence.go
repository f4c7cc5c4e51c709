// Package model defines the data structures for sequence evolution simulation.
package model

import (
	"fmt"
	"strings"
	"unicode"
)

// Nucleotide bases in the order used for random choice.
var Bases = []byte{'A', 'T', 'C', 'G'}

// Sequence is an immutable nucleotide sequence over {A, T, C, G}.
type Sequence string

// ParseSequence normalises raw input (case, whitespace) and rejects symbols
// outside the nucleotide alphabet.
func ParseSequence(raw string) (Sequence, error) {
	var b strings.Builder

	b.Grow(len(raw))

	for i, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}

		upper := unicode.ToUpper(r)
		if upper > unicode.MaxASCII || !IsBase(byte(upper)) {
			return "", fmt.Errorf("invalid nucleotide %q at offset %d", r, i)
		}

		b.WriteRune(upper)
	}

	return Sequence(b.String()), nil
}

// IsBase reports whether b is one of A, T, C, G.
func IsBase(b byte) bool {
	return b == 'A' || b == 'T' || b == 'C' || b == 'G'
}

// Len returns the number of bases.
func (s Sequence) Len() int {
	return len(s)
}

// Bases returns a fresh copy of the bases that callers may modify.
func (s Sequence) Bases() []byte {
	return []byte(s)
}

// Codons splits the sequence into consecutive triplets. A trailing partial
// codon is returned as the last element.
func (s Sequence) Codons() []string {
	codons := make([]string, 0, (len(s)+2)/3)

	for i := 0; i < len(s); i += 3 {
		end := min(i+3, len(s))
		codons = append(codons, string(s[i:end]))
	}

	return codons
}

// String implements fmt.Stringer.
func (s Sequence) String() string {
	return string(s)
}

// Protein is a sequence of single-letter amino-acid codes. Stop codons are
// written as StopResidue.
type Protein string

const (
	// StopResidue marks a stop codon in a translated protein.
	StopResidue byte = '*'
	// UnknownResidue marks a codon that is not in the genetic code.
	UnknownResidue byte = 'X'
)

// Len returns the number of residues.
func (p Protein) Len() int {
	return len(p)
}

// String implements fmt.Stringer.
func (p Protein) String() string {
	return string(p)
}
