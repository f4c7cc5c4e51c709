package domain

import (
	"strings"

	m "mutagene.dev/pkg/mutagene/internal/model"
)

// Translator converts nucleotide sequences into proteins.
type Translator interface {
	Translate(seq m.Sequence) (m.Protein, error)
}

type translator struct {
	code map[string]byte
}

// standardCode is NCBI translation table 1.
var standardCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// NewTranslator returns a translator for the standard genetic code.
func NewTranslator() Translator {
	return &translator{code: standardCode}
}

// Translate reads the sequence in frame from the first base. Stop codons are
// emitted as '*' and reading continues, so the protein always has len/3
// residues. Codons outside the table become 'X'.
func (t *translator) Translate(seq m.Sequence) (m.Protein, error) {
	if seq.Len()%3 != 0 {
		return "", &TranslationError{Length: seq.Len(), Reason: reasonLengthNotMultipleOfThree}
	}

	var protein strings.Builder

	protein.Grow(seq.Len() / 3)

	for i := 0; i < seq.Len(); i += 3 {
		residue, ok := t.code[string(seq[i:i+3])]
		if !ok {
			residue = m.UnknownResidue
		}

		protein.WriteByte(residue)
	}

	return m.Protein(protein.String()), nil
}
