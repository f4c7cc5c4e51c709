package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

func TestTranslator_Translate(t *testing.T) {
	tests := []struct {
		name string
		seq  m.Sequence
		want m.Protein
	}{
		{"empty", "", ""},
		{"single codon", "ATG", "M"},
		{"three codons", "ATGGCCATT", "MAI"},
		{"reads through stops", "ATGGCCATTGTAATGGGCCGCTGAAAGGGTGCCCGATAG", "MAIVMGR*KGAR*"},
		{"all stops", "TAATAGTGA", "***"},
		{"unknown codon", "ATGNNN", "MX"},
	}

	translator := NewTranslator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translator.Translate(tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.seq.Len()/3, got.Len())
		})
	}
}

func TestTranslator_LengthNotMultipleOfThree(t *testing.T) {
	translator := NewTranslator()

	for _, seq := range []m.Sequence{"A", "AT", "ATGG", "ATGGCCATTG"} {
		t.Run(string(seq), func(t *testing.T) {
			protein, err := translator.Translate(seq)
			require.Error(t, err)
			assert.Empty(t, protein)
			assert.True(t, errors.Is(err, ErrTranslation))

			var translationErr *TranslationError
			require.ErrorAs(t, err, &translationErr)
			assert.Equal(t, seq.Len(), translationErr.Length)
			assert.Equal(t, "length not multiple of three", translationErr.Reason)
		})
	}
}

func TestStandardCode_Complete(t *testing.T) {
	require.Len(t, standardCode, 64)

	stops := 0

	for codon, residue := range standardCode {
		require.Len(t, codon, 3)

		if residue == m.StopResidue {
			stops++
		}
	}

	assert.Equal(t, 3, stops)
}
