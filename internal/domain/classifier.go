package domain

import m "mutagene.dev/pkg/mutagene/internal/model"

// Classifier maps amino-acid codes to their biochemical class.
type Classifier interface {
	Classify(residue byte) m.AminoAcidProperty
}

type classifier struct {
	table map[byte]m.AminoAcidProperty
}

var aminoAcidProperties = map[byte]m.AminoAcidProperty{
	'A': m.PropertyHydrophobic, 'C': m.PropertyPolar, 'D': m.PropertyCharged, 'E': m.PropertyCharged,
	'F': m.PropertyHydrophobic, 'G': m.PropertyPolar, 'H': m.PropertyCharged, 'I': m.PropertyHydrophobic,
	'K': m.PropertyCharged, 'L': m.PropertyHydrophobic, 'M': m.PropertyHydrophobic, 'N': m.PropertyPolar,
	'P': m.PropertyHydrophobic, 'Q': m.PropertyPolar, 'R': m.PropertyCharged, 'S': m.PropertyPolar,
	'T': m.PropertyPolar, 'V': m.PropertyHydrophobic, 'W': m.PropertyHydrophobic, 'Y': m.PropertyPolar,
}

// NewClassifier returns the standard twenty-residue classifier.
func NewClassifier() Classifier {
	return &classifier{table: aminoAcidProperties}
}

func (c *classifier) Classify(residue byte) m.AminoAcidProperty {
	if property, ok := c.table[residue]; ok {
		return property
	}

	return m.PropertyUnknown
}
