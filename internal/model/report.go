package model

import (
	"fmt"
	"strings"
	"time"
)

// AminoAcidProperty is the coarse biochemical class of a residue.
type AminoAcidProperty string

const (
	// PropertyHydrophobic marks non-polar residues.
	PropertyHydrophobic AminoAcidProperty = "hydrophobic"
	// PropertyPolar marks polar uncharged residues.
	PropertyPolar AminoAcidProperty = "polar"
	// PropertyCharged marks residues with a charged side chain.
	PropertyCharged AminoAcidProperty = "charged"
	// PropertyUnknown is used for residues outside the table, such as stops.
	PropertyUnknown AminoAcidProperty = "unknown"
)

// ImpactVerdict classifies the severity of the protein-level change.
type ImpactVerdict string

const (
	// VerdictSilent means no compared residue changed.
	VerdictSilent ImpactVerdict = "silent"
	// VerdictConservative means residues changed within the same class.
	VerdictConservative ImpactVerdict = "conservative"
	// VerdictNonConservative means at least one residue changed class.
	VerdictNonConservative ImpactVerdict = "non-conservative"
)

// Severity orders verdicts from silent (0) to non-conservative (2).
func (v ImpactVerdict) Severity() int {
	switch v {
	case VerdictSilent:
		return 0
	case VerdictConservative:
		return 1
	case VerdictNonConservative:
		return 2
	}

	return -1
}

// ImpactPolicy selects how per-position outcomes fold into one verdict.
type ImpactPolicy string

const (
	// PolicyEscalating keeps the most severe outcome seen in the scan.
	PolicyEscalating ImpactPolicy = "escalating"
	// PolicyLastWriteWins keeps the outcome of the last differing position.
	PolicyLastWriteWins ImpactPolicy = "last-write-wins"
)

// ParseImpactPolicy resolves a policy name. Empty input means escalating.
func ParseImpactPolicy(value string) (ImpactPolicy, error) {
	switch policy := ImpactPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case "":
		return PolicyEscalating, nil
	case PolicyEscalating, PolicyLastWriteWins:
		return policy, nil
	}

	return "", fmt.Errorf("unknown impact policy: %q", value)
}

// PositionalChange describes one differing residue between two proteins.
type PositionalChange struct {
	Position         int               `json:"position" yaml:"position"`
	Original         string            `json:"original" yaml:"original"`
	Mutated          string            `json:"mutated" yaml:"mutated"`
	OriginalProperty AminoAcidProperty `json:"original_property" yaml:"original_property"`
	MutatedProperty  AminoAcidProperty `json:"mutated_property" yaml:"mutated_property"`
}

// Conservative reports whether the residue kept its class.
func (c PositionalChange) Conservative() bool {
	return c.OriginalProperty == c.MutatedProperty
}

// GenerationReport is the outcome of one simulated generation.
type GenerationReport struct {
	Index                int                `json:"index" yaml:"index"`
	Rate                 float64            `json:"rate" yaml:"rate"`
	Input                Sequence           `json:"input" yaml:"input"`
	Output               Sequence           `json:"output" yaml:"output"`
	Records              []MutationRecord   `json:"records" yaml:"records"`
	OriginalProtein      Protein            `json:"original_protein,omitempty" yaml:"original_protein,omitempty"`
	MutatedProtein       Protein            `json:"mutated_protein,omitempty" yaml:"mutated_protein,omitempty"`
	OriginalTranslateErr string             `json:"original_translate_error,omitempty" yaml:"original_translate_error,omitempty"`
	MutatedTranslateErr  string             `json:"mutated_translate_error,omitempty" yaml:"mutated_translate_error,omitempty"`
	Verdict              ImpactVerdict      `json:"verdict" yaml:"verdict"`
	Changes              []PositionalChange `json:"changes,omitempty" yaml:"changes,omitempty"`
}

// Translated reports whether both proteins were produced.
func (r GenerationReport) Translated() bool {
	return r.OriginalTranslateErr == "" && r.MutatedTranslateErr == ""
}

// SimulationArgs holds the inputs of a single simulation run.
type SimulationArgs struct {
	Sequence    Sequence
	Generations int
	BaseRate    float64
	Environment Environment
	Kind        MutationKind
	Policy      ImpactPolicy
	Seed        uint64
}

// SimulationResult is the lineage produced by a run.
type SimulationResult struct {
	RunID       string             `json:"run_id" yaml:"run_id"`
	Seed        uint64             `json:"seed" yaml:"seed"`
	Environment Environment        `json:"environment" yaml:"environment"`
	Kind        MutationKind       `json:"kind" yaml:"kind"`
	BaseRate    float64            `json:"base_rate" yaml:"base_rate"`
	Initial     Sequence           `json:"initial" yaml:"initial"`
	Final       Sequence           `json:"final" yaml:"final"`
	Reports     []GenerationReport `json:"reports" yaml:"reports"`
	StartedAt   time.Time          `json:"started_at" yaml:"started_at"`
	Duration    time.Duration      `json:"duration" yaml:"duration"`
}

// LineageResult pairs an independent lineage with its index and summary.
type LineageResult struct {
	Lineage int              `json:"lineage" yaml:"lineage"`
	Result  SimulationResult `json:"result" yaml:"result"`
	Summary RunSummary       `json:"summary" yaml:"summary"`
}

// Export is the document written by report exporters.
type Export struct {
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Policy      ImpactPolicy    `json:"policy" yaml:"policy"`
	Lineages    []LineageResult `json:"lineages" yaml:"lineages"`
}

// RunSummary aggregates a simulation result.
type RunSummary struct {
	Generations         int                   `json:"generations" yaml:"generations"`
	Verdicts            map[ImpactVerdict]int `json:"verdicts" yaml:"verdicts"`
	Records             map[MutationKind]int  `json:"records" yaml:"records"`
	TranslationFailures int                   `json:"translation_failures" yaml:"translation_failures"`
	InitialLength       int                   `json:"initial_length" yaml:"initial_length"`
	FinalLength         int                   `json:"final_length" yaml:"final_length"`
	MeanLength          float64               `json:"mean_length" yaml:"mean_length"`
	StdDevLength        float64               `json:"stddev_length" yaml:"stddev_length"`
	MeanMutations       float64               `json:"mean_mutations" yaml:"mean_mutations"`
	StdDevMutations     float64               `json:"stddev_mutations" yaml:"stddev_mutations"`
}
