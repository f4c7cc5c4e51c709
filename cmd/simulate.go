package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"mutagene.dev/pkg/mutagene/internal/domain"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

const simulateLongDescription = `Simulate a lineage of the given sequence (default: a 39-base example gene).

Every generation mutates the previous generation's output with the selected
operator at the base rate scaled by the environment (high_radiation doubles
it, high_pressure halves it). Use --lineages to run several independent
lineages from the same ancestor; lineage i uses seed+i.

` + sequenceHelp

var generationsFlag int
var rateFlag float64
var environmentFlag string
var mutationFlag string
var seedFlag uint64
var policyFlag string
var lineagesFlag int
var parallelFlag int
var exportFlag string
var chartFlag string
var tuiFlag bool

// simulateCmd represents the simulate command.
var simulateCmd = newSimulateCmd()

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "simulate [sequence]",
		Short:        "Simulate sequence evolution over generations",
		Long:         simulateLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			simulateArgs, err := buildSimulateArgs(args, time.Now)
			if err != nil {
				return err
			}

			return workflow.Simulate(cmd.Context(), simulateArgs)
		},
	}

	configureSimulateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func configureSimulateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&generationsFlag, generationsFlagName, "g", defaultGenerations, "number of generations to simulate")
	bindFlagToConfig(cmd.Flags().Lookup(generationsFlagName), generationsConfigKey)

	cmd.Flags().Float64VarP(&rateFlag, rateFlagName, "r", defaultRate, "base mutation rate in [0, 1]")
	bindFlagToConfig(cmd.Flags().Lookup(rateFlagName), rateConfigKey)

	cmd.Flags().StringVarP(&environmentFlag, environmentFlagName, "e", defaultEnvironment, "environment: normal, high_radiation or high_pressure")
	bindFlagToConfig(cmd.Flags().Lookup(environmentFlagName), environmentConfigKey)

	cmd.Flags().StringVarP(&mutationFlag, mutationFlagName, "m", defaultMutation, "mutation type: substitution, insertion, deletion or duplication")
	bindFlagToConfig(cmd.Flags().Lookup(mutationFlagName), mutationConfigKey)

	cmd.Flags().Uint64Var(&seedFlag, seedFlagName, defaultSeed, "random seed (0 picks a time-based seed)")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), seedConfigKey)

	cmd.Flags().StringVar(&policyFlag, policyFlagName, defaultPolicy, "impact policy: escalating or last-write-wins")
	bindFlagToConfig(cmd.Flags().Lookup(policyFlagName), policyConfigKey)

	cmd.Flags().IntVar(&lineagesFlag, lineagesFlagName, defaultLineages, "number of independent lineages")
	bindFlagToConfig(cmd.Flags().Lookup(lineagesFlagName), lineagesConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of lineages simulated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringVar(&exportFlag, exportFlagName, "", "write the lineages to a .yaml or .json file")
	cmd.Flags().StringVar(&chartFlag, chartFlagName, "", "plot sequence length per generation (.svg, .png, .pdf)")
	cmd.Flags().BoolVar(&tuiFlag, tuiFlagName, false, "show the report in an interactive pager")
}

// buildSimulateArgs resolves flags, config and environment into workflow
// arguments. Every value is checked strictly; the first invalid one is
// returned as a *domain.ConfigurationError.
func buildSimulateArgs(positional []string, now func() time.Time) (domain.SimulateArgs, error) {
	raw := defaultSequence
	if len(positional) > 0 {
		raw = positional[0]
	}

	sequence, err := parseSequenceArg("sequence", raw)
	if err != nil {
		return domain.SimulateArgs{}, err
	}

	kind, err := m.ParseMutationKind(viper.GetString(mutationConfigKey))
	if err != nil {
		return domain.SimulateArgs{}, &domain.ConfigurationError{Field: "mutation type", Value: viper.GetString(mutationConfigKey), Reason: "expected one of substitution, insertion, deletion, duplication"}
	}

	environment, err := m.ParseEnvironment(viper.GetString(environmentConfigKey))
	if err != nil {
		return domain.SimulateArgs{}, &domain.ConfigurationError{Field: "environment", Value: viper.GetString(environmentConfigKey), Reason: "expected one of normal, high_radiation, high_pressure"}
	}

	policy, err := m.ParseImpactPolicy(viper.GetString(policyConfigKey))
	if err != nil {
		return domain.SimulateArgs{}, &domain.ConfigurationError{Field: "impact policy", Value: viper.GetString(policyConfigKey), Reason: "expected escalating or last-write-wins"}
	}

	lineages := viper.GetInt(lineagesConfigKey)
	if lineages < 1 {
		return domain.SimulateArgs{}, &domain.ConfigurationError{Field: "lineages", Value: lineages, Reason: "must be at least 1"}
	}

	parallel := viper.GetInt(parallelConfigKey)
	if parallel < 1 {
		return domain.SimulateArgs{}, &domain.ConfigurationError{Field: "parallel", Value: parallel, Reason: "must be at least 1"}
	}

	seed := viper.GetUint64(seedConfigKey)
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}

	args := domain.SimulateArgs{
		SimulationArgs: m.SimulationArgs{
			Sequence:    sequence,
			Generations: viper.GetInt(generationsConfigKey),
			BaseRate:    viper.GetFloat64(rateConfigKey),
			Environment: environment,
			Kind:        kind,
			Policy:      policy,
			Seed:        seed,
		},
		Lineages:    lineages,
		Parallel:    parallel,
		Export:      m.Path(strings.TrimSpace(exportFlag)),
		Chart:       m.Path(strings.TrimSpace(chartFlag)),
		Interactive: tuiFlag,
	}

	if err := domain.ValidateArgs(args.SimulationArgs); err != nil {
		return domain.SimulateArgs{}, err
	}

	return args, nil
}

func parseSequenceArg(field, raw string) (m.Sequence, error) {
	sequence, err := m.ParseSequence(raw)
	if err != nil {
		return "", &domain.ConfigurationError{Field: field, Value: raw, Reason: err.Error()}
	}

	return sequence, nil
}
