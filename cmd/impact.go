package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"mutagene.dev/pkg/mutagene/internal/domain"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

var impactPolicyFlag string

// impactCmd represents the impact command.
var impactCmd = newImpactCmd()

func newImpactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impact <original> <mutated>",
		Short: "Classify the protein-level impact between two sequences",
		Long: `Translate both sequences and compare the proteins residue by residue over
their common length. The verdict is silent, conservative (same amino-acid
class) or non-conservative (class changed).

` + sequenceHelp,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		// simulate binds the same key; rebinding here makes this flag the
		// one that overrides simulate.policy from config or env.
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlagToConfig(cmd.Flags().Lookup(policyFlagName), policyConfigKey)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := parseSequenceArg("original sequence", args[0])
			if err != nil {
				return err
			}

			mutated, err := parseSequenceArg("mutated sequence", args[1])
			if err != nil {
				return err
			}

			value := viper.GetString(policyConfigKey)

			policy, err := m.ParseImpactPolicy(value)
			if err != nil {
				return &domain.ConfigurationError{Field: "impact policy", Value: value, Reason: "expected escalating or last-write-wins"}
			}

			return workflow.Impact(cmd.Context(), domain.ImpactArgs{
				Original: original,
				Mutated:  mutated,
				Policy:   policy,
			})
		},
	}

	cmd.Flags().StringVar(&impactPolicyFlag, policyFlagName, defaultPolicy, "impact policy: escalating or last-write-wins")

	return cmd
}

func init() {
	rootCmd.AddCommand(impactCmd)
}
