package cmd

import (
	"github.com/spf13/cobra"
	"mutagene.dev/pkg/mutagene/internal/domain"
)

// translateCmd represents the translate command.
var translateCmd = newTranslateCmd()

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "translate <sequence>",
		Short:        "Translate a sequence with the standard genetic code",
		Long:         "Translate a nucleotide sequence codon by codon. Stop codons are shown as '*'.\n\n" + sequenceHelp,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sequence, err := parseSequenceArg("sequence", args[0])
			if err != nil {
				return err
			}

			return workflow.Translate(cmd.Context(), domain.TranslateArgs{Sequence: sequence})
		},
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
