// Package cmd provides the root command and CLI setup for mutagene.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"mutagene.dev/pkg/mutagene/internal/adapter"
	"mutagene.dev/pkg/mutagene/internal/controller"
	"mutagene.dev/pkg/mutagene/internal/domain"
)

var translator domain.Translator
var classifier domain.Classifier
var simulator domain.Simulator
var lineageRunner domain.LineageRunner
var reportWriter adapter.ReportWriter
var chartWriter adapter.ChartWriter
var workflow domain.Workflow
var ui controller.UI

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides the rotating log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	translator = domain.NewTranslator()
	classifier = domain.NewClassifier()
	simulator = domain.NewSimulator(translator, classifier)
	lineageRunner = domain.NewLineageRunner(simulator)
	reportWriter = adapter.NewLocalReportWriter()
	chartWriter = adapter.NewLocalChartWriter()
	workflow = domain.NewWorkflow(
		simulator,
		lineageRunner,
		translator,
		classifier,
		reportWriter,
		chartWriter,
		ui,
	)
}

const sequenceHelp = `Sequences are written over A, T, C and G. Case and whitespace are ignored.`

const rootLongDescription = `Mutagene simulates the evolution of a nucleotide sequence over a number of
generations. Each generation applies one mutation operator, translates the
sequence with the standard genetic code and classifies the protein-level
impact as silent, conservative or non-conservative.

` + sequenceHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutagene",
		Short: "Nucleotide sequence evolution simulator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running simulation between generations.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
