package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"noderunner.io/libs/nodecore"
)

var (
	verbose bool
	input   string
	output  string
	summary bool
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "noderunner",
	Short:         "noderunner is a single-shot data processing tool",
	Long:          `noderunner reads an input file, records processing metadata for it, and optionally writes the result to an output file as pretty-printed JSON.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		nodecore.Setup(verbose)

		report, err := nodecore.Run(cmd.Context(), nodecore.RunConfig{
			Verbose: verbose,
			Input:   input,
			Output:  output,
		})
		if err != nil {
			return err
		}

		if summary {
			displaySummary(os.Stdout, report)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&input, "input", "i", "", "Input file path")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output file path")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a run summary table")
}
