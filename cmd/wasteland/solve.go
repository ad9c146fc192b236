package main

import (
	"github.com/aretw0/wasteland/internal/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Count the steps of the configured walks",
	Long: `Loads a map (text, or YAML for .yaml/.yml; "-" reads stdin) and reports the
steps from the start node to the goal node and the step at which every walk
from a start-suffix node stands on a goal-suffix node.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Solve(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addQueryFlags(solveCmd)
	addEngineFlags(solveCmd)
	solveCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, json, yaml or markdown")
}
