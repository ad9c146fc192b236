package main

import (
	"github.com/aretw0/wasteland/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the map visualization",
	Long:  `Outputs a Mermaid diagram (graph LR) of the map. With --trace, the walk from --start to --goal is highlighted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		trace, _ := cmd.Flags().GetBool("trace")
		return cli.Graph(cmd.Context(), opts, trace)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addQueryFlags(graphCmd)
	graphCmd.Flags().Uint64("step-limit", 0, "Fail the traced walk past this many steps (0 = 65536)")
	graphCmd.Flags().Bool("trace", false, "Highlight the walk from --start to --goal")
}
