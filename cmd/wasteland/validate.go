package main

import (
	"github.com/aretw0/wasteland/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check the map for consistency",
	Long:  `Reports duplicate records, missing nodes, missing start nodes and goals no walk could reach.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Validate(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addQueryFlags(validateCmd)
}
