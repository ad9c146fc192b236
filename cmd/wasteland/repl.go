package main

import (
	"github.com/aretw0/wasteland/internal/cli"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [file]",
	Short: "Query a map interactively",
	Long:  `Loads a map and answers walk, sync and trace commands read line by line from stdin.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Repl(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	addEngineFlags(replCmd)
}
