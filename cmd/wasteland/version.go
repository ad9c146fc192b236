package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/wasteland"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wasteland",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wasteland version %s\n", strings.TrimSpace(wasteland.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
