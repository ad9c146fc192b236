package main

import (
	"github.com/aretw0/wasteland/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Serves POST /solve, POST /graph, GET /healthz and GET /metrics. Maps are posted with each request.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Serve(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addEngineFlags(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
