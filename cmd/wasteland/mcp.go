package main

import (
	"github.com/aretw0/wasteland/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp [file]",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts Wasteland as an MCP Server exposing the solve and graph tools.
A map given as argument is published as the wasteland://map resource and used
when a tool call omits its map.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd, args)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		return cli.ServeMCP(cmd.Context(), opts, transport, port)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	addEngineFlags(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", cli.TransportStdio, "Transport type (stdio, sse)")
	mcpCmd.Flags().IntP("port", "p", 8080, "Port for SSE server")
}
