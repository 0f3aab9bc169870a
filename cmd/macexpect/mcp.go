package main

import (
	"log"
	"os"

	"github.com/aretw0/macexpect/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server on stdio",
		Long: `Starts an MCP server over Standard Input/Output exposing the
compute_expectation tool, so AI agents can query the protocol model.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, _, err := setup(cmd)
			if err != nil {
				return err
			}

			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			return mcp.NewServer(analyzer).ServeStdio()
		},
	}
}
