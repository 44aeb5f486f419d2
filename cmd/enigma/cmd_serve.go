package main

import (
	"context"

	"github.com/spf13/cobra"

	"enigma/internal/logging"
	"enigma/internal/mcpserver"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the machine over MCP on stdio",
		Long: `Starts a Model Context Protocol server over stdin/stdout exposing the
encipher and list_rotors tools. The server watches its parent process and
shuts down when the client disappears.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	def, err := loadDefinition()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting enigma MCP server over stdio")
	return mcpserver.NewServer(def).Run(ctx)
}
