// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-hub/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the MCP tool and resource over stdio",
	Long: `Mcp runs the Model Context Protocol server on stdin/stdout for agent
frameworks that spawn their tools as subprocesses. The same search tool and
research://{query} resource are available over HTTP via serve.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, model := buildPipeline(cmd.Context())
		slog.Info("using ollama model", "model", model)

		return mcpserver.ServeStdio(mcpserver.New(agg, version))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
