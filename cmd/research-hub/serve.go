// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-hub/internal/mcpserver"
	"github.com/pdiddy/research-hub/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server with the MCP endpoint mounted at /mcp",
	Long: `Serve starts the HTTP surface: GET /search runs one aggregation and returns
the combined JSON result, GET /healthz reports liveness, and the MCP
streamable-HTTP transport is mounted at /mcp for agent frameworks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, model := buildPipeline(cmd.Context())
		slog.Info("using ollama model", "model", model)

		mcpSrv := mcpserver.New(agg, version)
		cfg := serverConfig()
		engine := server.New(agg, cfg, mcpserver.StreamableHTTP(mcpSrv))

		slog.Info("starting HTTP server", "addr", cfg.ListenAddr)
		if err := engine.Run(cfg.ListenAddr); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
