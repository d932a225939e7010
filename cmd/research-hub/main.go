// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-hub service.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-hub/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
// Environment and config-file values take precedence.
var loadedSecrets secrets.Store

// rootCmd is the base command for the research-hub CLI.
var rootCmd = &cobra.Command{
	Use:   "research-hub",
	Short: "Multi-source research aggregation and digest service",
	Long: `research-hub answers a research query by fanning it out to three content
sources (arXiv, a news API, and a fixed set of blog feeds), normalizing the
results, and producing a short digest with a locally installed ollama model.

The pipeline is exposed three ways: an HTTP endpoint (serve, which also mounts
the MCP surface at /mcp), an MCP stdio server for agent frameworks (mcp), and
a one-shot terminal run (search).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-hub.yaml or ~/.config/research-hub/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-hub")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-hub"))
		}
	}

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("cors_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("fetch.timeout", "30s")
	viper.SetDefault("fetch.user_agent", "research-hub/"+version)
	viper.SetDefault("fetch.max_results", 5)
	viper.SetDefault("summarize.timeout", "120s")

	viper.SetEnvPrefix("RESEARCH_HUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unprefixed forms kept for drop-in compatibility with existing deployments.
	viper.BindEnv("news_api_key", "RESEARCH_HUB_NEWS_API_KEY", "NEWS_API_KEY")
	viper.BindEnv("ollama_model", "RESEARCH_HUB_OLLAMA_MODEL", "OLLAMA_MODEL")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
