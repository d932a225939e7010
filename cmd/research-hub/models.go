// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-hub/internal/ollama"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show which summarization model the service would use",
	Long: `Models reports the outcome of model resolution: the explicitly configured
identifier when one is set, otherwise the first installed model detected from
the ollama CLI, otherwise the built-in default.`,
	Run: func(cmd *cobra.Command, args []string) {
		explicit := viper.GetString("ollama_model")
		if explicit == "" {
			explicit = loadedSecrets.Get("ollama-model", "")
		}

		client := ollama.NewClient()
		if explicit != "" {
			fmt.Printf("configured model: %s\n", explicit)
			return
		}

		detected, err := client.DetectModel(cmd.Context())
		if err != nil {
			fmt.Printf("detection failed (%v), falling back to %s\n", err, ollama.DefaultModel)
			return
		}
		fmt.Printf("detected model: %s\n", detected)
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
