// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-hub/internal/aggregate"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run one aggregation from the terminal",
	Long: `Search fans the query out to arXiv, the news API, and the blog feeds, prints
the per-source results and the digest, and can save the run to a result file
for later inspection (YAML by default, JSON for a .json extension).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max-results")
		asJSON, _ := cmd.Flags().GetBool("json")
		outPath, _ := cmd.Flags().GetString("out")

		agg, _ := buildPipeline(cmd.Context())
		res := agg.Aggregate(cmd.Context(), args[0], maxResults)

		if outPath != "" {
			if err := aggregate.WriteResultFile(outPath, args[0], maxResults, res); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved results to %s\n", outPath)
		}

		if asJSON {
			return aggregate.FormatJSON(res, os.Stdout)
		}
		aggregate.FormatTable(res, os.Stdout)
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("max-results", aggregate.DefaultMaxResults, "maximum results per source")
	searchCmd.Flags().Bool("json", false, "output the raw JSON result")
	searchCmd.Flags().String("out", "", "save the run to a result file (.yaml or .json)")

	rootCmd.AddCommand(searchCmd)
}
