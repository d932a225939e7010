// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/research-hub/pkg/types"
)

// FormatTable writes the result as a human-readable report to w: one section
// per bucket followed by the digest.
func FormatTable(res types.AggregateResult, w io.Writer) {
	sections := []struct {
		name  string
		items []types.SourceResult
	}{
		{"arXiv", res.Arxiv},
		{"News", res.News},
		{"Blogs", res.Blogs},
	}

	total := 0
	for _, s := range sections {
		fmt.Fprintf(w, "%s (%d)\n", s.name, len(s.items))
		fmt.Fprintln(w, strings.Repeat("-", 72))
		for i, it := range s.items {
			fmt.Fprintf(w, "%-3d %s\n", i+1, truncate(it.Title, 68))
			if link := itemLink(it); link != "" {
				fmt.Fprintf(w, "    %s\n", link)
			}
			if it.Published != "" {
				fmt.Fprintf(w, "    published: %s\n", it.Published)
			}
		}
		if len(s.items) == 0 {
			fmt.Fprintln(w, "    (none)")
		}
		fmt.Fprintln(w)
		total += len(s.items)
	}

	fmt.Fprintf(w, "%d results across all sources\n\n", total)
	fmt.Fprintln(w, "Digest:")
	fmt.Fprintln(w, res.Summary)
}

// FormatJSON writes the result as indented JSON to w.
func FormatJSON(res types.AggregateResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func itemLink(it types.SourceResult) string {
	if it.Link != "" {
		return it.Link
	}
	return it.URL
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
