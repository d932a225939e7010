// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch queries heterogeneous content sources and normalizes their
// results into the common SourceResult shape. Each source (arXiv, the news
// API, a fixed set of blog feeds) implements the Fetcher interface per the
// Strategy pattern; the aggregator treats them uniformly.
package fetch

import (
	"context"

	"github.com/pdiddy/research-hub/pkg/types"
)

// Fetcher turns a query string into an ordered list of normalized results.
// Implementations are read-only and share no state; the aggregator invokes
// them concurrently. A failed fetch is reported as an error and degraded to
// an empty bucket by the caller, never propagated to the request boundary.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, query string, maxResults int) ([]types.SourceResult, error)
}

// summaryLimit caps every SourceResult summary. Counted in runes, matching
// the character semantics of the upstream content rather than bytes.
const summaryLimit = 600

// defaultMaxResults is used when the caller passes a non-positive cap.
const defaultMaxResults = 5

// truncateSummary caps s at summaryLimit characters.
func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= summaryLimit {
		return s
	}
	return string(runes[:summaryLimit])
}
