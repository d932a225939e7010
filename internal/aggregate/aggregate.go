// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate orchestrates the source fetchers and the digest backend:
// fan the query out to every source, collect the buckets, build the digest
// input, and assemble the combined result.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pdiddy/research-hub/internal/fetch"
	"github.com/pdiddy/research-hub/pkg/types"
)

// NoResultsDigest is returned verbatim when every bucket comes back empty;
// the backend is not invoked in that case.
const NoResultsDigest = "No results to summarize."

// DefaultMaxResults is the per-source cap used when the caller passes a
// non-positive value.
const DefaultMaxResults = 5

// Summarizer produces the digest for the concatenated bucket text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// Aggregator runs the three fetchers and the summarizer for one query.
type Aggregator struct {
	arxiv      fetch.Fetcher
	news       fetch.Fetcher
	blogs      fetch.Fetcher
	summarizer Summarizer
	logger     *slog.Logger
}

// New builds an Aggregator. A nil logger falls back to slog.Default.
func New(arxiv, news, blogs fetch.Fetcher, s Summarizer, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{arxiv: arxiv, news: news, blogs: blogs, summarizer: s, logger: logger}
}

// Aggregate fans the query out to the three fetchers concurrently and
// combines their output. Every source follows the same failure policy: a
// fetcher error is logged and that bucket degrades to empty, so a request
// always yields a fully-formed result. Bucket order in the digest input is
// fixed (arXiv, News, Blogs) regardless of completion order.
func (a *Aggregator) Aggregate(ctx context.Context, query string, maxResults int) types.AggregateResult {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	fetchers := []fetch.Fetcher{a.arxiv, a.news, a.blogs}
	buckets := make([][]types.SourceResult, len(fetchers))

	var wg sync.WaitGroup
	for i, f := range fetchers {
		wg.Add(1)
		go func(i int, f fetch.Fetcher) {
			defer wg.Done()
			results, err := f.Fetch(ctx, query, maxResults)
			if err != nil {
				a.logger.Warn("source degraded to empty bucket",
					"source", f.Name(), "query", query, "error", err)
				return
			}
			buckets[i] = results
		}(i, f)
	}
	wg.Wait()

	res := types.AggregateResult{
		Arxiv: nonNil(buckets[0]),
		News:  nonNil(buckets[1]),
		Blogs: nonNil(buckets[2]),
	}

	text := digestInput(res)
	if text == "" {
		res.Summary = NoResultsDigest
	} else {
		res.Summary = a.summarizer.Summarize(ctx, text)
	}
	return res
}

// digestInput renders one text block per result, in fixed bucket order, each
// block shaped as "[<bucket>] <title>\n<summary>\n". Blocks are joined with a
// blank line.
func digestInput(r types.AggregateResult) string {
	buckets := []struct {
		name  string
		items []types.SourceResult
	}{
		{"arXiv", r.Arxiv},
		{"News", r.News},
		{"Blogs", r.Blogs},
	}

	var blocks []string
	for _, b := range buckets {
		for _, it := range b.items {
			blocks = append(blocks, fmt.Sprintf("[%s] %s\n%s\n", b.name, it.Title, it.Summary))
		}
	}
	return strings.Join(blocks, "\n")
}

// nonNil normalizes a nil slice so buckets always serialize as JSON arrays.
func nonNil(s []types.SourceResult) []types.SourceResult {
	if s == nil {
		return []types.SourceResult{}
	}
	return s
}
