// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/research-hub/internal/httputil"
	"github.com/pdiddy/research-hub/pkg/types"
)

// newsAPIBase is the news search endpoint. Declared as a var so tests can
// substitute an httptest server.
var newsAPIBase = "https://newsapi.org/v2/everything"

// NewsFetcher queries the NewsAPI "everything" endpoint for English articles
// sorted by most recent publish time. Without an API key the source is
// disabled: Fetch returns an empty list immediately, indistinguishable from
// a query with zero matches.
type NewsFetcher struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
}

// Name returns the source identifier.
func (f *NewsFetcher) Name() string { return "news" }

// Fetch queries the news API and maps each article to a SourceResult.
func (f *NewsFetcher) Fetch(ctx context.Context, query string, maxResults int) ([]types.SourceResult, error) {
	if f.APIKey == "" {
		return nil, nil
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	params := url.Values{
		"q":        {query},
		"pageSize": {fmt.Sprintf("%d", maxResults)},
		"language": {"en"},
		"sortBy":   {"publishedAt"},
	}
	reqURL := newsAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("X-Api-Key", f.APIKey)

	// One backoff-gated retry on 429; further rate limiting degrades the
	// source to empty like any other failure.
	resp, err := httputil.DoWithRetry(ctx, f.Client, req, 1)
	if err != nil {
		return nil, fmt.Errorf("news API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API returned HTTP %d", resp.StatusCode)
	}

	var nr newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("parsing news response: %w", err)
	}

	results := make([]types.SourceResult, 0, len(nr.Articles))
	for _, a := range nr.Articles {
		// Prefer the description; fall back to truncated content only when
		// the description is absent. Descriptions are passed through as-is.
		summary := a.Description
		if summary == "" {
			summary = truncateSummary(a.Content)
		}
		results = append(results, types.SourceResult{
			Source:    "News: " + a.Source.Name,
			Title:     a.Title,
			Summary:   summary,
			URL:       a.URL,
			Published: a.PublishedAt,
		})
	}
	return results, nil
}

// NewsAPI JSON structures.
type newsResponse struct {
	Status   string        `json:"status"`
	Articles []newsArticle `json:"articles"`
}

type newsArticle struct {
	Source      newsOutlet `json:"source"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt"`
}

type newsOutlet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
