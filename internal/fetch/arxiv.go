// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/research-hub/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivFetcher queries the arXiv Atom API. The result cap is passed through
// to the API as max_results; entries come back in the API's own relevance
// order and are not re-sliced or re-sorted locally.
type ArxivFetcher struct {
	Client    *http.Client
	UserAgent string
}

// Name returns the source identifier.
func (f *ArxivFetcher) Name() string { return "arxiv" }

// Fetch queries arXiv and maps each feed entry to a SourceResult.
func (f *ArxivFetcher) Fetch(ctx context.Context, query string, maxResults int) ([]types.SourceResult, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	reqURL := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=%d",
		arxivAPIBase, url.QueryEscape(query), maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	results := make([]types.SourceResult, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		results = append(results, types.SourceResult{
			Source:    "arXiv",
			Title:     entry.Title,
			Summary:   truncateSummary(entry.Summary),
			Link:      entry.link(),
			Published: entry.Published,
		})
	}
	return results, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title     string      `xml:"title"`
	Summary   string      `xml:"summary"`
	Published string      `xml:"published"`
	Links     []arxivLink `xml:"link"`
}

type arxivLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// link picks the entry's abstract-page URL: the alternate link when present,
// otherwise the first link, otherwise empty.
func (e arxivEntry) link() string {
	for _, l := range e.Links {
		if l.Rel == "alternate" {
			return l.Href
		}
	}
	if len(e.Links) > 0 {
		return e.Links[0].Href
	}
	return ""
}
