// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/research-hub/pkg/types"
)

// blogFeeds is the compiled-in feed set, scanned in this order on every call.
var blogFeeds = []string{
	"https://openai.com/blog/rss",
	"https://machinelearningmastery.com/feed",
	"https://towardsdatascience.com/feed",
}

// BlogFetcher scans a fixed set of RSS/Atom feeds for entries whose title or
// summary contains the query, case-insensitively. Per feed, at most
// maxResults*2 entries are examined in feed order. The running total across
// all feeds is hard-capped at maxResults: the count is checked before each
// feed and before each append, so the cap can never be overshot even when
// matches straddle feed boundaries.
type BlogFetcher struct {
	parser *gofeed.Parser
	feeds  []string
}

// NewBlogFetcher builds a fetcher over the compiled-in feed set. The client
// carries the shared fetch timeout.
func NewBlogFetcher(client *http.Client) *BlogFetcher {
	p := gofeed.NewParser()
	p.Client = client
	return &BlogFetcher{parser: p, feeds: blogFeeds}
}

// Name returns the source identifier.
func (f *BlogFetcher) Name() string { return "blogs" }

// Fetch scans the feeds and returns matching entries. A feed that fails to
// fetch or parse is treated as empty; Fetch itself never fails.
func (f *BlogFetcher) Fetch(ctx context.Context, query string, maxResults int) ([]types.SourceResult, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	q := strings.ToLower(query)

	var results []types.SourceResult
	for _, feedURL := range f.feeds {
		if len(results) >= maxResults {
			break
		}

		feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			continue
		}

		feedTitle := feed.Title
		if feedTitle == "" {
			feedTitle = "RSS"
		}

		limit := maxResults * 2
		if len(feed.Items) < limit {
			limit = len(feed.Items)
		}
		for _, item := range feed.Items[:limit] {
			if len(results) >= maxResults {
				break
			}
			if !strings.Contains(strings.ToLower(item.Title), q) &&
				!strings.Contains(strings.ToLower(item.Description), q) {
				continue
			}
			results = append(results, types.SourceResult{
				Source:    "Blog: " + feedTitle,
				Title:     item.Title,
				Summary:   truncateSummary(item.Description),
				Link:      item.Link,
				Published: item.Published,
			})
		}
	}
	return results, nil
}
