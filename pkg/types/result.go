// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shapes shared across the aggregation pipeline.
package types

// SourceResult is the normalized record every fetcher produces. The summary
// is capped at 600 characters by the producing fetcher. Each fetcher fills
// exactly one of Link (arXiv, blogs) or URL (news), matching the field names
// the respective upstream APIs use in the serialized output.
type SourceResult struct {
	// Source labels the origin, e.g. "arXiv", "News: BBC", "Blog: OpenAI Blog".
	Source string `json:"source" yaml:"source"`

	// Title is the entry title, verbatim from the source. May be empty.
	Title string `json:"title" yaml:"title"`

	// Summary is the abstract/description, truncated to at most 600 characters.
	Summary string `json:"summary" yaml:"summary"`

	// Link is the entry URL for arXiv and blog results.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// URL is the article URL for news results.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Published is the publication timestamp in the source's native format.
	// It is carried as an opaque string, never parsed.
	Published string `json:"published" yaml:"published"`
}

// AggregateResult is the combined answer for one research query: one bucket
// per source plus the digest. All three buckets are always non-nil so the
// JSON form serializes them as arrays, and Summary is always set, even when
// every bucket is empty.
type AggregateResult struct {
	Arxiv   []SourceResult `json:"arxiv" yaml:"arxiv"`
	News    []SourceResult `json:"news" yaml:"news"`
	Blogs   []SourceResult `json:"blogs" yaml:"blogs"`
	Summary string         `json:"summary" yaml:"summary"`
}
