// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FetchConfig holds shared settings for the source fetchers.
type FetchConfig struct {
	// Timeout is the per-request HTTP timeout applied to every fetcher.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with outbound API requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxResults is the default per-source result cap (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// NewsAPIKey authenticates against the news API. When empty the news
	// source is silently disabled.
	NewsAPIKey string `json:"news_api_key,omitempty" yaml:"news_api_key,omitempty"`
}

// SummarizeConfig holds settings for the digest backend.
type SummarizeConfig struct {
	// Model is an explicit model identifier. When empty the model is
	// auto-detected from the installed models at startup.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Timeout bounds one summarization subprocess invocation.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// ListenAddr is the address the HTTP server binds to (default ":8080").
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`

	// CORSOrigins lists the origins allowed to call the API from a browser.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins"`
}
