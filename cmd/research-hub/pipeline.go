// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spf13/viper"

	"github.com/pdiddy/research-hub/internal/aggregate"
	"github.com/pdiddy/research-hub/internal/digest"
	"github.com/pdiddy/research-hub/internal/fetch"
	"github.com/pdiddy/research-hub/internal/ollama"
	"github.com/pdiddy/research-hub/pkg/types"
)

// buildPipeline wires the fetchers, the ollama backend, and the aggregator
// from the loaded configuration. Model resolution runs exactly once here;
// the resolved identifier is immutable for the process lifetime.
func buildPipeline(ctx context.Context) (*aggregate.Aggregator, string) {
	newsKey := viper.GetString("news_api_key")
	if newsKey == "" {
		newsKey = loadedSecrets.Get("news-api-key", "")
	}
	model := viper.GetString("ollama_model")
	if model == "" {
		model = loadedSecrets.Get("ollama-model", "")
	}

	fetchCfg := types.FetchConfig{
		Timeout:    viper.GetDuration("fetch.timeout"),
		UserAgent:  viper.GetString("fetch.user_agent"),
		MaxResults: viper.GetInt("fetch.max_results"),
		NewsAPIKey: newsKey,
	}
	sumCfg := types.SummarizeConfig{
		Model:   model,
		Timeout: viper.GetDuration("summarize.timeout"),
	}

	client := &http.Client{Timeout: fetchCfg.Timeout}

	arxiv := &fetch.ArxivFetcher{Client: client, UserAgent: fetchCfg.UserAgent}
	news := &fetch.NewsFetcher{Client: client, APIKey: fetchCfg.NewsAPIKey, UserAgent: fetchCfg.UserAgent}
	blogs := fetch.NewBlogFetcher(client)

	backend := ollama.NewClient()
	resolved := ollama.ResolveModel(ctx, backend, sumCfg.Model)
	writer := digest.NewWriter(backend, resolved, sumCfg.Timeout)

	if fetchCfg.NewsAPIKey == "" {
		slog.Warn("no news API key configured, news source disabled")
	}

	return aggregate.New(arxiv, news, blogs, writer, slog.Default()), resolved
}

// serverConfig reads the HTTP surface settings.
func serverConfig() types.ServerConfig {
	return types.ServerConfig{
		ListenAddr:  viper.GetString("listen_addr"),
		CORSOrigins: viper.GetStringSlice("cors_origins"),
	}
}
