// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the aggregation pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pdiddy/research-hub/internal/aggregate"
	"github.com/pdiddy/research-hub/pkg/types"
)

// Aggregator answers one research query. Satisfied by *aggregate.Aggregator.
type Aggregator interface {
	Aggregate(ctx context.Context, query string, maxResults int) types.AggregateResult
}

// defaultOrigins is the CORS allow-list used when none is configured.
var defaultOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// New builds the gin engine: the search route, a health check, CORS
// restricted to the configured local origins, and, when mcpHandler is
// non-nil, the MCP streamable-HTTP endpoint mounted at /mcp.
func New(agg Aggregator, cfg types.ServerConfig, mcpHandler http.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = defaultOrigins
	}
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	r.GET("/search", searchHandler(agg))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if mcpHandler != nil {
		r.Any("/mcp", gin.WrapH(mcpHandler))
	}
	return r
}

// searchHandler serves GET /search?q=<string>&max_results=<int>. An absent,
// malformed, or non-positive max_results falls back to the default. An empty
// q is accepted and simply produces empty or irrelevant buckets.
func searchHandler(agg Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")

		maxResults := aggregate.DefaultMaxResults
		if raw := c.Query("max_results"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				maxResults = n
			}
		}

		c.JSON(http.StatusOK, agg.Aggregate(c.Request.Context(), q, maxResults))
	}
}
