// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the aggregation pipeline to agent frameworks as
// an MCP tool and resource: the search tool takes (query, max_results) and a
// research://{query} resource template resolves with the default cap.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pdiddy/research-hub/internal/aggregate"
	"github.com/pdiddy/research-hub/pkg/types"
)

const serverName = "multi-source-research"

// resourceScheme prefixes the research resource URIs.
const resourceScheme = "research://"

// Aggregator answers one research query. Satisfied by *aggregate.Aggregator.
type Aggregator interface {
	Aggregate(ctx context.Context, query string, maxResults int) types.AggregateResult
}

// New builds the MCP server with the search tool and the research resource
// template registered.
func New(agg Aggregator, version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version)

	searchTool := mcp.NewTool("search",
		mcp.WithDescription("Multi-source research across arXiv, news, and blogs; returns per-source results plus a digest."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Research query text."),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum results per source."),
			mcp.DefaultNumber(aggregate.DefaultMaxResults),
		),
	)
	s.AddTool(searchTool, searchHandler(agg))

	tmpl := mcp.NewResourceTemplate(resourceScheme+"{query}", "research",
		mcp.WithTemplateDescription("JSON research digest for a query, computed with the default per-source cap."),
		mcp.WithTemplateMIMEType("application/json"),
	)
	s.AddResourceTemplate(tmpl, resourceHandler(agg))

	return s
}

// StreamableHTTP wraps s for mounting at /mcp on an HTTP server.
func StreamableHTTP(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s, server.WithEndpointPath("/mcp"))
}

// ServeStdio runs s over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func searchHandler(agg Aggregator) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		maxResults := req.GetInt("max_results", aggregate.DefaultMaxResults)

		res := agg.Aggregate(ctx, query, maxResults)
		data, err := json.Marshal(res)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func resourceHandler(agg Aggregator) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		query := queryFromURI(req.Params.URI)

		// The template exposes no way to vary the cap; it is fixed at the default.
		res := agg.Aggregate(ctx, query, aggregate.DefaultMaxResults)
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding result: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

// queryFromURI extracts the query from a research:// URI, undoing percent
// encoding. A malformed escape leaves the raw text in place.
func queryFromURI(uri string) string {
	raw := strings.TrimPrefix(uri, resourceScheme)
	if q, err := url.PathUnescape(raw); err == nil {
		return q
	}
	return raw
}
