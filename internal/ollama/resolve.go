// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ollama

import (
	"context"
	"log/slog"
)

// ResolveModel picks the model identifier for the process lifetime. An
// explicitly configured identifier wins unconditionally; otherwise the first
// installed model is auto-detected. Any detection failure is logged and the
// fixed default is returned. Callers run this once at startup and inject the
// result; it is never re-evaluated per request.
func ResolveModel(ctx context.Context, c *Client, explicit string) string {
	if explicit != "" {
		return explicit
	}
	model, err := c.DetectModel(ctx)
	if err != nil {
		slog.Warn("model auto-detection failed, using default",
			"default", DefaultModel, "error", err)
		return DefaultModel
	}
	return model
}
