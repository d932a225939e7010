// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest turns aggregated source text into a short natural-language
// summary by piping a fixed instruction prompt through the generation
// backend. Backend failures become descriptive digest text, never errors:
// the caller always receives a string.
package digest

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// promptHeader is the fixed instruction prepended to the bucketed item text.
const promptHeader = "You are a research assistant. Summarize and cluster the following items. " +
	"Highlight recent developments, notable papers, and themes. Keep it under 200 words.\n\n"

// Generator produces text from a prompt using the named model. The concrete
// backend (local subprocess, remote API) is injected at construction time.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Writer produces digests with a model identifier resolved once at startup.
type Writer struct {
	gen     Generator
	model   string
	timeout time.Duration
}

// NewWriter builds a Writer. A non-positive timeout disables the per-call bound.
func NewWriter(gen Generator, model string, timeout time.Duration) *Writer {
	return &Writer{gen: gen, model: model, timeout: timeout}
}

// Model returns the identifier the writer generates with.
func (w *Writer) Model() string { return w.model }

// Summarize returns a digest for text. The backend's output is decoded
// permissively (bytes that are not valid UTF-8 are dropped) and trimmed.
// A backend failure is rendered into the returned string with a
// "(ollama error)" marker so the request still succeeds.
func (w *Writer) Summarize(ctx context.Context, text string) string {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	out, err := w.gen.Generate(ctx, w.model, promptHeader+text)
	if err != nil {
		return fmt.Sprintf("(ollama error) %v", err)
	}
	return strings.TrimSpace(strings.ToValidUTF8(out, ""))
}
