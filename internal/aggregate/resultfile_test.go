// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/research-hub/pkg/types"
)

func sampleResult() types.AggregateResult {
	return types.AggregateResult{
		Arxiv: []types.SourceResult{{
			Source: "arXiv", Title: "Paper", Summary: "abstract",
			Link: "http://arxiv.org/abs/1", Published: "2026-01-01T00:00:00Z",
		}},
		News: []types.SourceResult{{
			Source: "News: BBC", Title: "Article", Summary: "desc",
			URL: "https://bbc.example/a", Published: "2026-01-02T00:00:00Z",
		}},
		Blogs:   []types.SourceResult{},
		Summary: "a digest",
	}
}

func TestResultFileRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"yaml", "run.yaml"},
		{"json", "run.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			res := sampleResult()

			if err := WriteResultFile(path, "transformers", 5, res); err != nil {
				t.Fatalf("WriteResultFile: %v", err)
			}
			rf, err := ReadResultFile(path)
			if err != nil {
				t.Fatalf("ReadResultFile: %v", err)
			}

			if rf.Query != "transformers" {
				t.Errorf("Query = %q", rf.Query)
			}
			if rf.MaxResults != 5 {
				t.Errorf("MaxResults = %d", rf.MaxResults)
			}
			if rf.Timestamp.IsZero() {
				t.Error("Timestamp should be set")
			}
			if len(rf.Result.Arxiv) != 1 || rf.Result.Arxiv[0].Title != "Paper" {
				t.Errorf("Arxiv bucket not preserved: %+v", rf.Result.Arxiv)
			}
			if rf.Result.News[0].URL != "https://bbc.example/a" {
				t.Errorf("News URL not preserved: %q", rf.Result.News[0].URL)
			}
			if rf.Result.Summary != "a digest" {
				t.Errorf("Summary = %q", rf.Result.Summary)
			}
		})
	}
}

func TestReadResultFileMissing(t *testing.T) {
	if _, err := ReadResultFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFormatJSONSerializedShape(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(sampleResult(), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"arxiv", "news", "blogs", "summary"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	// Empty buckets serialize as arrays, not null.
	if string(decoded["blogs"]) != "[]" {
		t.Errorf("blogs = %s, want []", decoded["blogs"])
	}

	// arXiv items carry link, news items carry url.
	var arxiv []map[string]any
	if err := json.Unmarshal(decoded["arxiv"], &arxiv); err != nil {
		t.Fatal(err)
	}
	if _, ok := arxiv[0]["link"]; !ok {
		t.Error("arxiv item missing link field")
	}
	if _, ok := arxiv[0]["url"]; ok {
		t.Error("arxiv item should not carry url field")
	}
	var news []map[string]any
	if err := json.Unmarshal(decoded["news"], &news); err != nil {
		t.Fatal(err)
	}
	if _, ok := news[0]["url"]; !ok {
		t.Error("news item missing url field")
	}
}

func TestFormatTableIncludesSectionsAndDigest(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResult(), &buf)
	out := buf.String()

	for _, want := range []string{"arXiv (1)", "News (1)", "Blogs (0)", "a digest", "Paper"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
