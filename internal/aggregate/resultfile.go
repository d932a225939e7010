// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-hub/pkg/types"
)

// ResultFile is the on-disk representation of one aggregation run. A
// researcher can save a run from the CLI and reload it later without
// re-querying the sources.
type ResultFile struct {
	Query      string                `yaml:"query" json:"query"`
	MaxResults int                   `yaml:"max_results" json:"max_results"`
	Timestamp  time.Time             `yaml:"timestamp" json:"timestamp"`
	Result     types.AggregateResult `yaml:"result" json:"result"`
}

// WriteResultFile saves an aggregation run to path. The extension selects the
// encoding: .json for JSON, anything else for YAML.
func WriteResultFile(path, query string, maxResults int, res types.AggregateResult) error {
	rf := ResultFile{
		Query:      query,
		MaxResults: maxResults,
		Timestamp:  time.Now(),
		Result:     res,
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(&rf, "", "  ")
	} else {
		data, err = yaml.Marshal(&rf)
	}
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved run from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &rf)
	} else {
		err = yaml.Unmarshal(data, &rf)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
