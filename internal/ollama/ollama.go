// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ollama drives the local ollama CLI: listing installed models and
// running one-shot generations with the prompt piped through stdin.
package ollama

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const binOllama = "ollama"

// DefaultModel is used when no model is configured and auto-detection fails.
const DefaultModel = "llama3:8b"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunOutput(ctx context.Context, name string, args ...string) (string, error)
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) RunOutput(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

func (osExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// Client invokes the ollama binary as a subprocess.
type Client struct {
	bin  string
	exec executor
}

// NewClient returns a client for the ollama binary on PATH.
func NewClient() *Client {
	return &Client{bin: binOllama, exec: osExecutor{}}
}

// Generate pipes prompt into `ollama run <model>` and returns raw stdout.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	var out bytes.Buffer
	args := []string{"run", model}
	if err := c.exec.RunPiped(ctx, c.bin, args, strings.NewReader(prompt), &out); err != nil {
		return "", fmt.Errorf("running %s run %s: %w", c.bin, model, err)
	}
	return out.String(), nil
}

// DetectModel returns the first installed model reported by `ollama list`.
// The first output line is the NAME/ID/SIZE header; the model identifier is
// the first token of the second line.
func (c *Client) DetectModel(ctx context.Context) (string, error) {
	if _, err := c.exec.LookPath(c.bin); err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", c.bin, err)
	}

	out, err := c.exec.RunOutput(ctx, c.bin, "list")
	if err != nil {
		return "", fmt.Errorf("listing installed models: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return "", fmt.Errorf("no installed models in %s list output", c.bin)
	}
	fields := strings.Fields(lines[1])
	if len(fields) == 0 {
		return "", fmt.Errorf("unparseable model row %q", lines[1])
	}
	return fields[0], nil
}
