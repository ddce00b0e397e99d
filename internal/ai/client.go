// Package ai wraps the OpenAI chat-completions API for the three generative
// operations forge uses: stack detection, file-tree generation, and
// single-file refactoring. Every operation enforces a timeout and degrades
// to a deterministic substitute on any failure; no call is ever retried.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/debug"
	"github.com/repoforge/forge/internal/scaffold/detect"
	"github.com/repoforge/forge/internal/scaffold/fallback"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// Operation timeouts. First failure triggers immediate fallback; there are
// no retries.
const (
	// DetectTimeout bounds stack detection calls.
	DetectTimeout = 15 * time.Second
	// TreeTimeout bounds file-tree generation calls.
	TreeTimeout = 30 * time.Second
	// RefactorTimeout bounds single-file refactor calls.
	RefactorTimeout = 20 * time.Second
)

// Model is the chat model used for all operations.
const Model = openai.ChatModelGPT4oMini

// Source records which path produced a result.
type Source int

const (
	// SourceAI means the generative API produced the result.
	SourceAI Source = iota
	// SourceFallback means the deterministic substitute produced it.
	SourceFallback
)

// String returns the string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceAI:
		return "ai"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// completer abstracts the text-generation endpoint so tests can substitute
// a deterministic implementation.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// openaiCompleter is the production completer backed by openai-go.
type openaiCompleter struct {
	client openai.Client
}

// Complete sends one prompt and returns the raw text of the first choice.
func (c *openaiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", NewCallError("chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", NewResponseError("response contained no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// Client is the AI adapter. A Client built without an API key is valid and
// serves every operation from the deterministic fallbacks.
type Client struct {
	completer completer
}

// NewClient creates a client for the given API key. An empty key yields a
// fallback-only client; the key itself is never exposed by the adapter.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	return &Client{
		completer: &openaiCompleter{
			client: openai.NewClient(option.WithAPIKey(apiKey)),
		},
	}
}

// Available reports whether the generative path can be attempted at all.
func (c *Client) Available() bool {
	return c != nil && c.completer != nil
}

// DetectStack classifies raw input via the API, falling back to the keyword
// heuristic on any failure. It never fails.
func (c *Client) DetectStack(ctx context.Context, rawInput string) (config.DetectionResult, Source) {
	if !c.Available() {
		return detect.Analyze(rawInput), SourceFallback
	}

	ctx, cancel := context.WithTimeout(ctx, DetectTimeout)
	defer cancel()

	text, err := c.completer.Complete(ctx, buildDetectPrompt(rawInput))
	if err != nil {
		debug.Debug("[ai] detection call failed, using heuristic: %v", err)
		return detect.Analyze(rawInput), SourceFallback
	}

	var result config.DetectionResult
	if err := json.Unmarshal([]byte(StripFences(text)), &result); err != nil {
		debug.Debug("[ai] detection response unparseable, using heuristic: %v", err)
		return detect.Analyze(rawInput), SourceFallback
	}
	if !plausibleDetection(result) {
		debug.Debug("[ai] detection response implausible, using heuristic: %+v", result)
		return detect.Analyze(rawInput), SourceFallback
	}
	return result, SourceAI
}

// GenerateFileTree produces the scaffold tree via the API, falling back to
// the deterministic template generator on any failure: timeout, transport
// error, malformed JSON, or a path-conflicting tree. It never fails.
func (c *Client) GenerateFileTree(ctx context.Context, cfg config.RepoConfig, rawInput string) ([]*tree.Node, Source) {
	if !c.Available() {
		return fallback.Generate(cfg, rawInput), SourceFallback
	}

	ctx, cancel := context.WithTimeout(ctx, TreeTimeout)
	defer cancel()

	text, err := c.completer.Complete(ctx, buildTreePrompt(cfg, rawInput))
	if err != nil {
		debug.Debug("[ai] tree generation call failed, using templates: %v", err)
		return fallback.Generate(cfg, rawInput), SourceFallback
	}

	var paths map[string]string
	if err := json.Unmarshal([]byte(StripFences(text)), &paths); err != nil {
		debug.Debug("[ai] tree response unparseable, using templates: %v", err)
		return fallback.Generate(cfg, rawInput), SourceFallback
	}
	if len(paths) == 0 {
		debug.Debug("[ai] tree response empty, using templates")
		return fallback.Generate(cfg, rawInput), SourceFallback
	}

	nodes, err := tree.FromPaths(paths)
	if err != nil {
		debug.Debug("[ai] tree response conflicting, using templates: %v", err)
		return fallback.Generate(cfg, rawInput), SourceFallback
	}
	return nodes, SourceAI
}

// RefactorFile rewrites a single file per the instruction. Refactoring has
// no deterministic substitute: on failure the original content comes back
// annotated with the instruction that could not be applied, together with
// the error for surfacing.
func (c *Client) RefactorFile(ctx context.Context, name, content, instruction string) (string, error) {
	if !c.Available() {
		err := NewUnavailableError()
		return annotateUnrefactored(name, content, instruction), err
	}

	ctx, cancel := context.WithTimeout(ctx, RefactorTimeout)
	defer cancel()

	text, err := c.completer.Complete(ctx, buildRefactorPrompt(name, content, instruction))
	if err != nil {
		return annotateUnrefactored(name, content, instruction), err
	}

	result := StripFences(text)
	if result == "" {
		err := NewResponseError("refactor response was empty", nil)
		return annotateUnrefactored(name, content, instruction), err
	}
	return result, nil
}

// plausibleDetection rejects structurally valid but nonsensical responses.
func plausibleDetection(r config.DetectionResult) bool {
	if r.Language == "" {
		return false
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return false
	}
	switch r.Category {
	case config.CategoryFrontend, config.CategoryBackend, config.CategoryFullstack:
	default:
		return false
	}
	return r.EstimatedFiles >= 0
}

// annotateUnrefactored prefixes the untouched content with a comment noting
// the instruction that was not applied.
func annotateUnrefactored(name, content, instruction string) string {
	return fmt.Sprintf("// %s: refactor not applied (%s)\n%s", name, instruction, content)
}
