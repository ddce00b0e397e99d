package app

import (
	"context"

	"github.com/repoforge/forge/internal/ai"
	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// GenerateOptions configures a tree generation run.
type GenerateOptions struct {
	// Config is the validated generation configuration.
	Config config.RepoConfig
	// RawInput is the pasted code or repository summary.
	RawInput string
	// Client is the AI adapter. A keyless client serves the templates.
	Client *ai.Client
	// Log receives progress entries. Optional.
	Log *GenerationLog
}

// GenerateResult carries the generated tree and how it was produced.
type GenerateResult struct {
	// Nodes is the generated file tree in render/packaging order.
	Nodes []*tree.Node
	// Source records whether the AI or the template fallback produced it.
	Source ai.Source
	// FileCount is the number of file leaves.
	FileCount int
}

// Generate produces the scaffold tree for the configuration. Generation
// never fails once the configuration validates: every AI failure resolves
// to the deterministic template output.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if err := config.Validate(opts.Config); err != nil {
		return nil, err
	}

	opts.Log.Infof("generating scaffold for %q", opts.Config.Name)

	nodes, source := opts.Client.GenerateFileTree(ctx, opts.Config, opts.RawInput)
	if source == ai.SourceFallback {
		opts.Log.Warnf("AI generation unavailable or failed; used deterministic templates")
	}

	count := tree.CountFiles(nodes)
	opts.Log.Successf("scaffold ready: %d files", count)

	return &GenerateResult{Nodes: nodes, Source: source, FileCount: count}, nil
}
