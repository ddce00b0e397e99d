package app

import (
	"context"
	"strings"

	"github.com/repoforge/forge/internal/ai"
)

// RefactorOptions configures a single-file refactor.
type RefactorOptions struct {
	// FileName is the display name of the file being rewritten.
	FileName string
	// Content is the full current file content.
	Content string
	// Instruction is the user's rewrite instruction.
	Instruction string
	// Client is the AI adapter.
	Client *ai.Client
	// Log receives progress entries. Optional.
	Log *GenerationLog
}

// Refactor rewrites one file via the AI adapter. Refactoring has no safe
// deterministic substitute, so failures surface to the caller; the returned
// content is then the original annotated with the unapplied instruction.
func Refactor(ctx context.Context, opts RefactorOptions) (string, error) {
	if strings.TrimSpace(opts.Instruction) == "" {
		return opts.Content, NewInputError("instruction", "must not be empty")
	}
	if opts.Content == "" {
		return opts.Content, NewInputError("file", "has no content to refactor")
	}

	opts.Log.Infof("refactoring %s: %s", opts.FileName, opts.Instruction)

	result, err := opts.Client.RefactorFile(ctx, opts.FileName, opts.Content, opts.Instruction)
	if err != nil {
		opts.Log.Warnf("refactor failed: %v", err)
		return result, err
	}

	opts.Log.Successf("refactored %s", opts.FileName)
	return result, nil
}
