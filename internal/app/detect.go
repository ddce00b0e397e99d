package app

import (
	"context"

	"github.com/repoforge/forge/internal/ai"
	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/scaffold/detect"
)

// DetectOptions configures a detection run.
type DetectOptions struct {
	// RawInput is the pasted code or a synthesized repository summary.
	RawInput string
	// FromRepo marks input synthesized from a fetched repository; such
	// input skips the code-likeness check (listings are not code).
	FromRepo bool
	// Client is the AI adapter. A keyless client serves the heuristic.
	Client *ai.Client
	// Log receives progress entries. Optional.
	Log *GenerationLog
}

// DetectResult carries the detection outcome and how it was produced.
type DetectResult struct {
	// Detection is the classification result.
	Detection config.DetectionResult
	// Source records whether the AI or the heuristic produced it.
	Source ai.Source
}

// Detect validates the raw input and classifies it. Detection itself never
// fails; only input validation can return an error, and that error is an
// *InputError meant for inline display.
func Detect(ctx context.Context, opts DetectOptions) (*DetectResult, error) {
	if !opts.FromRepo && !detect.LooksLikeCode(opts.RawInput) {
		return nil, NewInputError("raw input", "this does not look like code; paste a source snippet")
	}

	opts.Log.Infof("analyzing input (%d bytes)", len(opts.RawInput))

	result, source := opts.Client.DetectStack(ctx, opts.RawInput)
	if source == ai.SourceFallback {
		opts.Log.Infof("using keyword heuristic for detection")
	}
	opts.Log.Successf("detected %s / %s (%d%% confidence)",
		result.Language, result.Framework, result.Confidence)

	return &DetectResult{Detection: result, Source: source}, nil
}
