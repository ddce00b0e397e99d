package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/repoforge/forge/internal/ai"
	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/github"
)

// readRawInput resolves the snippet input for a command: an explicit file
// argument, a --repo URL to summarize, or stdin. Returns the input and
// whether it came from a fetched repository.
func readRawInput(ctx context.Context, args []string, repoURL, githubToken string) (string, bool, error) {
	if repoURL != "" {
		client := github.NewClient(githubToken)
		summary, err := client.FetchRepoSummary(ctx, repoURL)
		if err != nil {
			return "", false, fmt.Errorf("failed to summarize repository: %w", err)
		}
		return summary, true, nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", false, fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), false, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", false, fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", false, fmt.Errorf("no input: pass a file, --repo, or pipe a snippet on stdin")
	}
	return string(data), false, nil
}

// loadSettings reads the persisted forge settings from the default store.
func loadSettings() (config.Settings, error) {
	store, err := config.NewStore()
	if err != nil {
		return config.Settings{}, err
	}
	return store.Load()
}

// aiClientFor builds the AI adapter from already-loaded settings with the
// resolved key (persisted key first, environment second).
func aiClientFor(settings config.Settings) *ai.Client {
	return ai.NewClient(config.ResolveOpenAIKey(settings))
}

// newAIClient loads the persisted settings and builds the AI adapter.
// Commands that also need the settings themselves load them once and call
// aiClientFor instead.
func newAIClient() (*ai.Client, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return aiClientFor(settings), nil
}
