package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestMergeDetection_Once tests that detection seeds defaults exactly once.
func TestMergeDetection_Once(t *testing.T) {
	cfg := DefaultRepoConfig()

	MergeDetection(&cfg, DetectionResult{
		Language:  "TypeScript",
		Framework: "React",
	})

	if cfg.Language != "TypeScript" || cfg.Framework != "React" || !cfg.UseTypeScript {
		t.Errorf("first merge not applied: %+v", cfg)
	}

	// User edit after the merge.
	cfg.Framework = "None"
	cfg.UseTypeScript = false

	// A second merge must not clobber the edit.
	MergeDetection(&cfg, DetectionResult{
		Language:  "Python",
		Framework: "Django",
	})

	if cfg.Framework != "None" || cfg.Language != "TypeScript" || cfg.UseTypeScript {
		t.Errorf("second merge clobbered user edits: %+v", cfg)
	}
}

// TestGitHubExtras_Empty tests the selector emptiness check.
func TestGitHubExtras_Empty(t *testing.T) {
	tests := []struct {
		name     string
		extras   GitHubExtras
		expected bool
	}{
		{"all empty", GitHubExtras{}, true},
		{"workflow selected", GitHubExtras{Workflows: []string{"ci"}}, false},
		{"issue template selected", GitHubExtras{IssueTemplates: []string{"bug_report"}}, false},
		{"community file selected", GitHubExtras{CommunityFiles: []string{"contributing"}}, false},
		{"codeowners only", GitHubExtras{CodeOwners: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.extras.Empty(); got != tt.expected {
				t.Errorf("Empty() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestValidate tests RepoConfig validation.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RepoConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *RepoConfig) {}, false},
		{"empty name", func(c *RepoConfig) { c.Name = "" }, true},
		{"whitespace name", func(c *RepoConfig) { c.Name = "   " }, true},
		{"uppercase name", func(c *RepoConfig) { c.Name = "MyApp" }, true},
		{"leading dash", func(c *RepoConfig) { c.Name = "-app" }, true},
		{"hyphenated name", func(c *RepoConfig) { c.Name = "demo-app" }, false},
		{"unknown ci provider", func(c *RepoConfig) { c.CIProvider = "jenkins" }, true},
		{"empty ci provider", func(c *RepoConfig) { c.CIProvider = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRepoConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestStore_LoadMissing tests that a missing settings file yields defaults.
func TestStore_LoadMissing(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "settings.json"))

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}
	if settings.OpenAIKey != "" {
		t.Errorf("missing file produced a key: %q", settings.OpenAIKey)
	}
	if settings.Defaults.License != "MIT" {
		t.Errorf("defaults not applied: %+v", settings)
	}
}

// TestStore_SetClearKey tests key persistence round trip.
func TestStore_SetClearKey(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "settings.json"))

	if err := store.SetKey("sk-test-123"); err != nil {
		t.Fatalf("SetKey returned error: %v", err)
	}

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if settings.OpenAIKey != "sk-test-123" {
		t.Errorf("loaded key = %q, want sk-test-123", settings.OpenAIKey)
	}

	// Settings carry a credential; the file must be owner-only.
	info, err := os.Stat(store.Path)
	if err != nil {
		t.Fatalf("stat settings file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("settings file mode = %o, want 0600", info.Mode().Perm())
	}

	if err := store.ClearKey(); err != nil {
		t.Fatalf("ClearKey returned error: %v", err)
	}
	settings, err = store.Load()
	if err != nil {
		t.Fatalf("Load after clear returned error: %v", err)
	}
	if settings.OpenAIKey != "" {
		t.Errorf("key survived ClearKey: %q", settings.OpenAIKey)
	}
}

// TestResolveOpenAIKey tests that a persisted key beats the environment.
func TestResolveOpenAIKey(t *testing.T) {
	saved := envOpenAIKey
	defer func() { envOpenAIKey = saved }()

	envOpenAIKey = "sk-env"
	if got := ResolveOpenAIKey(Settings{}); got != "sk-env" {
		t.Errorf("without persisted key, got %q, want env key", got)
	}
	if got := ResolveOpenAIKey(Settings{OpenAIKey: "sk-saved"}); got != "sk-saved" {
		t.Errorf("persisted key did not win: got %q", got)
	}

	envOpenAIKey = ""
	if got := ResolveOpenAIKey(Settings{}); got != "" {
		t.Errorf("no key anywhere should resolve empty, got %q", got)
	}
}
