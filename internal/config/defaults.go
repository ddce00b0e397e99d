package config

// DefaultRepoConfig returns a RepoConfig pre-filled with the stock options
// used before detection and user edits.
func DefaultRepoConfig() RepoConfig {
	return RepoConfig{
		Name:           "my-project",
		Description:    "A generated project scaffold",
		License:        "MIT",
		Language:       "JavaScript",
		Framework:      "None",
		PackageManager: "npm",
		Bundler:        "vite",
		IncludeLinting: true,
		IncludeTests:   true,
		CIProvider:     "github",
		GitHub: GitHubExtras{
			Workflows:      []string{"ci"},
			IssueTemplates: []string{},
			CommunityFiles: []string{},
		},
	}
}

// DefaultSettings returns the stock persisted settings.
func DefaultSettings() Settings {
	return Settings{
		Defaults: DefaultsConfig{
			License:        "MIT",
			PackageManager: "npm",
		},
	}
}

// ApplyDefaults overlays persisted default values onto a RepoConfig.
func ApplyDefaults(cfg *RepoConfig, d DefaultsConfig) {
	if d.License != "" {
		cfg.License = d.License
	}
	if d.Author != "" {
		cfg.Author = d.Author
	}
	if d.PackageManager != "" {
		cfg.PackageManager = d.PackageManager
	}
}

// MergeDetection seeds cfg with detection defaults. The merge happens at
// most once per RepoConfig value; later calls are no-ops so user edits made
// after the first merge are never clobbered.
func MergeDetection(cfg *RepoConfig, det DetectionResult) {
	if cfg.detectionMerged {
		return
	}
	cfg.detectionMerged = true

	if det.Language != "" {
		cfg.Language = det.Language
	}
	if det.Framework != "" {
		cfg.Framework = det.Framework
	}
	cfg.UseTypeScript = det.Language == "TypeScript"
}
