// Package config holds the generation options for an output project and the
// persisted forge settings (API keys, defaults).
package config

// ProjectCategory classifies the suggested shape of the output project.
type ProjectCategory string

const (
	// CategoryFrontend is a browser-facing project.
	CategoryFrontend ProjectCategory = "frontend"
	// CategoryBackend is a server-side project.
	CategoryBackend ProjectCategory = "backend"
	// CategoryFullstack is a combined project.
	CategoryFullstack ProjectCategory = "fullstack"
)

// DetectionResult is the outcome of stack detection over raw input. It is
// produced once per run and only seeds configuration defaults; after the
// merge, the configuration is the source of truth.
type DetectionResult struct {
	// Language is the detected primary language (e.g. "TypeScript").
	Language string `json:"language"`
	// Framework is the detected framework, or "None".
	Framework string `json:"framework"`
	// Confidence is a fixed per-rule score in [0, 100], not a computed model.
	Confidence int `json:"confidence"`
	// Category is the suggested project category.
	Category ProjectCategory `json:"category"`
	// EstimatedFiles is the rough file count a scaffold would produce.
	EstimatedFiles int `json:"estimated_files"`
}

// GitHubExtras selects the optional .github content of a generated scaffold.
type GitHubExtras struct {
	// Workflows are the selected workflow IDs (e.g. "ci", "release").
	Workflows []string `json:"workflows"`
	// IssueTemplates are the selected issue template IDs (e.g. "bug_report").
	IssueTemplates []string `json:"issue_templates"`
	// CommunityFiles are the selected standalone community file IDs
	// (e.g. "contributing", "code_of_conduct").
	CommunityFiles []string `json:"community_files"`
	// CodeOwners emits a CODEOWNERS file when true.
	CodeOwners bool `json:"codeowners"`
}

// Empty reports whether no .github content is selected.
func (g GitHubExtras) Empty() bool {
	return len(g.Workflows) == 0 &&
		len(g.IssueTemplates) == 0 &&
		len(g.CommunityFiles) == 0 &&
		!g.CodeOwners
}

// RepoConfig is the full set of user-chosen generation options for the
// output project. It is mutated only through explicit user edits and is
// merged with detection defaults exactly once per run.
type RepoConfig struct {
	// Name is the project name, used for the manifest and remote repository.
	Name string `json:"name"`
	// Description is the short project description.
	Description string `json:"description"`
	// License is the SPDX license identifier (e.g. "MIT").
	License string `json:"license"`
	// Author is the manifest author string.
	Author string `json:"author"`

	// Language is the primary language of the scaffold.
	Language string `json:"language"`
	// Framework is the framework the entry file targets, or "None".
	Framework string `json:"framework"`
	// PackageManager selects the manifest's tooling (npm, yarn, pnpm).
	PackageManager string `json:"package_manager"`
	// Bundler selects the build tool recorded in the manifest scripts.
	Bundler string `json:"bundler"`
	// UseTypeScript enables TypeScript entry files and tooling.
	UseTypeScript bool `json:"use_typescript"`
	// Monorepo adds a workspaces stanza to the manifest.
	Monorepo bool `json:"monorepo"`

	// IncludeLinting adds lint tooling to the manifest.
	IncludeLinting bool `json:"include_linting"`
	// IncludeTests adds test tooling and a placeholder test file.
	IncludeTests bool `json:"include_tests"`
	// CIProvider selects the CI configuration ("github", "gitlab", "none").
	CIProvider string `json:"ci_provider"`
	// IncludeDocker emits a Dockerfile.
	IncludeDocker bool `json:"include_docker"`

	// GitHub selects the optional .github content.
	GitHub GitHubExtras `json:"github"`

	// detectionMerged guards the one-time seeding of defaults.
	detectionMerged bool
}

// Settings is the persisted forge configuration, stored as JSON under the
// user config directory.
type Settings struct {
	// OpenAIKey is the saved generative API key. Empty is a valid state;
	// forge then runs in deterministic fallback mode.
	OpenAIKey string `json:"openai_key,omitempty"`
	// Defaults are pre-filled RepoConfig values applied to new runs.
	Defaults DefaultsConfig `json:"defaults"`
}

// DefaultsConfig holds default values applied to new wizard runs.
type DefaultsConfig struct {
	// License is the default license identifier.
	License string `json:"license"`
	// Author is the default author string.
	Author string `json:"author"`
	// PackageManager is the default package manager.
	PackageManager string `json:"package_manager"`
}
