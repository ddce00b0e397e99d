package fallback

import (
	"reflect"
	"strings"
	"testing"

	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

func baseConfig() config.RepoConfig {
	cfg := config.DefaultRepoConfig()
	cfg.Name = "demo-app"
	cfg.Description = "A demo"
	cfg.CIProvider = "none"
	cfg.IncludeTests = false
	cfg.IncludeLinting = false
	cfg.GitHub = config.GitHubExtras{}
	return cfg
}

// TestGenerate_MinimalTree tests the exact minimal scaffold: TypeScript +
// React, no extras selected.
func TestGenerate_MinimalTree(t *testing.T) {
	cfg := baseConfig()
	cfg.UseTypeScript = true
	cfg.Framework = "React"

	nodes := Generate(cfg, "const x = 1;")
	flat := tree.Flatten(nodes)

	wantPaths := []string{"package.json", "README.md", "src/index.tsx"}
	if len(flat) != len(wantPaths) {
		t.Errorf("tree has %d files, want exactly %d: %v", len(flat), len(wantPaths), flat)
	}
	for _, p := range wantPaths {
		if _, ok := flat[p]; !ok {
			t.Errorf("missing expected file %q", p)
		}
	}

	if !strings.Contains(flat["src/index.tsx"], "const x = 1;") {
		t.Errorf("entry file does not wrap the raw input:\n%s", flat["src/index.tsx"])
	}
	for p := range flat {
		if strings.HasPrefix(p, ".github/") {
			t.Errorf("unexpected .github content: %s", p)
		}
		if p == "Dockerfile" {
			t.Errorf("unexpected Dockerfile")
		}
	}
}

// TestGenerate_Deterministic tests that identical inputs produce
// structurally identical trees.
func TestGenerate_Deterministic(t *testing.T) {
	cfg := config.DefaultRepoConfig()
	cfg.Name = "det-app"
	cfg.IncludeDocker = true
	cfg.GitHub.IssueTemplates = []string{"bug_report", "feature_request"}
	cfg.GitHub.CommunityFiles = []string{"contributing", "security"}
	cfg.GitHub.CodeOwners = true

	first := Generate(cfg, "const a = 1;")
	second := Generate(cfg, "const a = 1;")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two generations with identical input differ")
	}
}

// TestEntryExtension tests the 2x2 extension decision table.
func TestEntryExtension(t *testing.T) {
	tests := []struct {
		name       string
		typescript bool
		framework  string
		expected   string
	}{
		{"ts react", true, "React", "tsx"},
		{"ts nextjs", true, "Next.js", "tsx"},
		{"ts plain", true, "None", "ts"},
		{"ts express", true, "Express", "ts"},
		{"js react", false, "React", "jsx"},
		{"js preact", false, "Preact", "jsx"},
		{"js plain", false, "None", "js"},
		{"js vue", false, "Vue", "js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.UseTypeScript = tt.typescript
			cfg.Framework = tt.framework
			if got := EntryExtension(cfg); got != tt.expected {
				t.Errorf("EntryExtension = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestGenerate_GitHubGating tests .github emission rules.
func TestGenerate_GitHubGating(t *testing.T) {
	t.Run("no selectors and non-github CI emits nothing", func(t *testing.T) {
		cfg := baseConfig()
		cfg.CIProvider = "gitlab"

		nodes := Generate(cfg, "")
		for _, n := range nodes {
			if n.Name == ".github" {
				t.Fatalf(".github emitted with empty selectors and gitlab CI")
			}
		}
	})

	t.Run("github CI alone implies a default workflow", func(t *testing.T) {
		cfg := baseConfig()
		cfg.CIProvider = "github"

		flat := tree.Flatten(Generate(cfg, ""))
		if _, ok := flat[".github/workflows/ci.yml"]; !ok {
			t.Errorf("expected .github/workflows/ci.yml, got %v", keys(flat))
		}
	})

	t.Run("selected extras are emitted", func(t *testing.T) {
		cfg := baseConfig()
		cfg.GitHub = config.GitHubExtras{
			Workflows:      []string{"ci", "release"},
			IssueTemplates: []string{"bug_report"},
			CommunityFiles: []string{"contributing", "code_of_conduct"},
			CodeOwners:     true,
		}

		flat := tree.Flatten(Generate(cfg, ""))
		want := []string{
			".github/workflows/ci.yml",
			".github/workflows/release.yml",
			".github/ISSUE_TEMPLATE/bug_report.md",
			".github/CONTRIBUTING.md",
			".github/CODE_OF_CONDUCT.md",
			".github/CODEOWNERS",
		}
		for _, p := range want {
			if _, ok := flat[p]; !ok {
				t.Errorf("missing %q in %v", p, keys(flat))
			}
		}
	})

	t.Run("unknown selector IDs are skipped", func(t *testing.T) {
		cfg := baseConfig()
		cfg.GitHub.Workflows = []string{"not-a-workflow"}

		nodes := Generate(cfg, "")
		for _, n := range nodes {
			if n.Name == ".github" {
				t.Errorf(".github emitted for unknown workflow ID only")
			}
		}
	})
}

// TestGenerate_Docker tests Dockerfile emission.
func TestGenerate_Docker(t *testing.T) {
	cfg := baseConfig()
	cfg.IncludeDocker = true
	cfg.PackageManager = "pnpm"

	flat := tree.Flatten(Generate(cfg, ""))
	docker, ok := flat["Dockerfile"]
	if !ok {
		t.Fatalf("Dockerfile missing")
	}
	if !strings.Contains(docker, "pnpm") {
		t.Errorf("Dockerfile does not honor the package manager:\n%s", docker)
	}
}

// TestGenerate_TestFile tests the placeholder test file toggle.
func TestGenerate_TestFile(t *testing.T) {
	cfg := baseConfig()
	cfg.IncludeTests = true
	cfg.UseTypeScript = true

	flat := tree.Flatten(Generate(cfg, ""))
	if _, ok := flat["src/index.test.ts"]; !ok {
		t.Errorf("expected src/index.test.ts, got %v", keys(flat))
	}

	cfg.IncludeTests = false
	flat = tree.Flatten(Generate(cfg, ""))
	if _, ok := flat["src/index.test.ts"]; ok {
		t.Errorf("test file emitted although tests were not requested")
	}
}

// TestGenerate_ManifestInterpolation tests name/description interpolation.
func TestGenerate_ManifestInterpolation(t *testing.T) {
	cfg := baseConfig()
	cfg.Name = "interp-check"
	cfg.Description = "described here"
	cfg.Monorepo = true

	flat := tree.Flatten(Generate(cfg, ""))

	pkg := flat["package.json"]
	if !strings.Contains(pkg, `"name": "interp-check"`) {
		t.Errorf("manifest missing name:\n%s", pkg)
	}
	if !strings.Contains(pkg, `"description": "described here"`) {
		t.Errorf("manifest missing description:\n%s", pkg)
	}
	if !strings.Contains(pkg, `"workspaces"`) {
		t.Errorf("monorepo manifest missing workspaces stanza:\n%s", pkg)
	}

	readme := flat["README.md"]
	if !strings.Contains(readme, "# interp-check") || !strings.Contains(readme, "described here") {
		t.Errorf("README not interpolated:\n%s", readme)
	}
}

// TestGenerate_GitLabCI tests the gitlab provider output.
func TestGenerate_GitLabCI(t *testing.T) {
	cfg := baseConfig()
	cfg.CIProvider = "gitlab"

	flat := tree.Flatten(Generate(cfg, ""))
	if _, ok := flat[".gitlab-ci.yml"]; !ok {
		t.Errorf("expected .gitlab-ci.yml for gitlab provider, got %v", keys(flat))
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
