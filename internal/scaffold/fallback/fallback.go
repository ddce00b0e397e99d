// Package fallback builds a deterministic project scaffold purely from the
// generation options. It is the network-free substitute used whenever the
// AI path is unavailable or fails: a pure function of config and raw input
// that always terminates and never errors.
package fallback

import (
	"fmt"
	"strings"

	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// reactFamily are frameworks whose entry files use JSX syntax.
var reactFamily = map[string]bool{
	"react":        true,
	"next.js":      true,
	"nextjs":       true,
	"preact":       true,
	"react native": true,
}

// Generate builds the fallback scaffold for cfg, wrapping rawInput into the
// entry file. Two calls with identical arguments produce structurally
// identical trees: same names, same order, same content.
func Generate(cfg config.RepoConfig, rawInput string) []*tree.Node {
	nodes := []*tree.Node{
		tree.FileWithLanguage("package.json", manifest(cfg), "json"),
		tree.FileWithLanguage("README.md", readme(cfg), "markdown"),
	}

	if cfg.IncludeDocker {
		nodes = append(nodes, tree.FileWithLanguage("Dockerfile", dockerfile(cfg), "dockerfile"))
	}

	if gh := githubFolder(cfg); gh != nil {
		nodes = append(nodes, gh)
	}

	if cfg.CIProvider == "gitlab" {
		nodes = append(nodes, tree.FileWithLanguage(".gitlab-ci.yml", gitlabCI(cfg), "yaml"))
	}

	nodes = append(nodes, srcFolder(cfg, rawInput))

	return nodes
}

// EntryExtension resolves the entry file extension from the 2x2 decision
// table {TypeScript?} x {React-family framework?}.
func EntryExtension(cfg config.RepoConfig) string {
	react := reactFamily[strings.ToLower(cfg.Framework)]
	switch {
	case cfg.UseTypeScript && react:
		return "tsx"
	case cfg.UseTypeScript:
		return "ts"
	case react:
		return "jsx"
	default:
		return "js"
	}
}

// srcFolder builds the src tree: the entry file wrapping the raw input, and
// a placeholder test file when tests are requested.
func srcFolder(cfg config.RepoConfig, rawInput string) *tree.Node {
	ext := EntryExtension(cfg)
	lang := "javascript"
	if cfg.UseTypeScript {
		lang = "typescript"
	}

	entry := tree.FileWithLanguage("index."+ext, entryFile(cfg, rawInput), lang)
	src := tree.Folder("src", entry)

	if cfg.IncludeTests {
		src.Children = append(src.Children,
			tree.FileWithLanguage("index.test."+ext, testFile(cfg), lang))
	}
	return src
}

// entryFile wraps (not replaces) the raw input in a generated header and a
// bootstrap footer.
func entryFile(cfg config.RepoConfig, rawInput string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", cfg.Name)
	fmt.Fprintf(&b, "// Entry point generated by forge.\n\n")

	input := strings.TrimRight(rawInput, "\n")
	if input != "" {
		b.WriteString(input)
		b.WriteString("\n\n")
	}

	b.WriteString("export {};\n")
	return b.String()
}

// testFile is fixed placeholder content; only the import extension varies.
func testFile(cfg config.RepoConfig) string {
	return fmt.Sprintf(`import { describe, it, expect } from 'vitest';

describe('%s', () => {
  it('starts up', () => {
    expect(true).toBe(true);
  });
});
`, cfg.Name)
}

// githubFolder assembles the .github tree, or nil when nothing under it is
// requested. Emission is gated by membership in the four selector
// collections plus the CI provider choice: all selectors empty and a
// non-github CI provider produce no .github node at all.
func githubFolder(cfg config.RepoConfig) *tree.Node {
	workflows := cfg.GitHub.Workflows
	if len(workflows) == 0 && cfg.CIProvider == "github" {
		// The provider choice alone implies a default CI workflow.
		workflows = []string{"ci"}
	}

	if len(workflows) == 0 && cfg.GitHub.Empty() {
		return nil
	}

	gh := tree.Folder(".github")

	if len(workflows) > 0 {
		wf := tree.Folder("workflows")
		for _, id := range workflows {
			if content, ok := workflowTemplates[id]; ok {
				wf.Children = append(wf.Children,
					tree.FileWithLanguage(id+".yml", interpolate(content, cfg), "yaml"))
			}
		}
		if len(wf.Children) > 0 {
			gh.Children = append(gh.Children, wf)
		}
	}

	if len(cfg.GitHub.IssueTemplates) > 0 {
		it := tree.Folder("ISSUE_TEMPLATE")
		for _, id := range cfg.GitHub.IssueTemplates {
			if content, ok := issueTemplates[id]; ok {
				it.Children = append(it.Children,
					tree.FileWithLanguage(id+".md", interpolate(content, cfg), "markdown"))
			}
		}
		if len(it.Children) > 0 {
			gh.Children = append(gh.Children, it)
		}
	}

	for _, id := range cfg.GitHub.CommunityFiles {
		if name, ok := communityFileNames[id]; ok {
			gh.Children = append(gh.Children,
				tree.FileWithLanguage(name, interpolate(communityTemplates[id], cfg), "markdown"))
		}
	}

	if cfg.GitHub.CodeOwners {
		owner := cfg.Author
		if owner == "" {
			owner = "maintainers"
		}
		gh.Children = append(gh.Children,
			tree.File("CODEOWNERS", fmt.Sprintf("* @%s\n", owner)))
	}

	if len(gh.Children) == 0 {
		return nil
	}
	return gh
}

// manifest renders the package.json for cfg.
func manifest(cfg config.RepoConfig) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  %q: %q,\n", "name", cfg.Name)
	fmt.Fprintf(&b, "  %q: %q,\n", "version", "0.1.0")
	fmt.Fprintf(&b, "  %q: %q,\n", "description", cfg.Description)
	if cfg.Author != "" {
		fmt.Fprintf(&b, "  %q: %q,\n", "author", cfg.Author)
	}
	fmt.Fprintf(&b, "  %q: %q,\n", "license", cfg.License)
	fmt.Fprintf(&b, "  %q: %q,\n", "type", "module")

	if cfg.Monorepo {
		b.WriteString("  \"workspaces\": [\n    \"packages/*\"\n  ],\n")
	}

	b.WriteString("  \"scripts\": {\n")
	scripts := manifestScripts(cfg)
	for i, s := range scripts {
		fmt.Fprintf(&b, "    %q: %q", s[0], s[1])
		if i < len(scripts)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  },\n")

	b.WriteString("  \"devDependencies\": {\n")
	deps := devDependencies(cfg)
	for i, d := range deps {
		fmt.Fprintf(&b, "    %q: %q", d[0], d[1])
		if i < len(deps)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  }\n")

	b.WriteString("}\n")
	return b.String()
}

// manifestScripts returns ordered script entries for the manifest.
func manifestScripts(cfg config.RepoConfig) [][2]string {
	scripts := [][2]string{
		{"dev", cfg.Bundler},
		{"build", cfg.Bundler + " build"},
	}
	if cfg.IncludeLinting {
		scripts = append(scripts, [2]string{"lint", "eslint src"})
	}
	if cfg.IncludeTests {
		scripts = append(scripts, [2]string{"test", "vitest run"})
	}
	if cfg.UseTypeScript {
		scripts = append(scripts, [2]string{"typecheck", "tsc --noEmit"})
	}
	return scripts
}

// devDependencies returns ordered devDependency entries for the manifest.
func devDependencies(cfg config.RepoConfig) [][2]string {
	deps := [][2]string{
		{cfg.Bundler, "latest"},
	}
	if cfg.UseTypeScript {
		deps = append(deps, [2]string{"typescript", "^5.4.0"})
	}
	if cfg.IncludeLinting {
		deps = append(deps, [2]string{"eslint", "^9.0.0"})
	}
	if cfg.IncludeTests {
		deps = append(deps, [2]string{"vitest", "^1.6.0"})
	}
	return deps
}

// readme renders the README with interpolated name and description.
func readme(cfg config.RepoConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	fmt.Fprintf(&b, "%s\n\n", cfg.Description)
	b.WriteString("## Getting started\n\n")
	b.WriteString("```sh\n")
	fmt.Fprintf(&b, "%s install\n", cfg.PackageManager)
	fmt.Fprintf(&b, "%s run dev\n", cfg.PackageManager)
	b.WriteString("```\n\n")
	if cfg.IncludeTests {
		b.WriteString("## Tests\n\n")
		b.WriteString("```sh\n")
		fmt.Fprintf(&b, "%s run test\n", cfg.PackageManager)
		b.WriteString("```\n\n")
	}
	fmt.Fprintf(&b, "## License\n\n%s\n", cfg.License)
	return b.String()
}

// dockerfile renders a minimal node Dockerfile.
func dockerfile(cfg config.RepoConfig) string {
	install := "npm ci"
	switch cfg.PackageManager {
	case "yarn":
		install = "yarn install --frozen-lockfile"
	case "pnpm":
		install = "corepack enable && pnpm install --frozen-lockfile"
	}
	return fmt.Sprintf(`FROM node:20-alpine

WORKDIR /app

COPY package.json ./
RUN %s

COPY . .
RUN %s run build

CMD ["%s", "run", "dev"]
`, install, cfg.PackageManager, cfg.PackageManager)
}

// gitlabCI renders the GitLab pipeline when that provider is selected.
func gitlabCI(cfg config.RepoConfig) string {
	var b strings.Builder
	b.WriteString("image: node:20\n\nstages:\n  - build\n")
	if cfg.IncludeTests {
		b.WriteString("  - test\n")
	}
	fmt.Fprintf(&b, "\nbuild:\n  stage: build\n  script:\n    - %s install\n    - %s run build\n",
		cfg.PackageManager, cfg.PackageManager)
	if cfg.IncludeTests {
		fmt.Fprintf(&b, "\ntest:\n  stage: test\n  script:\n    - %s install\n    - %s run test\n",
			cfg.PackageManager, cfg.PackageManager)
	}
	return b.String()
}

// interpolate substitutes the template placeholders supported by the static
// scaffold texts.
func interpolate(template string, cfg config.RepoConfig) string {
	r := strings.NewReplacer(
		"{{name}}", cfg.Name,
		"{{description}}", cfg.Description,
		"{{package_manager}}", cfg.PackageManager,
	)
	return r.Replace(template)
}
