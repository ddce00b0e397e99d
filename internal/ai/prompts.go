package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/repoforge/forge/internal/config"
)

// Input clipping bounds. Prompts carry a prefix of the raw input, never the
// whole paste.
const (
	detectInputLimit = 3000
	treeInputLimit   = 6000
)

// systemPrompt frames every request.
const systemPrompt = "You are a project scaffolding assistant. " +
	"Answer with exactly the format requested and nothing else."

// buildDetectPrompt asks for a JSON detection result over a clipped input
// prefix.
func buildDetectPrompt(rawInput string) string {
	var b strings.Builder
	b.WriteString("Classify the following code snippet.\n")
	b.WriteString("Respond with a single JSON object with these keys:\n")
	b.WriteString(`{"language": string, "framework": string, "confidence": 0-100, ` +
		`"category": "frontend"|"backend"|"fullstack", "estimated_files": integer}` + "\n\n")
	b.WriteString("Code:\n")
	b.WriteString(clip(rawInput, detectInputLimit))
	return b.String()
}

// buildTreePrompt asks for a flat path-to-content JSON map covering the full
// configuration, a capped input prefix, and the literal file paths the
// selected templates require.
func buildTreePrompt(cfg config.RepoConfig, rawInput string) string {
	cfgJSON, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		// RepoConfig always marshals; guard anyway.
		cfgJSON = []byte("{}")
	}

	var b strings.Builder
	b.WriteString("Generate a complete project scaffold for the configuration below.\n")
	b.WriteString("Respond with a single JSON object mapping file paths to file contents, ")
	b.WriteString("using forward slashes in paths. No commentary.\n\n")
	b.WriteString("Configuration:\n")
	b.Write(cfgJSON)
	b.WriteString("\n\n")

	if required := requiredPaths(cfg); len(required) > 0 {
		b.WriteString("The output must include these exact paths:\n")
		for _, p := range required {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	b.WriteString("Source snippet to build around:\n")
	b.WriteString(clip(rawInput, treeInputLimit))
	return b.String()
}

// buildRefactorPrompt carries the whole file, its name, and the instruction.
func buildRefactorPrompt(name, content, instruction string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Refactor the file %q according to this instruction: %s\n", name, instruction)
	b.WriteString("Respond with the complete rewritten file content only, no commentary, no fences.\n\n")
	b.WriteString(content)
	return b.String()
}

// requiredPaths lists the literal file paths implied by the selected
// template IDs, so the model emits the exact names the templates use.
func requiredPaths(cfg config.RepoConfig) []string {
	paths := []string{"package.json", "README.md"}

	workflows := cfg.GitHub.Workflows
	if len(workflows) == 0 && cfg.CIProvider == "github" {
		workflows = []string{"ci"}
	}
	for _, id := range workflows {
		paths = append(paths, ".github/workflows/"+id+".yml")
	}
	for _, id := range cfg.GitHub.IssueTemplates {
		paths = append(paths, ".github/ISSUE_TEMPLATE/"+id+".md")
	}
	for _, id := range cfg.GitHub.CommunityFiles {
		switch id {
		case "contributing":
			paths = append(paths, ".github/CONTRIBUTING.md")
		case "code_of_conduct":
			paths = append(paths, ".github/CODE_OF_CONDUCT.md")
		case "security":
			paths = append(paths, ".github/SECURITY.md")
		case "support":
			paths = append(paths, ".github/SUPPORT.md")
		}
	}
	if cfg.GitHub.CodeOwners {
		paths = append(paths, ".github/CODEOWNERS")
	}
	if cfg.IncludeDocker {
		paths = append(paths, "Dockerfile")
	}
	return paths
}

// clip returns at most limit bytes of s, marking the cut.
func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "\n... (input truncated)"
}
