package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/repoforge/forge/internal/debug"
)

// keyFileNames are root files worth inlining into a repository summary, in
// priority order.
var keyFileNames = []string{
	"package.json",
	"pyproject.toml",
	"requirements.txt",
	"go.mod",
	"Cargo.toml",
	"index.js",
	"index.ts",
	"main.py",
	"app.py",
}

// maxKeyFiles bounds how many root files are inlined.
const maxKeyFiles = 4

// maxKeyFileBytes bounds the inlined size per file.
const maxKeyFileBytes = 4000

// ParseRepoURL extracts owner and repo from the URL shapes users paste:
// full https URLs, ssh remotes, "github.com/owner/repo", or bare
// "owner/repo".
func ParseRepoURL(url string) (owner, repo string, err error) {
	cleaned := strings.TrimSpace(url)
	cleaned = strings.TrimSuffix(cleaned, "/")
	cleaned = strings.TrimSuffix(cleaned, ".git")
	cleaned = strings.TrimPrefix(cleaned, "https://github.com/")
	cleaned = strings.TrimPrefix(cleaned, "http://github.com/")
	cleaned = strings.TrimPrefix(cleaned, "github.com/")
	cleaned = strings.TrimPrefix(cleaned, "git@github.com:")

	parts := strings.Split(cleaned, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", NewRequestError(url, fmt.Errorf("not an owner/repo URL"))
	}
	return parts[0], parts[1], nil
}

// contentEntry is one row of the contents API listing.
type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	Size int    `json:"size"`
}

// FetchRepoSummary fetches a repository's root listing and a handful of its
// key files, and synthesizes them into a single raw-input string suitable
// for stack detection and tree generation.
func (c *Client) FetchRepoSummary(ctx context.Context, url string) (string, error) {
	owner, repo, err := ParseRepoURL(url)
	if err != nil {
		return "", err
	}

	base := fmt.Sprintf("/repos/%s/%s", owner, repo)

	var listing []contentEntry
	if err := c.do(ctx, "GET", base+"/contents/", nil, &listing); err != nil {
		return "", err
	}
	debug.Debug("[github] summary: %d root entries in %s/%s", len(listing), owner, repo)

	var b strings.Builder
	fmt.Fprintf(&b, "Repository: %s/%s\n\nRoot listing:\n", owner, repo)
	for _, entry := range listing {
		marker := ""
		if entry.Type == "dir" {
			marker = "/"
		}
		fmt.Fprintf(&b, "- %s%s\n", entry.Name, marker)
	}

	inlined := 0
	for _, name := range keyFileNames {
		if inlined >= maxKeyFiles {
			break
		}
		if !listingHas(listing, name) {
			continue
		}

		var file struct {
			Content string `json:"content"`
		}
		if err := c.do(ctx, "GET", base+"/contents/"+name, nil, &file); err != nil {
			// A single unreadable file does not sink the summary.
			debug.Debug("[github] summary: skipping %s: %v", name, err)
			continue
		}
		content, err := decodeContent(file.Content)
		if err != nil {
			debug.Debug("[github] summary: undecodable %s: %v", name, err)
			continue
		}
		if len(content) > maxKeyFileBytes {
			content = content[:maxKeyFileBytes] + "\n... (truncated)"
		}
		fmt.Fprintf(&b, "\n--- %s ---\n%s\n", name, content)
		inlined++
	}

	// Always include a README when present, regardless of the key-file cap.
	for _, entry := range listing {
		if strings.EqualFold(entry.Name, "README.md") {
			var file struct {
				Content string `json:"content"`
			}
			if err := c.do(ctx, "GET", base+"/contents/"+entry.Name, nil, &file); err != nil {
				break
			}
			if content, err := decodeContent(file.Content); err == nil {
				if len(content) > maxKeyFileBytes {
					content = content[:maxKeyFileBytes] + "\n... (truncated)"
				}
				fmt.Fprintf(&b, "\n--- %s ---\n%s\n", entry.Name, content)
			}
			break
		}
	}

	return b.String(), nil
}

func listingHas(listing []contentEntry, name string) bool {
	for _, entry := range listing {
		if entry.Type == "file" && entry.Name == name {
			return true
		}
	}
	return false
}
