// Package github wraps the GitHub REST API for the operations forge needs:
// creating a repository, pushing a generated tree as a single commit, and
// summarizing an existing repository into raw input for detection.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/repoforge/forge/internal/debug"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// DefaultAPIURL is the public GitHub API endpoint.
const DefaultAPIURL = "https://api.github.com"

// Client talks to the GitHub REST API.
type Client struct {
	// HTTPClient is the HTTP client for API requests.
	HTTPClient *http.Client
	// Token is the bearer token. Required for CreateRepo and Push.
	Token string
	// APIURL is the API base URL (override for enterprise or tests).
	APIURL string
}

// NewClient creates a client authenticated with the given token.
func NewClient(token string) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Token:  token,
		APIURL: DefaultAPIURL,
	}
}

// Repo is the canonical identity of a created or resolved repository.
type Repo struct {
	// FullName is "owner/name".
	FullName string `json:"full_name"`
	// HTMLURL is the browser URL.
	HTMLURL string `json:"html_url"`
	// DefaultBranch is the branch pushes target.
	DefaultBranch string `json:"default_branch"`
	// CloneURL is the HTTPS clone URL.
	CloneURL string `json:"clone_url"`
}

// CreateRepo creates a repository for the authenticated user.
func (c *Client) CreateRepo(ctx context.Context, name, description string, private bool) (*Repo, error) {
	payload := map[string]any{
		"name":        name,
		"description": description,
		"private":     private,
		"auto_init":   true,
	}

	var repo Repo
	if err := c.do(ctx, http.MethodPost, "/user/repos", payload, &repo); err != nil {
		return nil, err
	}
	if repo.DefaultBranch == "" {
		repo.DefaultBranch = "main"
	}
	debug.Debug("[github] created repository %s (%s)", repo.FullName, repo.HTMLURL)
	return &repo, nil
}

// treeEntry is one leaf in the tree-create request. Only files appear;
// folders exist implicitly through the slash-delimited paths.
type treeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
}

// Push commits the generated tree to the branch head as a single commit.
// The sequence is strictly ordered, each step feeding the next: read the
// branch-head commit, read its root tree, create one blob per file, create
// a tree layered on the base, create a commit, fast-forward the ref. Any
// failure aborts the whole push with no partial-commit recovery; the caller
// may retry the push phase as a whole.
func (c *Client) Push(ctx context.Context, owner, repo, branch, message string, nodes []*tree.Node) (string, error) {
	base := fmt.Sprintf("/repos/%s/%s", owner, repo)

	// Step 1: branch-head commit SHA.
	var ref struct {
		Object struct {
			SHA string `json:"sha"`
		} `json:"object"`
	}
	if err := c.do(ctx, http.MethodGet, base+"/git/ref/heads/"+branch, nil, &ref); err != nil {
		return "", NewPushStepError("read branch ref", err)
	}
	headSHA := ref.Object.SHA
	debug.Debug("[github] push: head commit %s", headSHA)

	// Step 2: root tree SHA of the head commit.
	var headCommit struct {
		Tree struct {
			SHA string `json:"sha"`
		} `json:"tree"`
	}
	if err := c.do(ctx, http.MethodGet, base+"/git/commits/"+headSHA, nil, &headCommit); err != nil {
		return "", NewPushStepError("read head commit", err)
	}
	baseTreeSHA := headCommit.Tree.SHA

	// Step 3: one blob per file leaf, in tree order.
	var entries []treeEntry
	err := tree.Walk(nodes, func(path string, n *tree.Node) error {
		if n.Kind != tree.KindFile {
			return nil
		}
		var blob struct {
			SHA string `json:"sha"`
		}
		payload := map[string]any{
			"content":  n.Content,
			"encoding": "utf-8",
		}
		if err := c.do(ctx, http.MethodPost, base+"/git/blobs", payload, &blob); err != nil {
			return fmt.Errorf("blob for %s: %w", path, err)
		}
		entries = append(entries, treeEntry{
			Path: path,
			Mode: "100644",
			Type: "blob",
			SHA:  blob.SHA,
		})
		return nil
	})
	if err != nil {
		return "", NewPushStepError("create blobs", err)
	}
	debug.Debug("[github] push: %d blobs created", len(entries))

	// Step 4: new tree layered on the base tree.
	var newTree struct {
		SHA string `json:"sha"`
	}
	treePayload := map[string]any{
		"base_tree": baseTreeSHA,
		"tree":      entries,
	}
	if err := c.do(ctx, http.MethodPost, base+"/git/trees", treePayload, &newTree); err != nil {
		return "", NewPushStepError("create tree", err)
	}

	// Step 5: commit referencing the new tree and the prior head.
	var newCommit struct {
		SHA string `json:"sha"`
	}
	commitPayload := map[string]any{
		"message": message,
		"tree":    newTree.SHA,
		"parents": []string{headSHA},
	}
	if err := c.do(ctx, http.MethodPost, base+"/git/commits", commitPayload, &newCommit); err != nil {
		return "", NewPushStepError("create commit", err)
	}

	// Step 6: fast-forward the branch reference.
	refPayload := map[string]any{
		"sha": newCommit.SHA,
	}
	if err := c.do(ctx, http.MethodPatch, base+"/git/refs/heads/"+branch, refPayload, nil); err != nil {
		return "", NewPushStepError("update ref", err)
	}

	debug.Debug("[github] push: branch %s now at %s", branch, newCommit.SHA)
	return newCommit.SHA, nil
}

// do performs one API request, decoding a JSON response into out when out
// is non-nil.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return NewRequestError(path, fmt.Errorf("encode payload: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL()+path, body)
	if err != nil {
		return NewRequestError(path, err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewRequestError(path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Continue to decode.
	case resp.StatusCode == http.StatusNotFound:
		return NewNotFoundError(path)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return NewAuthError(path)
	default:
		return NewStatusError(path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewRequestError(path, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) apiURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	return DefaultAPIURL
}

// decodeContent decodes a contents-API payload (base64 with newlines).
func decodeContent(encoded string) (string, error) {
	cleaned := strings.ReplaceAll(encoded, "\n", "")
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
