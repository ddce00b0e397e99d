package app

import (
	"context"

	"github.com/repoforge/forge/internal/github"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// PushOptions configures creating a repository and pushing a tree to it.
type PushOptions struct {
	// Name is the repository name to create.
	Name string
	// Description is the repository description.
	Description string
	// Private creates a private repository.
	Private bool
	// CommitMessage is the message for the scaffold commit.
	CommitMessage string
	// Nodes is the tree to push.
	Nodes []*tree.Node
	// Client is the hosting adapter, already authenticated.
	Client *github.Client
	// Log receives progress entries. Optional.
	Log *GenerationLog
}

// PushResult records how far a create-and-push got. When Repo is set but
// Pushed is false, creation succeeded and only the push phase failed; the
// caller should retry the push alone rather than creating again.
type PushResult struct {
	// Repo is the created repository, set once creation succeeds.
	Repo *github.Repo
	// CommitSHA is the scaffold commit, set once the push succeeds.
	CommitSHA string
	// Pushed reports whether the push phase completed.
	Pushed bool
}

// CreateAndPush creates the remote repository and pushes the tree as one
// commit. There is no partial-commit recovery inside the push sequence.
func CreateAndPush(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if len(opts.Nodes) == 0 {
		return nil, NewInputError("tree", "nothing to push; generate a scaffold first")
	}

	opts.Log.Infof("creating repository %q", opts.Name)
	repo, err := opts.Client.CreateRepo(ctx, opts.Name, opts.Description, opts.Private)
	if err != nil {
		return nil, err
	}
	opts.Log.Successf("created %s", repo.HTMLURL)

	result := &PushResult{Repo: repo}

	sha, err := PushTree(ctx, opts, repo)
	if err != nil {
		// Create succeeded, push failed: report partial progress so the
		// caller can retry the push phase only.
		return result, err
	}
	result.CommitSHA = sha
	result.Pushed = true
	return result, nil
}

// PushTree pushes the tree to an existing repository's default branch.
func PushTree(ctx context.Context, opts PushOptions, repo *github.Repo) (string, error) {
	owner, name, err := github.ParseRepoURL(repo.FullName)
	if err != nil {
		return "", err
	}

	message := opts.CommitMessage
	if message == "" {
		message = "Add generated project scaffold"
	}

	opts.Log.Infof("pushing %d files to %s@%s", tree.CountFiles(opts.Nodes), repo.FullName, repo.DefaultBranch)
	sha, err := opts.Client.Push(ctx, owner, name, repo.DefaultBranch, message, opts.Nodes)
	if err != nil {
		opts.Log.Warnf("push failed: %v", err)
		return "", err
	}
	opts.Log.Successf("pushed commit %s", sha)
	return sha, nil
}
