package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repoforge/forge/internal/app"
	"github.com/repoforge/forge/internal/github"
)

// pushCmd represents the push command
var pushCmd = &cobra.Command{
	Use:   "push [file]",
	Short: "Generate a scaffold and push it to a new GitHub repository",
	Long: `Generate a scaffold from a code snippet and push it to a freshly
created GitHub repository as a single commit.

A token is resolved from --token, then the GITHUB_TOKEN environment
variable, then an interactive prompt. The token is held for this run only
and never persisted.

If repository creation succeeds but the push fails, the repository URL is
still reported; re-running with --existing <owner/repo> retries the push
phase alone instead of creating a duplicate.

Examples:
  forge push snippet.tsx --name demo-app
  forge push snippet.py --name api --private -m "Initial scaffold"
  forge push snippet.tsx --existing alice/demo-app`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPush,
}

// Push command flags
var (
	pushRepoURL     string
	pushName        string
	pushDescription string
	pushMessage     string
	pushToken       string
	pushExisting    string
	pushPrivate     bool
)

func init() {
	pushCmd.Flags().StringVar(&pushRepoURL, "repo", "", "Generate from a GitHub repository summary instead of a file")
	pushCmd.Flags().StringVarP(&pushName, "name", "n", "", "Repository name to create (default: project name)")
	pushCmd.Flags().StringVarP(&pushDescription, "description", "d", "", "Repository description")
	pushCmd.Flags().StringVarP(&pushMessage, "message", "m", "", "Commit message for the scaffold commit")
	pushCmd.Flags().StringVar(&pushToken, "token", "", "GitHub token (default: GITHUB_TOKEN env, then prompt)")
	pushCmd.Flags().StringVar(&pushExisting, "existing", "", "Push to an existing repository (owner/repo) instead of creating one")
	pushCmd.Flags().BoolVar(&pushPrivate, "private", false, "Create a private repository")
}

func runPush(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	token, err := resolveGitHubToken()
	if err != nil {
		return err
	}

	rawInput, fromRepo, err := readRawInput(ctx, args, pushRepoURL, token)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client := aiClientFor(settings)

	log := app.NewLog()

	detected, err := app.Detect(ctx, app.DetectOptions{
		RawInput: rawInput,
		FromRepo: fromRepo,
		Client:   client,
		Log:      log,
	})
	if err != nil {
		return err
	}

	cfg := buildGenerateConfig(settings, detected.Detection, cmd)
	if pushName != "" {
		cfg.Name = pushName
	}
	if pushDescription != "" {
		cfg.Description = pushDescription
	}

	result, err := app.Generate(ctx, app.GenerateOptions{
		Config:   cfg,
		RawInput: rawInput,
		Client:   client,
		Log:      log,
	})
	if err != nil {
		return err
	}
	printProgress(fmt.Sprintf("scaffold ready: %d files (%s)", result.FileCount, result.Source))

	hosting := github.NewClient(token)
	opts := app.PushOptions{
		Name:          cfg.Name,
		Description:   cfg.Description,
		Private:       pushPrivate,
		CommitMessage: pushMessage,
		Nodes:         result.Nodes,
		Client:        hosting,
		Log:           log,
	}

	if pushExisting != "" {
		return pushToExisting(cmd, opts)
	}

	pushed, err := app.CreateAndPush(ctx, opts)
	if err != nil {
		if pushed != nil && pushed.Repo != nil {
			printWarning(fmt.Sprintf("repository created at %s but the push failed", pushed.Repo.HTMLURL))
			printWarning(fmt.Sprintf("retry with: forge push --existing %s", pushed.Repo.FullName))
		}
		return err
	}

	printSuccess(fmt.Sprintf("pushed commit %s to %s", pushed.CommitSHA, pushed.Repo.HTMLURL))
	printLog(log)
	return nil
}

// pushToExisting retries the push phase against an already created repository.
func pushToExisting(cmd *cobra.Command, opts app.PushOptions) error {
	owner, name, err := github.ParseRepoURL(pushExisting)
	if err != nil {
		return err
	}
	repo := &github.Repo{
		FullName:      owner + "/" + name,
		HTMLURL:       "https://github.com/" + owner + "/" + name,
		DefaultBranch: "main",
	}
	sha, err := app.PushTree(cmd.Context(), opts, repo)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("pushed commit %s to %s", sha, repo.HTMLURL))
	return nil
}

// resolveGitHubToken resolves the token for this run: flag, environment,
// then interactive prompt. The token is never written to disk.
func resolveGitHubToken() (string, error) {
	if pushToken != "" {
		return pushToken, nil
	}
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env, nil
	}
	return promptPassword("GitHub personal access token (repo scope):")
}
