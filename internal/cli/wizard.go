package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repoforge/forge/internal/github"
	"github.com/repoforge/forge/internal/wizard"
)

// wizardCmd represents the wizard command
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the guided five-step scaffold wizard",
	Long: `Run the interactive wizard: paste a snippet (or point at a GitHub
repository), review the detected stack, tune the options, preview the
generated files, and deliver the result as a zip, a directory, or a new
GitHub repository.

The push option needs a GITHUB_TOKEN environment variable; everything else
works without credentials.`,
	Args: cobra.NoArgs,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	return wizard.Run(wizard.Options{
		Client:   aiClientFor(settings),
		Settings: settings,
		Hosting: func() (*github.Client, error) {
			token := os.Getenv("GITHUB_TOKEN")
			if token == "" {
				return nil, fmt.Errorf("set GITHUB_TOKEN to push from the wizard, or use \"forge push\"")
			}
			return github.NewClient(token), nil
		},
		Reader: func(ctx context.Context, url string) (string, error) {
			return github.NewClient(os.Getenv("GITHUB_TOKEN")).FetchRepoSummary(ctx, url)
		},
	})
}
