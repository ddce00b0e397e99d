package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repoforge/forge/internal/app"
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Detect the language and framework of a code snippet",
	Long: `Classify a code snippet (or a fetched repository) into language,
framework, confidence and suggested project category.

With an API key configured the classification is AI-driven; otherwise a
deterministic keyword heuristic answers. Detection never fails.

Examples:
  forge detect snippet.py
  forge detect --repo github.com/alice/demo
  cat main.ts | forge detect`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

// Detect command flags
var (
	detectRepoURL string
	detectToken   string
)

func init() {
	detectCmd.Flags().StringVar(&detectRepoURL, "repo", "", "Summarize a GitHub repository instead of reading a file")
	detectCmd.Flags().StringVar(&detectToken, "token", "", "GitHub token for private repository summaries")
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rawInput, fromRepo, err := readRawInput(ctx, args, detectRepoURL, detectToken)
	if err != nil {
		return err
	}

	client, err := newAIClient()
	if err != nil {
		return err
	}

	result, err := app.Detect(ctx, app.DetectOptions{
		RawInput: rawInput,
		FromRepo: fromRepo,
		Client:   client,
	})
	if err != nil {
		printErrorMsg(err.Error())
		return err
	}

	det := result.Detection
	printSuccess(fmt.Sprintf("%s / %s", det.Language, det.Framework))
	printDim(fmt.Sprintf("category:        %s", det.Category))
	printDim(fmt.Sprintf("confidence:      %d%%", det.Confidence))
	printDim(fmt.Sprintf("estimated files: %d", det.EstimatedFiles))
	printDim(fmt.Sprintf("source:          %s", result.Source))
	return nil
}
