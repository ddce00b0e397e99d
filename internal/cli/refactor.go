package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/repoforge/forge/internal/ai"
	"github.com/repoforge/forge/internal/app"
)

// refactorCmd represents the refactor command
var refactorCmd = &cobra.Command{
	Use:   "refactor <file>",
	Short: "Rewrite a file with an AI instruction",
	Long: `Rewrite one file according to a natural-language instruction.

Refactoring requires an API key ("forge keys set" or OPENAI_API_KEY); there
is no deterministic substitute for a rewrite. When the call fails the
original content is printed with the unapplied instruction annotated at the
top, so nothing is silently lost.

Examples:
  forge refactor src/index.ts -i "add error handling to the fetch call"
  forge refactor main.py -i "convert to async" --write`,
	Args: cobra.ExactArgs(1),
	RunE: runRefactor,
}

// Refactor command flags
var (
	refactorInstruction string
	refactorWrite       bool
)

func init() {
	refactorCmd.Flags().StringVarP(&refactorInstruction, "instruction", "i", "", "Rewrite instruction (required)")
	refactorCmd.Flags().BoolVarP(&refactorWrite, "write", "w", false, "Write the result back to the file instead of stdout")
	_ = refactorCmd.MarkFlagRequired("instruction")
}

func runRefactor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	client, err := newAIClient()
	if err != nil {
		return err
	}

	result, err := app.Refactor(ctx, app.RefactorOptions{
		FileName:    filepath.Base(path),
		Content:     string(data),
		Instruction: refactorInstruction,
		Client:      client,
	})
	if err != nil {
		var clientErr *ai.ClientError
		if errors.As(err, &clientErr) && clientErr.Type == ai.ErrorUnavailable {
			printErrorMsg("no API key configured; run \"forge keys set\" or export OPENAI_API_KEY")
		} else {
			printErrorMsg(fmt.Sprintf("refactor failed: %v", err))
		}
		// Print the annotated passthrough so the instruction is not lost,
		// but never write it back over the original file.
		fmt.Print(result)
		return err
	}

	if refactorWrite {
		if err := os.WriteFile(path, []byte(result), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		printSuccess(fmt.Sprintf("rewrote %s", path))
		return nil
	}

	fmt.Print(result)
	return nil
}
