// Package cli wires the forge commands: the interactive wizard plus the
// non-interactive detect/generate/refactor/push/keys commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repoforge/forge/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalVerbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "AI-assisted project scaffold generator",
	Long: `forge turns a code snippet or an existing GitHub repository into a
complete project scaffold: package manifest, README, CI configuration and
community files.

Run "forge wizard" for the guided five-step flow, or use the individual
commands (detect, generate, refactor, push) directly.

With an OpenAI API key configured ("forge keys set" or OPENAI_API_KEY),
detection and generation use the generative API; without one, forge falls
back to deterministic templates and never fails.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	// Running "forge" bare starts the wizard.
	RunE: runWizard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug tracing")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Print the full generation activity log")

	// Add subcommands
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(refactorCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
