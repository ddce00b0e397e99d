package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repoforge/forge/internal/config"
)

// keysCmd represents the keys command group
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the saved OpenAI API key",
	Long: `Manage the OpenAI API key used for detection, generation and
refactoring.

The key is stored in the forge settings file under the user config
directory, readable only by the owner. Without a key forge still works:
detection uses a keyword heuristic and generation uses deterministic
templates.`,
}

// keysSetCmd represents the keys set command
var keysSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Save an OpenAI API key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeysSet,
}

// keysClearCmd represents the keys clear command
var keysClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the saved OpenAI API key",
	Args:  cobra.NoArgs,
	RunE:  runKeysClear,
}

// keysShowCmd represents the keys show command
var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether a key is configured",
	Args:  cobra.NoArgs,
	RunE:  runKeysShow,
}

func init() {
	keysCmd.AddCommand(keysSetCmd)
	keysCmd.AddCommand(keysClearCmd)
	keysCmd.AddCommand(keysShowCmd)
}

func runKeysSet(cmd *cobra.Command, args []string) error {
	key := ""
	if len(args) > 0 {
		key = args[0]
	} else {
		entered, err := promptPassword("OpenAI API key:")
		if err != nil {
			return err
		}
		key = entered
	}

	store, err := config.NewStore()
	if err != nil {
		return err
	}
	if err := store.SetKey(key); err != nil {
		return err
	}
	printSuccess("API key saved")
	return nil
}

// confirmClearKey asks before removing the saved key. A variable so tests
// can substitute the interactive prompt.
var confirmClearKey = func() (bool, error) {
	return promptConfirm("Remove the saved API key?", false)
}

func runKeysClear(cmd *cobra.Command, args []string) error {
	ok, err := confirmClearKey()
	if err != nil {
		return err
	}
	if !ok {
		printInfo("aborted")
		return nil
	}

	store, err := config.NewStore()
	if err != nil {
		return err
	}
	if err := store.ClearKey(); err != nil {
		return err
	}
	printSuccess("API key removed")
	return nil
}

func runKeysShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	switch {
	case settings.OpenAIKey != "":
		printSuccess(fmt.Sprintf("saved key configured (%s)", maskKey(settings.OpenAIKey)))
	case config.ResolveOpenAIKey(settings) != "":
		printInfo("no saved key; using OPENAI_API_KEY from the environment")
	default:
		printInfo("no key configured; forge runs in deterministic fallback mode")
	}
	return nil
}

// maskKey shows only the last four characters of a key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
