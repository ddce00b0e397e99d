package cli

import (
	"fmt"
	"os"

	"github.com/repoforge/forge/internal/app"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("✓ %s\n", msg)
	} else {
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, msg)
	}
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("⚠ %s\n", msg)
	} else {
		fmt.Printf("%s⚠%s %s\n", colorYellow, colorReset, msg)
	}
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	if globalNoColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	}
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("→ %s\n", msg)
	} else {
		fmt.Printf("%s→%s %s\n", colorBlue, colorReset, msg)
	}
}

// printLog dumps the generation activity log when --verbose is set.
func printLog(log *app.GenerationLog) {
	if !globalVerbose || globalQuiet {
		return
	}
	entries := log.Entries()
	if len(entries) == 0 {
		return
	}
	printInfo("")
	printInfo("Activity log:")
	for _, e := range entries {
		printDim(fmt.Sprintf("[%s] %s %s", e.Time.Format("15:04:05"), e.Severity, e.Message))
	}
}

// printDim prints a secondary detail line
func printDim(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("  %s\n", msg)
	} else {
		fmt.Printf("  %s%s%s\n", colorGray, msg, colorReset)
	}
}
