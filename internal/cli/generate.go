package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repoforge/forge/internal/app"
	"github.com/repoforge/forge/internal/config"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a project scaffold from a code snippet",
	Long: `Generate a complete project scaffold from a code snippet, a file, or
a fetched GitHub repository.

The snippet is classified first; the detection result seeds the generation
options, which the flags then override. With an API key configured the tree
is AI-generated; otherwise deterministic templates produce it. Either way a
valid scaffold always comes out.

Examples:
  forge generate snippet.tsx --name demo-app --out ./demo-app
  forge generate snippet.py --docker --zip demo.zip
  cat main.ts | forge generate --name api --ci gitlab`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

// Generate command flags
var (
	genRepoURL     string
	genGitHubToken string
	genName        string
	genDescription string
	genFramework   string
	genLicense     string
	genPkgManager  string
	genCIProvider  string
	genTypeScript  bool
	genDocker      bool
	genNoTests     bool
	genNoLinting   bool
	genOutDir      string
	genZipPath     string
	genForce       bool
)

func init() {
	generateCmd.Flags().StringVar(&genRepoURL, "repo", "", "Generate from a GitHub repository summary instead of a file")
	generateCmd.Flags().StringVar(&genGitHubToken, "token", "", "GitHub token for private repository summaries")
	generateCmd.Flags().StringVarP(&genName, "name", "n", "", "Project name (default: detected defaults)")
	generateCmd.Flags().StringVarP(&genDescription, "description", "d", "", "Project description")
	generateCmd.Flags().StringVar(&genFramework, "framework", "", "Override the detected framework")
	generateCmd.Flags().StringVar(&genLicense, "license", "", "License identifier (e.g. MIT)")
	generateCmd.Flags().StringVar(&genPkgManager, "package-manager", "", "Package manager (npm, yarn, pnpm)")
	generateCmd.Flags().StringVar(&genCIProvider, "ci", "", "CI provider (github, gitlab, none)")
	generateCmd.Flags().BoolVar(&genTypeScript, "ts", false, "Force TypeScript entry files")
	generateCmd.Flags().BoolVar(&genDocker, "docker", false, "Include a Dockerfile")
	generateCmd.Flags().BoolVar(&genNoTests, "no-tests", false, "Skip test tooling and placeholder tests")
	generateCmd.Flags().BoolVar(&genNoLinting, "no-linting", false, "Skip lint tooling")
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", "", "Write the scaffold to this directory")
	generateCmd.Flags().StringVar(&genZipPath, "zip", "", "Export the scaffold as a zip archive at this path")
	generateCmd.Flags().BoolVarP(&genForce, "force", "f", false, "Overwrite existing files in the output directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rawInput, fromRepo, err := readRawInput(ctx, args, genRepoURL, genGitHubToken)
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
	printProgress(fmt.Sprintf("detected %s / %s (%s)",
		detected.Detection.Language, detected.Detection.Framework, detected.Source))

	cfg := buildGenerateConfig(settings, detected.Detection, cmd)

	result, err := app.Generate(ctx, app.GenerateOptions{
		Config:   cfg,
		RawInput: rawInput,
		Client:   client,
		Log:      log,
	})
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("scaffold ready: %d files (%s)", result.FileCount, result.Source))

	if genZipPath != "" {
		if err := app.ExportZip(genZipPath, result.Nodes, log); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("exported %s", genZipPath))
	}

	if genOutDir != "" {
		written, err := app.WriteTree(ctx, genOutDir, result.Nodes, genForce, log)
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("wrote %d files to %s",
			written.FilesCreated+written.FilesOverwritten, genOutDir))
		if written.FilesSkipped > 0 {
			printWarning(fmt.Sprintf("skipped %d existing files (use --force to overwrite)", written.FilesSkipped))
		}
	}

	if genZipPath == "" && genOutDir == "" {
		printTreeSummary(result)
	}
	printLog(log)
	return nil
}

// buildGenerateConfig assembles the generation configuration: stock defaults,
// then persisted defaults, then the one-time detection merge, then explicit
// flag overrides (flags win over everything).
func buildGenerateConfig(settings config.Settings, det config.DetectionResult, cmd *cobra.Command) config.RepoConfig {
	cfg := config.DefaultRepoConfig()
	config.ApplyDefaults(&cfg, settings.Defaults)
	config.MergeDetection(&cfg, det)

	if genName != "" {
		cfg.Name = genName
	}
	if genDescription != "" {
		cfg.Description = genDescription
	}
	if genFramework != "" {
		cfg.Framework = genFramework
	}
	if genLicense != "" {
		cfg.License = genLicense
	}
	if genPkgManager != "" {
		cfg.PackageManager = genPkgManager
	}
	if genCIProvider != "" {
		cfg.CIProvider = genCIProvider
	}
	if cmd.Flags().Changed("ts") {
		cfg.UseTypeScript = genTypeScript
	}
	if genDocker {
		cfg.IncludeDocker = true
	}
	if genNoTests {
		cfg.IncludeTests = false
	}
	if genNoLinting {
		cfg.IncludeLinting = false
	}
	return cfg
}

// printTreeSummary lists the generated paths when no output target is given.
func printTreeSummary(result *app.GenerateResult) {
	printInfo("")
	printInfo("Generated tree (use --out or --zip to write it):")
	_ = tree.Walk(result.Nodes, func(path string, n *tree.Node) error {
		if n.Kind == tree.KindFolder {
			printDim(path + "/")
		} else {
			printDim(fmt.Sprintf("%s (%d bytes)", path, len(n.Content)))
		}
		return nil
	})
}
