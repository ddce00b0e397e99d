package main

import (
	"github.com/repoforge/forge/internal/cli"
	ver "github.com/repoforge/forge/internal/version"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version info from build-time variables
	ver.Version = version
	ver.GitCommit = gitCommit
	ver.BuildDate = buildDate

	// Execute the root command
	cli.Execute()
}
