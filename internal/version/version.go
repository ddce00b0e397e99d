// Package version holds build-time version metadata, injected via ldflags.
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// GitCommit is the commit the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
