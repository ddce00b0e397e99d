package config

import (
	"fmt"
	"regexp"
	"strings"
)

// projectNamePattern matches names usable both as an npm package name and a
// GitHub repository name.
var projectNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9._-]*[a-z0-9])?$`)

// knownCIProviders are the accepted CIProvider values.
var knownCIProviders = map[string]bool{
	"github": true,
	"gitlab": true,
	"none":   true,
}

// ValidationError reports an invalid RepoConfig field.
type ValidationError struct {
	// Field is the offending field name.
	Field string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// Validate checks a RepoConfig for values the generators and adapters
// cannot work with. It returns the first problem found.
func Validate(cfg RepoConfig) error {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if len(name) > 100 {
		return &ValidationError{Field: "name", Message: "must be 100 characters or fewer"}
	}
	if !projectNamePattern.MatchString(name) {
		return &ValidationError{Field: "name", Message: "must be lowercase letters, digits, '.', '_' or '-', starting and ending with a letter or digit"}
	}

	if cfg.CIProvider != "" && !knownCIProviders[cfg.CIProvider] {
		return &ValidationError{Field: "ci_provider", Message: fmt.Sprintf("unknown provider %q (expected github, gitlab or none)", cfg.CIProvider)}
	}

	return nil
}
