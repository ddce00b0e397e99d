package tree

import "fmt"

// ConflictError reports a path that requires an entry to be both a file and
// a folder.
type ConflictError struct {
	// Path is the file path whose insertion failed.
	Path string
	// Conflict is the existing entry path it collided with.
	Conflict string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("path conflict: %q requires %q to be both a file and a folder", e.Path, e.Conflict)
}

// NewConflictError creates a new ConflictError.
func NewConflictError(path, conflict string) *ConflictError {
	return &ConflictError{Path: path, Conflict: conflict}
}
