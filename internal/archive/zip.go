// Package archive packages a generated project tree into a zip file whose
// internal layout mirrors the tree exactly.
package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/repoforge/forge/internal/scaffold/tree"
)

// WriteZip writes the node sequence to w as a zip archive. Folder nesting
// is preserved through entry paths, file content is written verbatim, and
// empty content becomes an empty entry, never an omitted one. Entries
// appear in tree order.
func WriteZip(w io.Writer, nodes []*tree.Node) error {
	zw := zip.NewWriter(w)

	err := tree.Walk(nodes, func(path string, n *tree.Node) error {
		switch n.Kind {
		case tree.KindFolder:
			// Explicit directory entries keep empty folders representable.
			if _, err := zw.Create(path + "/"); err != nil {
				return NewWriteError(path, err)
			}
		case tree.KindFile:
			f, err := zw.Create(path)
			if err != nil {
				return NewWriteError(path, err)
			}
			if _, err := f.Write([]byte(n.Content)); err != nil {
				return NewWriteError(path, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return NewWriteError("", err)
	}
	return nil
}

// WriteError reports a failure while assembling the archive.
type WriteError struct {
	// Path is the entry being written, or empty for the archive itself.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("zip archive: %v", e.Cause)
	}
	return fmt.Sprintf("zip archive: entry %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a new WriteError.
func NewWriteError(path string, cause error) *WriteError {
	return &WriteError{Path: path, Cause: cause}
}
