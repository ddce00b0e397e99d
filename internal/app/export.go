package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/repoforge/forge/internal/archive"
	"github.com/repoforge/forge/internal/debug"
	"github.com/repoforge/forge/internal/scaffold/tree"
)

// ExportZip writes the tree to a zip file at path. Packaging failures are
// warnings at the flow level: the caller logs them and continues.
func ExportZip(path string, nodes []*tree.Node, log *GenerationLog) error {
	f, err := os.Create(path)
	if err != nil {
		log.Warnf("could not create archive %s: %v", path, err)
		return err
	}
	defer f.Close()

	if err := archive.WriteZip(f, nodes); err != nil {
		log.Warnf("archive assembly failed: %v", err)
		return err
	}

	log.Successf("exported %s", path)
	return nil
}

// WriteResult reports what a tree write did on disk.
type WriteResult struct {
	// FilesCreated is the number of new files written.
	FilesCreated int
	// FilesSkipped is the number of files left alone (already existed).
	FilesSkipped int
	// FilesOverwritten is the number of existing files replaced.
	FilesOverwritten int
}

// WriteTree materializes the tree under outputDir. Existing files are
// skipped unless overwrite is set. Files are written atomically via a
// temporary file and rename.
func WriteTree(ctx context.Context, outputDir string, nodes []*tree.Node, overwrite bool, log *GenerationLog) (*WriteResult, error) {
	if outputDir == "" {
		return nil, NewInputError("output dir", "must not be empty")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	result := &WriteResult{}
	err := tree.Walk(nodes, func(path string, n *tree.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(outputDir, filepath.FromSlash(path))
		if n.Kind == tree.KindFolder {
			return os.MkdirAll(target, 0755)
		}

		_, statErr := os.Stat(target)
		exists := statErr == nil
		if exists && !overwrite {
			debug.Debug("[app] skipping existing file: %s", target)
			result.FilesSkipped++
			return nil
		}

		if err := writeFileAtomic(target, []byte(n.Content)); err != nil {
			return err
		}
		if exists {
			result.FilesOverwritten++
		} else {
			result.FilesCreated++
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	log.Successf("wrote %d files to %s", result.FilesCreated+result.FilesOverwritten, outputDir)
	return result, nil
}

// writeFileAtomic writes via a temporary sibling and rename so a failed
// write never leaves a truncated file.
func writeFileAtomic(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
