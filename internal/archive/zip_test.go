package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/repoforge/forge/internal/scaffold/tree"
)

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reading archive back: %v", err)
	}
	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		out[f.Name] = string(content)
	}
	return out
}

// TestWriteZip_MirrorsTree tests that the archive layout matches the tree.
func TestWriteZip_MirrorsTree(t *testing.T) {
	nodes := []*tree.Node{
		tree.File("package.json", `{"name":"demo"}`),
		tree.Folder("src",
			tree.File("index.tsx", "render();"),
			tree.Folder("components",
				tree.File("App.tsx", "export const App = () => null;"),
			),
		),
	}

	var buf bytes.Buffer
	if err := WriteZip(&buf, nodes); err != nil {
		t.Fatalf("WriteZip returned error: %v", err)
	}

	entries := readArchive(t, buf.Bytes())

	wantFiles := map[string]string{
		"package.json":           `{"name":"demo"}`,
		"src/index.tsx":          "render();",
		"src/components/App.tsx": "export const App = () => null;",
	}
	for path, content := range wantFiles {
		if got, ok := entries[path]; !ok {
			t.Errorf("archive missing %q", path)
		} else if got != content {
			t.Errorf("content of %q = %q, want %q", path, got, content)
		}
	}

	for _, dir := range []string{"src/", "src/components/"} {
		if _, ok := entries[dir]; !ok {
			t.Errorf("archive missing directory entry %q", dir)
		}
	}
}

// TestWriteZip_EmptyContent tests that empty files are written, not
// omitted.
func TestWriteZip_EmptyContent(t *testing.T) {
	nodes := []*tree.Node{
		tree.File(".gitkeep", ""),
		tree.Folder("empty"),
	}

	var buf bytes.Buffer
	if err := WriteZip(&buf, nodes); err != nil {
		t.Fatalf("WriteZip returned error: %v", err)
	}

	entries := readArchive(t, buf.Bytes())
	content, ok := entries[".gitkeep"]
	if !ok {
		t.Fatalf("empty file omitted from archive")
	}
	if content != "" {
		t.Errorf("empty file carries content %q", content)
	}
	if _, ok := entries["empty/"]; !ok {
		t.Errorf("empty folder omitted from archive")
	}
}

// TestWriteZip_EmptyTree tests archiving nothing.
func TestWriteZip_EmptyTree(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, nil); err != nil {
		t.Fatalf("WriteZip of empty tree returned error: %v", err)
	}
	if entries := readArchive(t, buf.Bytes()); len(entries) != 0 {
		t.Errorf("empty tree produced entries: %v", entries)
	}
}
