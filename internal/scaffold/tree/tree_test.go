package tree

import (
	"errors"
	"reflect"
	"testing"
)

// TestFromPaths_Empty tests that an empty mapping yields an empty sequence.
func TestFromPaths_Empty(t *testing.T) {
	nodes, err := FromPaths(map[string]string{})
	if err != nil {
		t.Fatalf("FromPaths(empty) returned error: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("FromPaths(empty) = %d nodes, want 0", len(nodes))
	}
}

// TestFromPaths_RootFile tests that a single-segment path lands at root.
func TestFromPaths_RootFile(t *testing.T) {
	nodes, err := FromPaths(map[string]string{"README.md": "# hi"})
	if err != nil {
		t.Fatalf("FromPaths returned error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d root nodes, want 1", len(nodes))
	}
	if nodes[0].Kind != KindFile || nodes[0].Name != "README.md" || nodes[0].Content != "# hi" {
		t.Errorf("unexpected root node: %+v", nodes[0])
	}
}

// TestFromPaths_SharedFolders tests folder deduplication across paths.
func TestFromPaths_SharedFolders(t *testing.T) {
	nodes, err := FromPaths(map[string]string{
		"src/index.ts":      "index",
		"src/app.ts":        "app",
		"src/lib/util.ts":   "util",
		"src/lib/helper.ts": "helper",
		"package.json":      "{}",
	})
	if err != nil {
		t.Fatalf("FromPaths returned error: %v", err)
	}

	// Exactly two root entries: package.json and src.
	if len(nodes) != 2 {
		t.Fatalf("got %d root nodes, want 2", len(nodes))
	}

	var src *Node
	for _, n := range nodes {
		if n.Name == "src" {
			src = n
		}
	}
	if src == nil || src.Kind != KindFolder {
		t.Fatalf("src folder not found among roots")
	}

	// One shared src folder with three children (app.ts, index.ts, lib).
	if len(src.Children) != 3 {
		t.Errorf("src has %d children, want 3", len(src.Children))
	}
	lib := src.Child("lib")
	if lib == nil || lib.Kind != KindFolder {
		t.Fatalf("src/lib folder not found")
	}
	if len(lib.Children) != 2 {
		t.Errorf("src/lib has %d children, want 2", len(lib.Children))
	}
}

// TestFromPaths_UniqueNames tests that sibling names stay unique.
func TestFromPaths_UniqueNames(t *testing.T) {
	nodes, err := FromPaths(map[string]string{
		"a/b/one.txt": "1",
		"a/b/two.txt": "2",
		"a/c/one.txt": "3",
	})
	if err != nil {
		t.Fatalf("FromPaths returned error: %v", err)
	}
	a := nodes[0]
	seen := map[string]bool{}
	for _, c := range a.Children {
		if seen[c.Name] {
			t.Errorf("duplicate child name %q under a/", c.Name)
		}
		seen[c.Name] = true
	}
}

// TestFromPaths_Conflict tests the file/folder conflict resolution.
func TestFromPaths_Conflict(t *testing.T) {
	tests := []struct {
		name  string
		paths map[string]string
	}{
		{
			name: "file used as folder",
			paths: map[string]string{
				"src":          "content",
				"src/index.ts": "index",
			},
		},
		{
			name: "folder used as file",
			paths: map[string]string{
				"src/index.ts": "index",
				// sorts after src/index.ts, so the folder exists first
				"srk": "x", "src/lib/a.ts": "a", "src/lib": "clash",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPaths(tt.paths)
			if err == nil {
				t.Fatalf("FromPaths(%v) succeeded, want conflict error", tt.paths)
			}
			var conflict *ConflictError
			if !errors.As(err, &conflict) {
				t.Errorf("error is %T, want *ConflictError", err)
			}
		})
	}
}

// TestRoundTrip tests the flatten-after-build law for conflict-free maps.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		paths map[string]string
	}{
		{
			name:  "single root file",
			paths: map[string]string{"main.go": "package main"},
		},
		{
			name: "nested tree",
			paths: map[string]string{
				"package.json":                  "{}",
				"README.md":                     "# demo",
				"src/index.tsx":                 "render()",
				"src/components/App.tsx":        "app",
				"src/components/Button.tsx":     "button",
				".github/workflows/ci.yml":      "on: push",
				".github/ISSUE_TEMPLATE/bug.md": "bug",
			},
		},
		{
			name:  "empty content preserved",
			paths: map[string]string{"empty.txt": "", "dir/also-empty": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := FromPaths(tt.paths)
			if err != nil {
				t.Fatalf("FromPaths returned error: %v", err)
			}
			got := Flatten(nodes)
			if !reflect.DeepEqual(got, tt.paths) {
				t.Errorf("round trip mismatch:\n got %v\nwant %v", got, tt.paths)
			}
		})
	}
}

// TestFromPaths_Deterministic tests stable ordering for identical input.
func TestFromPaths_Deterministic(t *testing.T) {
	paths := map[string]string{
		"b.txt":   "b",
		"a.txt":   "a",
		"c/d.txt": "d",
	}
	first, err := FromPaths(paths)
	if err != nil {
		t.Fatalf("FromPaths returned error: %v", err)
	}
	second, err := FromPaths(paths)
	if err != nil {
		t.Fatalf("FromPaths returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two conversions of the same map differ")
	}
}

// TestWalk_Order tests depth-first traversal in sibling order.
func TestWalk_Order(t *testing.T) {
	nodes := []*Node{
		Folder("src",
			File("index.ts", ""),
			Folder("lib", File("util.ts", "")),
		),
		File("README.md", ""),
	}

	var visited []string
	err := Walk(nodes, func(path string, n *Node) error {
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	want := []string{"src", "src/index.ts", "src/lib", "src/lib/util.ts", "README.md"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("Walk order = %v, want %v", visited, want)
	}
}

// TestCountFiles tests file leaf counting.
func TestCountFiles(t *testing.T) {
	nodes := []*Node{
		Folder("src", File("a", ""), Folder("deep", File("b", ""))),
		File("c", ""),
	}
	if got := CountFiles(nodes); got != 3 {
		t.Errorf("CountFiles = %d, want 3", got)
	}
}
