// Package tree defines the generated project's directory representation and
// the conversion between flat path maps and hierarchical node trees.
package tree

import (
	"sort"
	"strings"
)

// NodeKind discriminates file nodes from folder nodes.
type NodeKind int

const (
	// KindFile is a leaf node carrying content.
	KindFile NodeKind = iota
	// KindFolder is an interior node carrying children.
	KindFolder
)

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// Node is a single entry in a generated project tree. It is a tagged variant:
// a file (Kind == KindFile) has Content and an optional Language hint, a
// folder (Kind == KindFolder) has Children. Within one folder's children,
// names are unique and order is insertion order; that order determines both
// rendering and packaging order.
type Node struct {
	// Kind discriminates file from folder.
	Kind NodeKind
	// Name is the entry name within its parent (no path separators).
	Name string
	// Content is the file content. Only meaningful for files. Empty content
	// is valid and must be preserved as an empty file.
	Content string
	// Language is an optional syntax hint for files (e.g. "typescript").
	Language string
	// Children are the ordered child nodes. Only meaningful for folders.
	Children []*Node
}

// File creates a file node.
func File(name, content string) *Node {
	return &Node{Kind: KindFile, Name: name, Content: content}
}

// FileWithLanguage creates a file node with a syntax hint.
func FileWithLanguage(name, content, language string) *Node {
	return &Node{Kind: KindFile, Name: name, Content: content, Language: language}
}

// Folder creates a folder node with the given children.
func Folder(name string, children ...*Node) *Node {
	return &Node{Kind: KindFolder, Name: name, Children: children}
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FromPaths converts a mapping of slash-delimited file paths to content
// strings into an ordered sequence of root-level nodes. Folder nodes are
// shared across paths with a common prefix, so two files in the same
// directory never create duplicate folders.
//
// Map iteration order is not deterministic, so paths are visited in sorted
// order; the resulting sibling order is therefore lexicographic and stable
// for a given input.
//
// A path that uses an existing file node as a directory prefix (or names a
// file where a folder already exists) is a conflict and yields a
// *ConflictError. Silent overwriting is never performed.
func FromPaths(paths map[string]string) ([]*Node, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	// Synthetic root; its children become the result.
	root := Folder("")
	// Path-keyed folder index. Lookup by prefix and lookup by name within
	// siblings must resolve to the same node for any given path prefix.
	folders := map[string]*Node{"": root}

	for _, path := range sorted {
		segments := strings.Split(path, "/")
		parent := root
		prefix := ""
		for _, seg := range segments[:len(segments)-1] {
			if prefix == "" {
				prefix = seg
			} else {
				prefix = prefix + "/" + seg
			}
			if existing, ok := folders[prefix]; ok {
				parent = existing
				continue
			}
			if clash := parent.Child(seg); clash != nil {
				// A file already occupies this name; the path would need it
				// to be a folder.
				return nil, NewConflictError(path, prefix)
			}
			folder := Folder(seg)
			parent.Children = append(parent.Children, folder)
			folders[prefix] = folder
			parent = folder
		}

		name := segments[len(segments)-1]
		if clash := parent.Child(name); clash != nil {
			// Either a folder already occupies the file's name, or the same
			// file path appeared twice (impossible from a map).
			full := name
			if prefix != "" {
				full = prefix + "/" + name
			}
			return nil, NewConflictError(path, full)
		}
		parent.Children = append(parent.Children, File(name, paths[path]))
	}

	return root.Children, nil
}

// Flatten converts a node sequence back into a flat path-to-content map.
// Folder nesting is encoded as slash-delimited prefixes. Flatten is the
// inverse of FromPaths for conflict-free inputs.
func Flatten(nodes []*Node) map[string]string {
	out := make(map[string]string)
	flattenInto(out, "", nodes)
	return out
}

func flattenInto(out map[string]string, prefix string, nodes []*Node) {
	for _, n := range nodes {
		path := n.Name
		if prefix != "" {
			path = prefix + "/" + n.Name
		}
		switch n.Kind {
		case KindFile:
			out[path] = n.Content
		case KindFolder:
			flattenInto(out, path, n.Children)
		}
	}
}

// Walk visits every node depth-first in sibling order, calling fn with the
// node's full slash-delimited path. Returning an error stops the walk.
func Walk(nodes []*Node, fn func(path string, node *Node) error) error {
	return walk(nodes, "", fn)
}

func walk(nodes []*Node, prefix string, fn func(string, *Node) error) error {
	for _, n := range nodes {
		path := n.Name
		if prefix != "" {
			path = prefix + "/" + n.Name
		}
		if err := fn(path, n); err != nil {
			return err
		}
		if n.Kind == KindFolder {
			if err := walk(n.Children, path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// CountFiles returns the number of file leaves in the tree.
func CountFiles(nodes []*Node) int {
	count := 0
	for _, n := range nodes {
		switch n.Kind {
		case KindFile:
			count++
		case KindFolder:
			count += CountFiles(n.Children)
		}
	}
	return count
}
