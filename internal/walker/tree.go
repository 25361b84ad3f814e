package walker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wardfs/wardfs/internal/sandbox"
)

// Node is one entry of a directory tree. Directories always carry a children
// slice (possibly empty); files never do.
type Node struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Children *[]Node `json:"children,omitempty"`
}

// Node types.
const (
	TypeFile      = "file"
	TypeDirectory = "directory"
)

// BuildTree lists root recursively, validating every entry against sb.
// Entries that fail validation are omitted from the result. Children appear
// in directory-listing order (os.ReadDir: lexical), which is deterministic
// for a given snapshot but not part of the contract.
//
// Each directory is expanded at most once by real path: a symlink cycle
// (loop -> .) would otherwise recurse without bound, and a contained cycle
// passes validation.
func BuildTree(sb *sandbox.Sandbox, root string) ([]Node, error) {
	return buildTree(sb, root, map[string]bool{root: true})
}

func buildTree(sb *sandbox.Sandbox, root string, visited map[string]bool) ([]Node, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(root, entry.Name())

		real, err := sb.Validate(full)
		if err != nil {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// A validated symlink is classified by its target; a broken one
			// (parent-contained but dangling) lists as a file.
			if info, err := os.Stat(real); err == nil {
				isDir = info.IsDir()
			}
		}

		node := Node{Name: entry.Name(), Type: TypeFile}
		if isDir {
			if visited[real] {
				continue
			}
			visited[real] = true
			children, err := buildTree(sb, real, visited)
			if err != nil {
				return nil, err
			}
			node.Type = TypeDirectory
			node.Children = &children
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}
