package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/wardfs/wardfs/internal/types"
	"github.com/wardfs/wardfs/internal/walker"
)

// DirectoryOps handles directory listing and tree construction
type DirectoryOps struct {
	*Ops
}

// GetTools returns directory tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.list",
			Name:        "List Directory",
			Description: "List the immediate entries of a directory with [FILE]/[DIR] markers",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.tree",
			Name:        "Directory Tree",
			Description: "Build a recursive JSON tree of a directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "string",
		},
	}
}

// List returns one line per directory entry, prefixed with its kind
func (d *DirectoryOps) List(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	valid, err := d.Sandbox.Validate(path)
	if err != nil {
		return d.rejected("list", path, err)
	}

	entries, err := os.ReadDir(valid)
	if err != nil {
		return Failure(fmt.Sprintf("list failed: %v", err))
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		marker := "[FILE]"
		if entry.IsDir() {
			marker = "[DIR]"
		}
		lines = append(lines, fmt.Sprintf("%s %s", marker, entry.Name()))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"content": strings.Join(lines, "\n"),
		"count":   len(entries),
	})
}

// Tree builds the recursive structure of a directory and renders it as
// indented JSON. Entries that fail validation (escaping symlinks) are omitted.
func (d *DirectoryOps) Tree(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	valid, err := d.Sandbox.Validate(path)
	if err != nil {
		return d.rejected("tree", path, err)
	}

	nodes, err := walker.BuildTree(d.Sandbox, valid)
	if err != nil {
		return Failure(fmt.Sprintf("tree failed: %v", err))
	}

	rendered, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return Failure(fmt.Sprintf("tree encoding failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"content": string(rendered),
	})
}
