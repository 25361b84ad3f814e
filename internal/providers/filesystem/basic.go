package filesystem

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/wardfs/wardfs/internal/types"
)

// BasicOps handles file read operations
type BasicOps struct {
	*Ops
}

// GetTools returns file read tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.read",
			Name:        "Read File",
			Description: "Read the complete contents of a file as text",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.read_multiple",
			Name:        "Read Multiple Files",
			Description: "Read several files at once; individual failures are reported inline",
			Parameters: []types.Parameter{
				{Name: "paths", Type: "array", Description: "File paths", Required: true},
			},
			Returns: "string",
		},
	}
}

// Read reads one file's contents
func (b *BasicOps) Read(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	valid, err := b.Sandbox.Validate(path)
	if err != nil {
		return b.rejected("read", path, err)
	}

	data, err := os.ReadFile(valid)
	if err != nil {
		return Failure(fmt.Sprintf("read failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"content": string(data),
		"size":    len(data),
	})
}

// ReadMultiple reads a batch of files. Each file contributes a
// "path:\ncontent" block; a failed path contributes an inline error line
// instead of failing the batch. Blocks are separated by "---".
func (b *BasicOps) ReadMultiple(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	raw, ok := params["paths"]
	if !ok {
		return Failure("paths parameter required")
	}

	var paths []string
	switch v := raw.(type) {
	case []string:
		paths = v
	case []interface{}:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return Failure("paths must be an array of strings")
			}
			paths = append(paths, s)
		}
	default:
		return Failure("paths must be an array of strings")
	}
	if len(paths) == 0 {
		return Failure("paths parameter required")
	}

	blocks := make([]string, 0, len(paths))
	failed := 0
	for _, path := range paths {
		content, err := b.readOne(path)
		if err != nil {
			blocks = append(blocks, fmt.Sprintf("%s: Error - %v", path, err))
			failed++
			continue
		}
		blocks = append(blocks, fmt.Sprintf("%s:\n%s\n", path, content))
	}

	return Success(map[string]interface{}{
		"content": strings.Join(blocks, "\n---\n"),
		"count":   len(paths),
		"failed":  failed,
	})
}

func (b *BasicOps) readOne(path string) (string, error) {
	valid, err := b.Sandbox.Validate(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(valid)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
