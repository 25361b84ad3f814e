package filesystem

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/wardfs/wardfs/internal/types"
)

// MetadataOps handles file statistics and content type detection
type MetadataOps struct {
	*Ops
}

// GetTools returns metadata tool definitions
func (m *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.info",
			Name:        "File Info",
			Description: "Report size, timestamps, kind and permissions of a file or directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.mime",
			Name:        "Detect MIME Type",
			Description: "Detect the content type of a file from its bytes",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
	}
}

// Info stats a path and renders the result as "key: value" lines.
func (m *MetadataOps) Info(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	valid, err := m.Sandbox.Validate(path)
	if err != nil {
		return m.rejected("info", path, err)
	}

	info, err := statPath(valid)
	if err != nil {
		return Failure(fmt.Sprintf("stat failed: %v", err))
	}

	lines := []string{
		fmt.Sprintf("size: %d", info.Size),
		fmt.Sprintf("created: %s", info.Created.Format(time.RFC3339)),
		fmt.Sprintf("modified: %s", info.Modified.Format(time.RFC3339)),
		fmt.Sprintf("accessed: %s", info.Accessed.Format(time.RFC3339)),
		fmt.Sprintf("isDirectory: %t", info.IsDirectory),
		fmt.Sprintf("isFile: %t", info.IsFile),
		fmt.Sprintf("permissions: %s", info.Permissions),
	}

	return Success(map[string]interface{}{
		"path":    path,
		"content": strings.Join(lines, "\n"),
		"info":    info,
	})
}

// MIME detects a file's content type from its leading bytes.
func (m *MetadataOps) MIME(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	valid, err := m.Sandbox.Validate(path)
	if err != nil {
		return m.rejected("mime", path, err)
	}

	detected, err := mimetype.DetectFile(valid)
	if err != nil {
		return Failure(fmt.Sprintf("detect failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":      path,
		"mime_type": detected.String(),
		"extension": detected.Extension(),
	})
}
