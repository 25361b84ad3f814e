package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/wardfs/wardfs/internal/types"
	"github.com/wardfs/wardfs/internal/walker"
)

// SearchOps handles recursive name search and glob matching
type SearchOps struct {
	*Ops
}

// GetTools returns search tool definitions
func (s *SearchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.search",
			Name:        "Search Files",
			Description: "Recursively find entries whose name contains a pattern (case-insensitive)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory to search under", Required: true},
				{Name: "pattern", Type: "string", Description: "Substring to match against entry names", Required: true},
				{Name: "exclude_patterns", Type: "array", Description: "Relative path prefixes to prune", Required: false},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.glob",
			Name:        "Glob Files",
			Description: "Match files under a directory with a doublestar glob pattern",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory to match under", Required: true},
				{Name: "pattern", Type: "string", Description: "Glob pattern, e.g. **/*.go", Required: true},
			},
			Returns: "array",
		},
	}
}

// Search walks a directory collecting entries whose name contains pattern.
func (s *SearchOps) Search(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}

	var excludes []string
	if raw, ok := params["exclude_patterns"]; ok && raw != nil {
		switch v := raw.(type) {
		case []string:
			excludes = v
		case []interface{}:
			for _, item := range v {
				str, ok := item.(string)
				if !ok {
					return Failure("exclude_patterns must be an array of strings")
				}
				excludes = append(excludes, str)
			}
		default:
			return Failure("exclude_patterns must be an array of strings")
		}
	}

	valid, err := s.Sandbox.Validate(path)
	if err != nil {
		return s.rejected("search", path, err)
	}

	matches, err := walker.Search(ctx, s.Sandbox, valid, pattern, excludes)
	if err != nil {
		return Failure(fmt.Sprintf("search failed: %v", err))
	}

	content := "No matches found"
	if len(matches) > 0 {
		content = strings.Join(matches, "\n")
	}

	return Success(map[string]interface{}{
		"path":    path,
		"pattern": pattern,
		"content": content,
		"count":   len(matches),
	})
}

// Glob matches files under a validated directory with a doublestar pattern.
// Matches are re-validated so a pattern cannot surface entries an escaping
// symlink would reach.
func (s *SearchOps) Glob(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}

	valid, err := s.Sandbox.Validate(path)
	if err != nil {
		return s.rejected("glob", path, err)
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(valid, pattern))
	if err != nil {
		return Failure(fmt.Sprintf("invalid glob pattern: %v", err))
	}

	allowed := make([]string, 0, len(matches))
	for _, match := range matches {
		if _, verr := s.Sandbox.Validate(match); verr != nil {
			continue
		}
		allowed = append(allowed, match)
	}
	sort.Strings(allowed)

	return Success(map[string]interface{}{
		"path":    path,
		"pattern": pattern,
		"matches": allowed,
		"count":   len(allowed),
	})
}
