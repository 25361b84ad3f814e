// Package filesystem provides sandboxed file access tools for WardFS.
//
// This package is organized into specialized modules:
//   - basic: file reads (single and batched)
//   - directory: directory listing and recursive tree construction
//   - search: name search with exclusion pruning, glob matching
//   - metadata: file statistics and content type detection
//
// Every operation validates its path parameters through the sandbox before
// any filesystem primitive runs; a rejected path becomes a structured failure
// result, never a crash. Traversal operations additionally re-validate each
// discovered entry and drop the ones that fail.
//
// Example Usage:
//
//	provider := filesystem.NewProvider(sb, logger)
//	result, err := provider.Execute(ctx, "filesystem.read", params, appCtx)
package filesystem
