// Package walker provides sandbox-validated directory traversal.
//
// Both operations re-validate every discovered entry against the sandbox and
// silently drop entries that fail, so a single hostile symlink never aborts a
// traversal:
//   - BuildTree: recursive tree construction for directory_tree
//   - Search: pruned, case-insensitive name search for search_files
//
// The traversal root itself must already be validated by the caller; a bad
// root is the caller's hard error, a bad descendant is not.
package walker
