// Package sandbox implements path containment for the WardFS server.
//
// A Sandbox is constructed once at startup from the administrator-supplied
// allowed directories and is immutable afterwards. Every filesystem operation
// exposed by the server must pass its path through Validate before touching
// the filesystem.
//
// Validation is two-tier: the normalized (literal) path must be contained in
// an allowed root, and its fully symlink-resolved (real) path must be
// contained as well. The second tier is what stops a symlink placed inside an
// allowed root from reaching outside it. Paths that do not exist yet are
// admitted when their parent directory resolves inside an allowed root, which
// keeps file creation inside the sandbox possible.
//
// Example Usage:
//
//	sb, err := sandbox.New([]string{"~/projects", "/srv/data"})
//	real, err := sb.Validate("/srv/data/report.txt")
//	if errors.Is(err, sandbox.ErrOutsideRoots) { ... }
package sandbox
