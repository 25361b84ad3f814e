package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Rejection reasons returned by Validate. All are wrapped with the offending
// path and matchable with errors.Is.
var (
	ErrOutsideRoots       = errors.New("path outside allowed directories")
	ErrSymlinkEscape      = errors.New("symlink target outside allowed directories")
	ErrParentOutsideRoots = errors.New("parent directory outside allowed directories")
	ErrParentMissing      = errors.New("parent directory does not exist")
)

// Sandbox holds the ordered set of canonical allowed roots. Read-only after
// construction; safe for concurrent use without locking.
type Sandbox struct {
	roots []string
}

// New builds a sandbox from the configured directories. Each entry is
// home-expanded, absolutized and symlink-resolved, and must name an existing
// directory.
func New(dirs []string) (*Sandbox, error) {
	if len(dirs) == 0 {
		return nil, errors.New("at least one allowed directory is required")
	}

	roots := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		expanded, err := ExpandHome(dir)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", dir, err)
		}

		abs, err := filepath.Abs(expanded)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", dir, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("accessing directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}

		// Roots are stored in canonical (symlink-free) form so both tiers of
		// the containment check compare against the same representation.
		canonical, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", dir, err)
		}

		roots = append(roots, canonical)
	}

	return &Sandbox{roots: roots}, nil
}

// Roots returns a copy of the allowed roots in configuration order.
func (s *Sandbox) Roots() []string {
	out := make([]string, len(s.roots))
	copy(out, s.roots)
	return out
}

// Validate canonicalizes requested and proves it resides under an allowed
// root. On success it returns the path every filesystem primitive should use:
// the symlink-resolved path for existing targets, or the literal path for a
// target that does not exist yet but whose parent resolves inside a root.
func (s *Sandbox) Validate(requested string) (string, error) {
	expanded, err := ExpandHome(requested)
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", requested, err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", requested, err)
	}
	literal := filepath.Clean(abs)

	if !s.contains(literal) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoots, literal)
	}

	real, err := filepath.EvalSymlinks(literal)
	if err == nil {
		if !s.contains(real) {
			return "", fmt.Errorf("%w: %s", ErrSymlinkEscape, literal)
		}
		return real, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("resolving %s: %w", literal, err)
	}

	// The target does not exist (e.g. a file about to be created): fall back
	// to proving the parent directory resolves inside a root.
	parent := filepath.Dir(literal)
	realParent, perr := filepath.EvalSymlinks(parent)
	if perr != nil {
		if errors.Is(perr, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrParentMissing, parent)
		}
		return "", fmt.Errorf("resolving %s: %w", parent, perr)
	}
	if !s.contains(realParent) {
		return "", fmt.Errorf("%w: %s", ErrParentOutsideRoots, parent)
	}

	return literal, nil
}

// contains reports whether path equals a root or lies under a root boundary.
// The boundary check (root + separator) keeps a root like /allowed from
// admitting a sibling such as /allowedother.
func (s *Sandbox) contains(path string) bool {
	for _, root := range s.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// ExpandHome substitutes the current user's home directory for a leading ~.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
