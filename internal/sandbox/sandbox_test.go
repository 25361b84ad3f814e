package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonicalTempDir returns a symlink-free temp directory; on some platforms
// t.TempDir lives under a symlinked location (e.g. /tmp).
func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewRequiresDirectories(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	root := canonicalTempDir(t)
	_, err := New([]string{filepath.Join(root, "does-not-exist")})
	assert.Error(t, err)
}

func TestNewRejectsFileArgument(t *testing.T) {
	root := canonicalTempDir(t)
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "x")

	_, err := New([]string{file})
	assert.ErrorContains(t, err, "not a directory")
}

func TestNewCanonicalizesRoots(t *testing.T) {
	root := canonicalTempDir(t)
	link := filepath.Join(canonicalTempDir(t), "alias")
	require.NoError(t, os.Symlink(root, link))

	sb, err := New([]string{link})
	require.NoError(t, err)
	assert.Equal(t, []string{root}, sb.Roots())
}

func TestValidateInsideRoot(t *testing.T) {
	root := canonicalTempDir(t)
	file := filepath.Join(root, "a.txt")
	writeFile(t, file, "hi")

	sb, err := New([]string{root})
	require.NoError(t, err)

	got, err := sb.Validate(file)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	// The root itself is contained.
	got, err = sb.Validate(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestValidateOutsideRoot(t *testing.T) {
	root := canonicalTempDir(t)
	sb, err := New([]string{root})
	require.NoError(t, err)

	_, err = sb.Validate("/etc/passwd")
	assert.ErrorIs(t, err, ErrOutsideRoots)
}

func TestValidateRejectsSiblingWithRootPrefix(t *testing.T) {
	parent := canonicalTempDir(t)
	root := filepath.Join(parent, "allowed")
	sibling := filepath.Join(parent, "allowedother")
	require.NoError(t, os.Mkdir(root, 0o755))
	require.NoError(t, os.Mkdir(sibling, 0o755))
	writeFile(t, filepath.Join(sibling, "secret.txt"), "x")

	sb, err := New([]string{root})
	require.NoError(t, err)

	_, err = sb.Validate(filepath.Join(sibling, "secret.txt"))
	assert.ErrorIs(t, err, ErrOutsideRoots)
}

func TestValidateCollapsesDotDot(t *testing.T) {
	root := canonicalTempDir(t)
	sb, err := New([]string{root})
	require.NoError(t, err)

	_, err = sb.Validate(filepath.Join(root, "sub", "..", "..", "escape.txt"))
	assert.ErrorIs(t, err, ErrOutsideRoots)
}

func TestValidateSymlinkEscape(t *testing.T) {
	root := canonicalTempDir(t)
	outside := canonicalTempDir(t)
	writeFile(t, filepath.Join(outside, "target.txt"), "x")

	link := filepath.Join(root, "link.txt")
	require.NoError(t, os.Symlink(filepath.Join(outside, "target.txt"), link))

	sb, err := New([]string{root})
	require.NoError(t, err)

	_, err = sb.Validate(link)
	assert.ErrorIs(t, err, ErrSymlinkEscape)
}

func TestValidateSymlinkInsideRoot(t *testing.T) {
	root := canonicalTempDir(t)
	target := filepath.Join(root, "real.txt")
	writeFile(t, target, "x")

	link := filepath.Join(root, "alias.txt")
	require.NoError(t, os.Symlink(target, link))

	sb, err := New([]string{root})
	require.NoError(t, err)

	got, err := sb.Validate(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestValidateNewFileWithContainedParent(t *testing.T) {
	root := canonicalTempDir(t)
	sb, err := New([]string{root})
	require.NoError(t, err)

	path := filepath.Join(root, "new-file.txt")
	got, err := sb.Validate(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestValidateNewFileWithMissingParent(t *testing.T) {
	root := canonicalTempDir(t)
	sb, err := New([]string{root})
	require.NoError(t, err)

	_, err = sb.Validate(filepath.Join(root, "missing-dir", "new-file.txt"))
	assert.ErrorIs(t, err, ErrParentMissing)
}

func TestValidateNewFileWithEscapingParent(t *testing.T) {
	root := canonicalTempDir(t)
	outside := canonicalTempDir(t)

	linkDir := filepath.Join(root, "linkdir")
	require.NoError(t, os.Symlink(outside, linkDir))

	sb, err := New([]string{root})
	require.NoError(t, err)

	_, err = sb.Validate(filepath.Join(linkDir, "new-file.txt"))
	assert.ErrorIs(t, err, ErrParentOutsideRoots)
}

func TestValidateMultipleRoots(t *testing.T) {
	first := canonicalTempDir(t)
	second := canonicalTempDir(t)
	writeFile(t, filepath.Join(second, "b.txt"), "x")

	sb, err := New([]string{first, second})
	require.NoError(t, err)

	got, err := sb.Validate(filepath.Join(second, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "b.txt"), got)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandHome("~/docs/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "docs", "notes.txt"), got)

	// No expansion for a tilde that is not a home shortcut.
	got, err = ExpandHome("/data/~backup")
	require.NoError(t, err)
	assert.Equal(t, "/data/~backup", got)
}

func TestRootsReturnsCopy(t *testing.T) {
	root := canonicalTempDir(t)
	sb, err := New([]string{root})
	require.NoError(t, err)

	roots := sb.Roots()
	roots[0] = "/mutated"
	assert.Equal(t, []string{root}, sb.Roots())
}
