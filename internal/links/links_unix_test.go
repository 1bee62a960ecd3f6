//go:build unix

package links

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertwitch/fsmeta/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// realTempDir returns a temporary directory without links in its path.
func realTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}

// TestRealPath_RealFilesystem verifies resolution against real links.
func TestRealPath_RealFilesystem(t *testing.T) {
	t.Parallel()

	dir := realTempDir(t)
	target := filepath.Join(dir, "target")
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	dangling := filepath.Join(dir, "dangling")

	require.NoError(t, os.WriteFile(target, []byte("value"), 0o600))
	require.NoError(t, os.Symlink("target", first))
	require.NoError(t, os.Symlink(first, second))
	require.NoError(t, os.Symlink("nowhere", dangling))

	handler := NewHandler(&schema.OS{}, 0)

	entry, err := handler.RealPath(second, true)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, target, entry.Path)
	assert.Equal(t, 2, entry.Hops)

	entry, err = handler.RealPath(second, false)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, first, entry.Path)
	assert.True(t, entry.IsSymlink)

	entry, err = handler.RealPath(dangling, true)
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = handler.RealPath(filepath.Join(dir, "missing"), true)
	require.ErrorIs(t, err, schema.ErrNotFound)
}

// TestRealPath_RealFilesystem_Cyclic verifies a real loop fails and does not
// hang.
func TestRealPath_RealFilesystem_Cyclic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	self := filepath.Join(dir, "self")

	require.NoError(t, os.Symlink("b", a))
	require.NoError(t, os.Symlink("a", b))
	require.NoError(t, os.Symlink("self", self))

	handler := NewHandler(&schema.OS{}, 0)

	done := make(chan error, 2)
	go func() {
		_, err := handler.RealPath(a, true)
		done <- err
		_, err = handler.RealPath(self, true)
		done <- err
	}()

	for range 2 {
		select {
		case err := <-done:
			require.ErrorIs(t, err, schema.ErrCyclicLink)
		case <-time.After(5 * time.Second):
			t.Fatal("timeout resolving a cyclic link")
		}
	}
}

// TestRealPath_RealFilesystem_LinkedParent verifies a relative link content
// with ".." is resolved against the real directory of the link, when the link
// is reached through a linked directory.
func TestRealPath_RealFilesystem_LinkedParent(t *testing.T) {
	t.Parallel()

	dir := realTempDir(t)
	target := filepath.Join(dir, "real", "target.txt")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real", "sub"), 0o700))
	require.NoError(t, os.WriteFile(target, []byte("value"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "target.txt"), []byte("decoy"), 0o600))
	require.NoError(t, os.Symlink("../target.txt", filepath.Join(dir, "real", "sub", "l")))
	require.NoError(t, os.Symlink(filepath.Join("real", "sub"), filepath.Join(dir, "alias")))

	handler := NewHandler(&schema.OS{}, 0)

	entry, err := handler.RealPath(filepath.Join(dir, "alias", "l"), true)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, target, entry.Path)
	assert.Equal(t, "../target.txt", entry.Target)
	assert.Equal(t, 1, entry.Hops)

	entry, err = handler.RealPath(filepath.Join(dir, "alias", "l"), false)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, target, entry.Path)
	assert.False(t, entry.IsSymlink)
}

// TestRealPath_RealFilesystem_MixedChain verifies a chain of relative and
// absolute contents through linked directories ends where the kernel ends.
func TestRealPath_RealFilesystem_MixedChain(t *testing.T) {
	t.Parallel()

	dir := realTempDir(t)
	target := filepath.Join(dir, "real", "target.txt")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real", "sub"), 0o700))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real", "data"), 0o700))
	require.NoError(t, os.WriteFile(target, []byte("value"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join("real", "sub"), filepath.Join(dir, "alias")))
	require.NoError(t, os.Symlink(filepath.Join("real", "data"), filepath.Join(dir, "datalink")))
	require.NoError(t, os.Symlink("../mid", filepath.Join(dir, "real", "sub", "l")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "datalink", "x"), filepath.Join(dir, "real", "mid")))
	require.NoError(t, os.Symlink("../target.txt", filepath.Join(dir, "real", "data", "x")))

	entry, err := NewHandler(&schema.OS{}, 0).RealPath(filepath.Join(dir, "alias", "l"), true)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, target, entry.Path)
	assert.Equal(t, 3, entry.Hops)

	kernel, err := filepath.EvalSymlinks(filepath.Join(dir, "alias", "l"))
	require.NoError(t, err)
	assert.Equal(t, kernel, entry.Path)
}

// TestRealPath_RealFilesystem_NotADirectory verifies a target passing through
// a regular file is dangling.
func TestRealPath_RealFilesystem_NotADirectory(t *testing.T) {
	t.Parallel()

	dir := realTempDir(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("value"), 0o600))
	require.NoError(t, os.Symlink("file.txt/x", filepath.Join(dir, "l")))

	entry, err := NewHandler(&schema.OS{}, 0).RealPath(filepath.Join(dir, "l"), true)
	require.NoError(t, err)
	assert.Nil(t, entry)
}
