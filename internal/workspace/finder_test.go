package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.fits"))
	touch(t, filepath.Join(dir, "sub", "a.fits"))
	touch(t, filepath.Join(dir, "notes.txt"))

	files, err := FindFilesByExtension(dir, ".fits")
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.True(t, strings.HasSuffix(files[0], "b.fits"))
	assert.True(t, strings.HasSuffix(files[1], filepath.Join("sub", "a.fits")))
}

func TestWriteEventList(t *testing.T) {
	t.Parallel()

	t.Run("collects event files and skips the spacecraft file", func(t *testing.T) {
		dir := t.TempDir()
		dataDir := filepath.Join(dir, "downloads")
		touch(t, filepath.Join(dataDir, "L123_PH00.fits"))
		touch(t, filepath.Join(dataDir, "L123_PH01.fits"))
		touch(t, filepath.Join(dataDir, "Crab_SC.fits"))

		w := New(dir, "Crab")
		n, err := w.WriteEventList(dataDir)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		content, err := os.ReadFile(w.EventList())
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 2)
		assert.NotContains(t, string(content), "_SC.fits")
	})

	t.Run("refuses to overwrite an existing list", func(t *testing.T) {
		dir := t.TempDir()
		w := New(dir, "Crab")
		touch(t, w.EventList())

		_, err := w.WriteEventList(dir)
		assert.ErrorContains(t, err, "already exists")
	})

	t.Run("errors when no event files are found", func(t *testing.T) {
		dir := t.TempDir()
		empty := filepath.Join(dir, "empty")
		require.NoError(t, os.MkdirAll(empty, 0o755))

		w := New(dir, "Crab")
		_, err := w.WriteEventList(empty)
		assert.ErrorContains(t, err, "no event files")
	})
}
