package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and info", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0o644))

		content, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "# Title\n", string(content))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(8), info.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "big.md")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, f.Truncate(fsutil.MaxFileSize+1))
		require.NoError(t, f.Close())

		_, _, err = fsutil.ReadFile(context.Background(), path)
		require.ErrorIs(t, err, fsutil.ErrTooLarge)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := fsutil.ReadFile(ctx, "doc.md")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()
		_, err := fsutil.CheckModified(context.Background(), nil)
		require.ErrorIs(t, err, fsutil.ErrNilFileInfo)
	})

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("same"), 0o644))
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("same size and time but new content", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("aaaa"), 0o644))
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("bbbb"), 0o644))
		require.NoError(t, os.Chtimes(path, info.ModTime, info.ModTime))

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("touched", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("aaaa"), 0o644))
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)

		later := info.ModTime.Add(time.Minute)
		require.NoError(t, os.Chtimes(path, later, later))

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		_, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		modified, err := fsutil.CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})
}
