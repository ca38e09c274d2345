package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "gomdview", "config.yaml")

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("general: {}\n"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "general: {}\n", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0o600))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		path := filepath.Join(t.TempDir(), "config.yaml")

		err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0)
		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	ctx := context.Background()

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("b"), 0)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("missing original", func(t *testing.T) {
		t.Parallel()
		created, err := fsutil.CreateBackup(context.Background(), filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("copies and replaces", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))

		created, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		assert.True(t, created)

		require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))
		_, err = fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)

		got, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))

		info, err := os.Stat(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})
}
