package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/watch"
)

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	w, err := watch.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))

	select {
	case _, ok := <-w.Changes():
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	w, err := watch.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0o644))

	select {
	case <-w.Changes():
		t.Fatal("unexpected notification for a sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	w, err := watch.New(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok, "changes channel closes with the watcher")
	case <-time.After(5 * time.Second):
		t.Fatal("changes channel was not closed")
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := watch.New(filepath.Join(t.TempDir(), "missing", "doc.md"))
	require.Error(t, err)
}
