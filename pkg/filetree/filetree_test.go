package filetree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/filetree"
)

func populated(t *testing.T, viewHeight int, paths ...string) *filetree.Tree {
	t.Helper()
	tree := filetree.New(viewHeight)
	for _, path := range paths {
		tree.Add(filetree.NewEntry("/docs", path))
	}
	tree.Finish()
	return tree
}

func names(entries []filetree.Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Name
	}
	return out
}

func numbered(n int) []string {
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("/docs/file%02d.md", i)
	}
	return paths
}

func TestPartition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		height int
		want   int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{4, 4},
		{10, 6},
		{11, 6},
		{12, 8},
		{40, 22},
	}
	for _, tt := range tests {
		got := filetree.Partition(tt.height)
		assert.Equal(t, tt.want, got, "height %d", tt.height)
		assert.Zero(t, got%2)
	}
}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "guide/intro.md", filetree.NewEntry("/docs", "/docs/guide/intro.md").Name)
	assert.Equal(t, "/docs/guide/intro.md", filetree.NewEntry("/docs", "/docs/guide/intro.md").Path)
	assert.Equal(t, "README.md", filetree.NewEntry(".", "README.md").Name)
}

func TestTree_FinishSorts(t *testing.T) {
	t.Parallel()

	tree := populated(t, 40, "/docs/c.md", "/docs/a.md", "/docs/b.md")

	assert.True(t, tree.Finished())
	assert.Equal(t, 3, tree.FileCount())
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, names(tree.Page()))
	_, ok := tree.Selected()
	assert.False(t, ok)
}

func TestTree_NextPrevious(t *testing.T) {
	t.Parallel()

	tree := populated(t, 40, "/docs/a.md", "/docs/b.md", "/docs/c.md")

	tree.Next()
	entry, ok := tree.Selected()
	require.True(t, ok)
	assert.Equal(t, "a.md", entry.Name)

	tree.Next()
	tree.Next()
	tree.Next()
	entry, _ = tree.Selected()
	assert.Equal(t, "c.md", entry.Name, "next stops at the last file")

	tree.Previous()
	entry, _ = tree.Selected()
	assert.Equal(t, "b.md", entry.Name)

	tree.Previous()
	tree.Previous()
	entry, _ = tree.Selected()
	assert.Equal(t, "a.md", entry.Name, "previous stops at the first file")
}

func TestTree_PreviousWithoutSelection(t *testing.T) {
	t.Parallel()

	tree := populated(t, 40, "/docs/a.md", "/docs/b.md")
	tree.Previous()

	entry, ok := tree.Selected()
	require.True(t, ok)
	assert.Equal(t, "b.md", entry.Name)
}

func TestTree_Paging(t *testing.T) {
	t.Parallel()

	// Height 6 gives pages of 4 rows: two files each.
	tree := populated(t, 6, numbered(5)...)
	require.Equal(t, 4, tree.PageSize())
	assert.Equal(t, 3, tree.PageCount())
	assert.Equal(t, []string{"file00.md", "file01.md"}, names(tree.Page()))

	tree.NextPage()
	assert.Equal(t, 1, tree.PageIndex())
	assert.Equal(t, []string{"file02.md", "file03.md"}, names(tree.Page()))
	pos, ok := tree.SelectedOnPage()
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	tree.NextPage()
	tree.NextPage()
	assert.Equal(t, 2, tree.PageIndex())
	assert.Equal(t, []string{"file04.md"}, names(tree.Page()))

	tree.PreviousPage()
	assert.Equal(t, 1, tree.PageIndex())

	tree.Next()
	tree.Next()
	assert.Equal(t, 2, tree.PageIndex(), "moving past the page end turns the page")

	tree.First()
	entry, _ := tree.Selected()
	assert.Equal(t, "file00.md", entry.Name)
	assert.Equal(t, 0, tree.PageIndex())

	tree.Last()
	entry, _ = tree.Selected()
	assert.Equal(t, "file04.md", entry.Name)
	assert.Equal(t, 2, tree.PageIndex())
}

func TestTree_EveryFileReachable(t *testing.T) {
	t.Parallel()

	paths := numbered(13)
	tree := populated(t, 7, paths...)

	seen := map[string]bool{}
	tree.First()
	for range paths {
		entry, ok := tree.Selected()
		require.True(t, ok)
		seen[entry.Path] = true
		tree.Next()
	}
	assert.Len(t, seen, len(paths))
}

func TestTree_Search(t *testing.T) {
	t.Parallel()

	tree := populated(t, 40, "/docs/zeta/readme.md", "/docs/guide.md", "/docs/alpha/readme.md", "/docs/notes.md")
	tree.Next()

	tree.Search("readme")
	assert.Equal(t, "readme", tree.Query())
	assert.Equal(t, 2, tree.FileCount())
	assert.Equal(t, 4, tree.TotalCount())
	assert.Equal(t, []string{"alpha/readme.md", "zeta/readme.md"}, names(tree.Page()))
	_, ok := tree.Selected()
	assert.False(t, ok, "search clears the selection")
	assert.Equal(t, 0, tree.PageIndex())

	tree.Search("")
	assert.Equal(t, 4, tree.FileCount())
}

func TestTree_SearchNoMatches(t *testing.T) {
	t.Parallel()

	tree := populated(t, 40, "/docs/a.md")
	tree.Search("missing")

	assert.Zero(t, tree.FileCount())
	assert.Empty(t, tree.Page())
	assert.Equal(t, 1, tree.PageCount())

	tree.Next()
	tree.Last()
	tree.NextPage()
	_, ok := tree.Selected()
	assert.False(t, ok)
}

func TestTree_AddAfterSearchHonorsFilter(t *testing.T) {
	t.Parallel()

	tree := filetree.New(40)
	tree.Search("guide")
	tree.Add(filetree.NewEntry("/docs", "/docs/guide.md"))
	tree.Add(filetree.NewEntry("/docs", "/docs/other.md"))

	assert.Equal(t, 1, tree.FileCount())
	assert.Equal(t, 2, tree.TotalCount())
}

func TestTree_ResizeFollowsSelection(t *testing.T) {
	t.Parallel()

	tree := populated(t, 40, numbered(10)...)
	tree.Last()
	assert.Equal(t, 0, tree.PageIndex())

	tree.Resize(2)
	assert.Equal(t, 9, tree.PageIndex())
	entry, _ := tree.Selected()
	assert.Equal(t, "file09.md", entry.Name)
}
