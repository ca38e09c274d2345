package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/component"
)

func TestRoot_FindAndMark(t *testing.T) {
	t.Parallel()

	root := component.NewRoot("doc.md", []*component.Block{
		paragraph("Hello, world!"),
		lineBreak(),
		paragraph("another world appears"),
	})
	root.Transform(80, nil)

	count := root.FindAndMark("world")
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"world!", "world"}, selectedText(root))
	assert.Equal(t, []int{0, 2}, root.SearchResultHeights())

	root.ClearSearch()
	assert.Empty(t, selectedText(root))
	assert.Empty(t, root.SearchResultHeights())
}

func TestRoot_FindAndMarkBacksOff(t *testing.T) {
	t.Parallel()

	root := component.NewRoot("doc.md", []*component.Block{paragraph("Hello, world!")})
	root.Transform(80, nil)

	assert.Equal(t, 1, root.FindAndMark("wrold"))
	assert.Equal(t, []string{"world!"}, selectedText(root))
}

func TestRoot_FindAndMarkPrefersExactMatches(t *testing.T) {
	t.Parallel()

	root := component.NewRoot("doc.md", []*component.Block{
		paragraph("the cat sat"),
		paragraph("a cut above"),
	})
	root.Transform(80, nil)

	assert.Equal(t, 1, root.FindAndMark("cat"))
	assert.Equal(t, []string{"cat"}, selectedText(root))
}

func TestRoot_FindAndMarkSpansWords(t *testing.T) {
	t.Parallel()

	root := component.NewRoot("doc.md", []*component.Block{paragraph("open the pod bay doors")})
	root.Transform(80, nil)

	require.Equal(t, 1, root.FindAndMark("pod bay"))
	assert.Equal(t, []string{"pod", " ", "bay"}, selectedText(root))
}

func TestRoot_FindAndMarkStaysWithinWordWindow(t *testing.T) {
	t.Parallel()

	root := component.NewRoot("doc.md", []*component.Block{paragraph("a b")})
	root.Transform(80, nil)

	// "ab" only matches fuzzily, as "a " and " b". A one-word query never
	// marks the separator.
	require.Equal(t, 2, root.FindAndMark("ab"))
	assert.Equal(t, []string{"a", "b"}, selectedText(root))
}

func TestRoot_FindAndMarkWrappedRows(t *testing.T) {
	t.Parallel()

	root := component.NewRoot("doc.md", []*component.Block{
		paragraph("alpha beta gamma delta"),
	})
	root.Transform(11, nil)

	require.Equal(t, 2, root.Blocks()[0].Height())
	require.Equal(t, 1, root.FindAndMark("gamma"))
	assert.Equal(t, []int{1}, root.SearchResultHeights())
}

func TestRoot_FindAndMarkEmptyQuery(t *testing.T) {
	t.Parallel()

	root := component.NewRoot("doc.md", []*component.Block{paragraph("text")})
	root.Transform(80, nil)

	assert.Zero(t, root.FindAndMark("   "))
	assert.Zero(t, root.FindAndMark("zzzzzz"))
	assert.Empty(t, selectedText(root))
}

func TestRoot_FindAndMarkClearsLinkSelection(t *testing.T) {
	t.Parallel()

	root := linkDocument()
	root.Transform(80, nil)

	_, err := root.SelectLink(0)
	require.NoError(t, err)
	root.FindAndMark("and")

	assert.False(t, root.Focused())
	assert.Equal(t, []string{"and"}, selectedText(root))

	root.ClearSearch()
	assert.Equal(t, 5, root.NumLinks())
}
