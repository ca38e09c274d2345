package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/component"
)

func TestWord_MarkClearRoundTrip(t *testing.T) {
	t.Parallel()

	kinds := []component.WordKind{
		component.KindNormal,
		component.KindWhite,
		component.KindCode,
		component.KindBold,
		component.KindItalic,
		component.KindBoldItalic,
		component.KindStrikethrough,
		component.KindLink,
		component.KindListMarker,
		component.KindSelected,
		component.KindFootnoteRef,
		component.KindCodeBlock(component.ClassKeyword),
	}

	for _, kind := range kinds {
		word := component.NewWord("text", kind)
		word.Mark(component.KindSelected)
		assert.Equal(t, component.KindSelected, word.Kind())

		prev, ok := word.PreviousKind()
		require.True(t, ok)
		assert.Equal(t, kind, prev)

		word.Clear()
		assert.Equal(t, kind, word.Kind(), "clear must restore %v", kind)
		_, ok = word.PreviousKind()
		assert.False(t, ok, "stash must be empty after clear")
	}
}

func TestWord_MarkOverwritesStash(t *testing.T) {
	t.Parallel()

	word := component.NewWord("text", component.KindBold)
	word.Mark(component.KindLink)
	word.Mark(component.KindSelected)
	word.Clear()

	assert.Equal(t, component.KindLink, word.Kind())
}

func TestWord_ClearWithoutMarkIsNoop(t *testing.T) {
	t.Parallel()

	word := component.NewWord("text", component.KindItalic)
	word.Clear()
	assert.Equal(t, component.KindItalic, word.Kind())
}

func TestWordKind_Renderable(t *testing.T) {
	t.Parallel()

	assert.True(t, component.KindNormal.Renderable())
	assert.False(t, component.KindMeta(component.MetaHeadingLevel).Renderable())
	assert.False(t, component.KindLinkData.Renderable())
}

func TestSplitWords(t *testing.T) {
	t.Parallel()

	words := component.SplitWords("hello   big\tworld", component.KindNormal)
	contents := make([]string, len(words))
	for i := range words {
		contents[i] = words[i].Content
	}
	assert.Equal(t, []string{"hello", " ", "big", " ", "world"}, contents)
}

func TestNew_ExtractsMeta(t *testing.T) {
	t.Parallel()

	words := []component.Word{
		component.NewWord("Title", component.KindNormal),
		component.NewWord("2", component.KindMeta(component.MetaHeadingLevel)),
		component.NewWord("https://example.com", component.KindLinkData),
	}
	block := component.New(component.BlockHeading, words)

	require.Len(t, block.Content, 1)
	for _, word := range block.Content[0] {
		assert.True(t, word.Kind().Renderable())
	}
	assert.Len(t, block.Meta, 2)
	assert.Equal(t, 2, block.HeadingLevel())
	assert.Equal(t, []string{"https://example.com"}, block.LinkTargets())
}
