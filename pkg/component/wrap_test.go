package component_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/component"
)

const loremText = "The quick brown fox jumps over the lazy dog while a " +
	"supercalifragilisticexpialidocious parrot recites markdown tables aloud"

func rowTexts(rows [][]component.Word) []string {
	texts := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = component.RowText(row)
	}
	return texts
}

func nonWhiteText(rows [][]component.Word) string {
	var buf strings.Builder
	for _, row := range rows {
		for _, word := range row {
			if word.Kind().Tag == component.WordWhite {
				continue
			}
			buf.WriteString(word.Content)
		}
	}
	return buf.String()
}

func TestTransform_ParagraphWidthBound(t *testing.T) {
	t.Parallel()

	for width := 1; width <= 60; width++ {
		block := component.New(component.BlockParagraph, component.SplitWords(loremText, component.KindNormal))
		block.Transform(width, nil)

		require.NotEmpty(t, block.Content, "width %d", width)
		assert.Equal(t, len(block.Content), block.Height())
		for i, row := range block.Content {
			assert.LessOrEqual(t, component.RowWidth(row), width, "width %d row %d", width, i)
			assert.NotEmpty(t, row, "width %d row %d", width, i)
		}
		// Only whitespace may be lost.
		assert.Equal(t,
			strings.ReplaceAll(loremText, " ", ""),
			strings.ReplaceAll(nonWhiteText(block.Content), " ", ""),
			"width %d", width)
	}
}

func TestTransform_RowsNeverStartWithWhitespace(t *testing.T) {
	t.Parallel()

	block := component.New(component.BlockParagraph, component.SplitWords(loremText, component.KindNormal))
	block.Transform(12, nil)

	for _, row := range block.Content {
		require.NotEmpty(t, row)
		assert.False(t, row[0].IsWhitespace())
		assert.False(t, row[len(row)-1].IsWhitespace())
	}
}

func TestTransform_Idempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block func() *component.Block
	}{
		{
			name: "paragraph",
			block: func() *component.Block {
				return component.New(component.BlockParagraph, component.SplitWords(loremText, component.KindNormal))
			},
		},
		{
			name: "quote",
			block: func() *component.Block {
				return component.New(component.BlockQuote, component.SplitWords(loremText, component.KindItalic))
			},
		},
		{
			name: "list",
			block: func() *component.Block {
				return listBlock(
					listRow{0, true, "first item with several words"},
					listRow{1, false, "nested child item"},
					listRow{0, true, "second"},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block := tt.block()
			block.Transform(17, nil)
			first := rowTexts(block.Content)
			firstHeight := block.Height()

			block.Transform(40, nil)
			block.Transform(17, nil)
			block.Transform(17, nil)

			assert.Equal(t, first, rowTexts(block.Content))
			assert.Equal(t, firstHeight, block.Height())
		})
	}
}

func TestTransform_FixedHeightKinds(t *testing.T) {
	t.Parallel()

	kinds := []component.BlockKind{
		component.BlockHeading,
		component.BlockLineBreak,
		component.BlockHorizontalRule,
		component.BlockImage,
	}
	for _, kind := range kinds {
		block := component.New(kind, component.SplitWords(loremText, component.KindNormal))
		block.Transform(5, nil)
		assert.Equal(t, 1, block.Height(), kind.String())
	}
}

func TestTransform_TaskReservesCheckbox(t *testing.T) {
	t.Parallel()

	block := component.New(component.BlockTask, component.SplitWords(loremText, component.KindNormal))
	block.Transform(20, nil)

	for _, row := range block.Content {
		assert.LessOrEqual(t, component.RowWidth(row), 16)
	}
}

func TestTransform_QuoteFillerAndAdmonition(t *testing.T) {
	t.Parallel()

	words := append(
		component.SplitWords("careful with this one please", component.KindNormal),
		component.NewWord("", component.KindMeta(component.MetaWarning)),
	)
	block := component.New(component.BlockQuote, words)
	block.Transform(14, nil)

	require.GreaterOrEqual(t, len(block.Content), 2)
	assert.Equal(t, component.MetaWarning, block.Admonition())
	assert.Equal(t, " Warning", component.RowText(block.Content[0]))
	for _, row := range block.Content {
		assert.Equal(t, component.WordWhite, row[0].Kind().Tag)
		assert.LessOrEqual(t, component.RowWidth(row), 12)
	}
}

func TestTransform_QuoteNarrowerThanIndent(t *testing.T) {
	t.Parallel()

	words := append(
		component.SplitWords("abc", component.KindNormal),
		component.NewWord("    ", component.KindMeta(component.MetaQuoteIndent)),
	)
	block := component.New(component.BlockQuote, words)
	block.Transform(1, nil)

	require.NotEmpty(t, block.Content)
	for _, row := range block.Content {
		assert.Equal(t, "    ", row[0].Content)
		assert.Len(t, row, 2, "one rune per row behind the indent")
	}
}

func TestTransform_LongWordHardSplit(t *testing.T) {
	t.Parallel()

	block := component.New(component.BlockParagraph, component.SplitWords("ab abcdefghij", component.KindBold))
	block.Transform(4, nil)

	assert.Equal(t, []string{"ab", "abcd", "efgh", "ij"}, rowTexts(block.Content))
	for _, row := range block.Content {
		for _, word := range row {
			assert.Equal(t, component.KindBold, word.Kind())
		}
	}
}

func TestTransform_WidthBoundAcrossKinds(t *testing.T) {
	t.Parallel()

	for width := 3; width <= 30; width++ {
		quote := component.New(component.BlockQuote, component.SplitWords(loremText, component.KindNormal))
		quote.Transform(width, nil)
		for _, row := range quote.Content {
			assert.LessOrEqual(t, component.RowWidth(row), width, "quote width "+strconv.Itoa(width))
		}
	}
}
