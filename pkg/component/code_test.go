package component_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/component"
)

type stubHighlighter struct {
	events []component.HighlightEvent
	err    error
	calls  int
}

func (s *stubHighlighter) Tokenize(string, []byte) ([]component.HighlightEvent, error) {
	s.calls++
	return s.events, s.err
}

func codeBlock(language, src string) *component.Block {
	lines := strings.Split(src, "\n")
	rows := make([][]component.Word, 0, len(lines))
	for idx, line := range lines {
		row := []component.Word{component.NewWord(line, component.KindCodeBlock(component.ClassDefault))}
		if idx == 0 && language != "" {
			row = append(row, component.NewWord(language, component.KindMeta(component.MetaCodeLanguage)))
		}
		rows = append(rows, row)
	}
	return component.NewFormatted(component.BlockCodeBlock, rows)
}

func TestMergeHighlights_SplitsOnNewlines(t *testing.T) {
	t.Parallel()

	src := []byte("func main() {\n}\n")
	hl := &stubHighlighter{events: []component.HighlightEvent{
		{Kind: component.EventHighlightStart, Class: component.ClassKeyword},
		{Kind: component.EventSource, Start: 0, End: 4},
		{Kind: component.EventHighlightEnd},
		{Kind: component.EventSource, Start: 4, End: 14},
		{Kind: component.EventHighlightStart, Class: component.ClassPunctuation},
		{Kind: component.EventSource, Start: 14, End: 16},
		{Kind: component.EventHighlightEnd},
	}}

	rows := component.MergeHighlights(hl, "go", src)

	require.Len(t, rows, 2)
	assert.Equal(t, "func main() {", component.RowText(rows[0]))
	assert.Equal(t, component.KindCodeBlock(component.ClassKeyword), rows[0][0].Kind())
	assert.Equal(t, component.KindCodeBlock(component.ClassDefault), rows[0][1].Kind())
	assert.Equal(t, "}", component.RowText(rows[1]))
	assert.Equal(t, component.KindCodeBlock(component.ClassPunctuation), rows[1][0].Kind())
}

func TestMergeHighlights_ErrorFallsBackToPlain(t *testing.T) {
	t.Parallel()

	hl := &stubHighlighter{err: errors.New("unsupported")}
	rows := component.MergeHighlights(hl, "klingon", []byte("a\nb"))

	require.Len(t, rows, 2)
	assert.Equal(t, "a", component.RowText(rows[0]))
	assert.Equal(t, "b", component.RowText(rows[1]))
	for _, row := range rows {
		for _, word := range row {
			assert.Equal(t, component.KindCodeBlock(component.ClassDefault), word.Kind())
		}
	}
}

func TestMergeHighlights_IgnoresOutOfRangeSpans(t *testing.T) {
	t.Parallel()

	hl := &stubHighlighter{events: []component.HighlightEvent{
		{Kind: component.EventSource, Start: 0, End: 99},
		{Kind: component.EventSource, Start: 5, End: 2},
	}}
	rows := component.MergeHighlights(hl, "go", []byte("abc"))

	require.Len(t, rows, 1)
	assert.Equal(t, "abc", component.RowText(rows[0]))
}

func TestTransform_CodeBlockHighlightsOnce(t *testing.T) {
	t.Parallel()

	hl := &stubHighlighter{events: []component.HighlightEvent{
		{Kind: component.EventSource, Start: 0, End: 7},
	}}
	block := codeBlock("go", "x := 1\n")
	block.Transform(10, hl)
	block.Transform(3, hl)

	assert.Equal(t, 1, hl.calls)
	assert.Equal(t, "go", block.Language())
	require.Len(t, block.Content, 1)
	assert.Equal(t, "x := 1", component.RowText(block.Content[0]))
}

func TestTransform_CodeBlockRehighlightsWithNewHighlighter(t *testing.T) {
	t.Parallel()

	block := codeBlock("go", "func")
	block.Transform(80, nil)
	require.Len(t, block.Content, 1)
	assert.Equal(t, component.KindCodeBlock(component.ClassDefault), block.Content[0][0].Kind())

	hl := &stubHighlighter{events: []component.HighlightEvent{
		{Kind: component.EventHighlightStart, Class: component.ClassKeyword},
		{Kind: component.EventSource, Start: 0, End: 4},
		{Kind: component.EventHighlightEnd},
	}}
	block.Transform(80, hl)
	assert.Equal(t, 1, hl.calls)
	require.Len(t, block.Content, 1)
	assert.Equal(t, component.KindCodeBlock(component.ClassKeyword), block.Content[0][0].Kind())

	other := &stubHighlighter{err: errors.New("unsupported")}
	block.Transform(80, other)
	assert.Equal(t, 1, other.calls)
	assert.Equal(t, component.KindCodeBlock(component.ClassDefault), block.Content[0][0].Kind())
}

func TestTransform_CodeBlockWithoutLanguage(t *testing.T) {
	t.Parallel()

	block := codeBlock("", "plain\ntext")
	block.Transform(80, nil)

	require.Len(t, block.Content, 3)
	assert.Equal(t, 3, block.Height())
	assert.Empty(t, component.RowText(block.Content[0]))
	assert.Equal(t, "plain", component.RowText(block.Content[1]))
}
