package component_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/component"
)

// tableBlock builds a table from a flat, header-first cell list. The column
// and alignment metadata ride along with the first cell.
func tableBlock(cols int, aligns []string, cells ...string) *component.Block {
	rows := make([][]component.Word, 0, len(cells))
	for idx, cell := range cells {
		var row []component.Word
		if idx == 0 {
			row = append(row, component.NewWord(strconv.Itoa(cols), component.KindMeta(component.MetaTableColumns)))
			for _, align := range aligns {
				row = append(row, component.NewWord(align, component.KindMeta(component.MetaTableAlignment)))
			}
		}
		row = append(row, component.SplitWords(cell, component.KindNormal)...)
		rows = append(rows, row)
	}
	return component.NewFormatted(component.BlockTable, rows)
}

func TestTable_HeightAndWidths(t *testing.T) {
	t.Parallel()

	block := tableBlock(3, nil,
		"Name", "Kind", "Notes",
		"alpha", "x", "short",
		"b", "longer kind", "",
		"gamma", "y", "a much longer note",
		"d", "z", "n",
	)
	block.Transform(80, nil)

	assert.Equal(t, 4, block.Height())
	assert.Equal(t, 5, block.DisplayHeight())
	assert.Equal(t, []int{6, 12, 19}, block.ColumnWidths())
	assert.Len(t, block.TableRows(), 5)
}

func TestTable_PadsShortRows(t *testing.T) {
	t.Parallel()

	block := tableBlock(2, nil, "h1", "h2", "only")
	block.Transform(80, nil)

	require.Len(t, block.Content, 4)
	assert.Equal(t, 1, block.Height())
	rows := block.TableRows()
	require.Len(t, rows, 2)
	assert.Empty(t, rows[1][1])
}

func TestTable_HeaderOnly(t *testing.T) {
	t.Parallel()

	block := tableBlock(2, nil, "h1", "h2")
	block.Transform(80, nil)

	assert.Equal(t, 0, block.Height())
	assert.Equal(t, 1, block.DisplayHeight())
}

func TestTable_Alignments(t *testing.T) {
	t.Parallel()

	block := tableBlock(3, []string{component.AlignLeft, component.AlignNone, component.AlignRight}, "a", "b", "c")
	assert.Equal(t, []string{"left", "none", "right"}, block.Alignments())

	plain := tableBlock(2, nil, "a", "b")
	assert.Equal(t, []string{"none", "none"}, plain.Alignments())
}

func TestTable_ContentRow(t *testing.T) {
	t.Parallel()

	block := tableBlock(3, nil, "a", "b", "c", "d", "e", "f")
	block.Transform(80, nil)

	assert.Equal(t, 0, block.ContentRow(2))
	assert.Equal(t, 1, block.ContentRow(3))
	assert.Equal(t, 1, block.ContentRow(5))
}
