package component

// Column alignments recorded in MetaTableAlignment words.
const (
	AlignNone   = "none"
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// transformTable pads the flat cell sequence to a whole number of rows. The
// first chunk is the header, so the block height counts body rows only.
func (b *Block) transformTable() {
	cols := b.Columns()
	cells := cloneRows(b.source)
	if rem := len(cells) % cols; rem != 0 {
		for i := rem; i < cols; i++ {
			cells = append(cells, nil)
		}
	}
	b.Content = cells
	b.height = max(len(cells)/cols-1, 0)
}

// TableRows chunks the flat cell sequence into rows of Columns() cells.
func (b *Block) TableRows() [][][]Word {
	cols := b.Columns()
	rows := make([][][]Word, 0, len(b.Content)/cols)
	for start := 0; start+cols <= len(b.Content); start += cols {
		rows = append(rows, b.Content[start:start+cols])
	}
	return rows
}

// ColumnWidths returns, per column, the widest cell plus one cell of spacing.
func (b *Block) ColumnWidths() []int {
	widths := make([]int, b.Columns())
	for _, row := range b.TableRows() {
		for col, cell := range row {
			widths[col] = max(widths[col], RowWidth(cell))
		}
	}
	for col := range widths {
		widths[col]++
	}
	return widths
}

// Alignments returns the per-column alignment, defaulting to AlignNone.
func (b *Block) Alignments() []string {
	aligns := make([]string, b.Columns())
	idx := 0
	for i := range b.Meta {
		kind := b.Meta[i].kind
		if kind.Tag != WordMetaInfo || kind.Meta != MetaTableAlignment {
			continue
		}
		if idx < len(aligns) {
			aligns[idx] = b.Meta[i].Content
		}
		idx++
	}
	for col := range aligns {
		if aligns[col] == "" {
			aligns[col] = AlignNone
		}
	}
	return aligns
}
