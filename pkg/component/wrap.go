package component

import (
	"github.com/mattn/go-runewidth"
)

// Width reserved in front of task and quote rows by the renderer.
const (
	taskReserve  = 4
	quoteReserve = 2
)

// Transform re-wraps the block to width. Every call starts from the retained
// source stream, so the result depends only on width. hl may be nil, in which
// case code blocks are left unhighlighted.
func (b *Block) Transform(width int, hl Highlighter) {
	if width < 1 {
		width = 1
	}

	switch b.kind {
	case BlockHeading, BlockLineBreak, BlockHorizontalRule, BlockImage:
		b.Content = cloneRows(b.source)
		b.height = 1
	case BlockParagraph, BlockFootnote:
		b.Content = wrapSource(b.source, width, nil)
		b.height = len(b.Content)
	case BlockTask:
		b.Content = wrapSource(b.source, max(width-taskReserve, 1), nil)
		b.height = len(b.Content)
	case BlockQuote:
		b.transformQuote(width)
	case BlockList:
		b.transformList(width)
	case BlockTable:
		b.transformTable()
	case BlockCodeBlock:
		b.transformCode(hl)
	default:
		b.Content = cloneRows(b.source)
		b.height = len(b.Content)
	}
}

func (b *Block) transformQuote(width int) {
	filler := NewWord(" ", KindWhite)
	if indent, ok := b.MetaValue(MetaQuoteIndent); ok && indent != "" {
		filler = NewWord(indent, KindWhite)
	}
	prefix := func(bool) []Word { return []Word{filler} }

	effective := max(width-quoteReserve, filler.Width()+1)

	var rows [][]Word
	if title := admonitionTitle(b.Admonition()); title != "" {
		rows = append(rows, []Word{filler, NewWord(title, KindBold)})
	}
	rows = append(rows, wrapSource(b.source, effective, prefix)...)

	b.Content = rows
	b.height = len(rows)
}

func admonitionTitle(meta MetaKind) string {
	switch meta {
	case MetaNote:
		return "Note"
	case MetaTip:
		return "Tip"
	case MetaImportant:
		return "Important"
	case MetaWarning:
		return "Warning"
	case MetaCaution:
		return "Caution"
	default:
		return ""
	}
}

// wrapSource wraps every source row independently and concatenates the
// results. prefix, when non-nil, supplies the leading filler for each row.
func wrapSource(source [][]Word, width int, prefix func(first bool) []Word) [][]Word {
	var rows [][]Word
	for _, row := range source {
		f := newFiller(width, prefix)
		for _, word := range row {
			f.add(word)
		}
		rows = append(rows, f.finish()...)
	}
	return rows
}

// filler implements greedy line fill. Whitespace is deferred: it is only
// committed to a row once a following word fits behind it, and dropped when
// the row is closed.
type filler struct {
	width  int
	prefix func(first bool) []Word

	rows       [][]Word
	row        []Word
	rowLen     int
	hasContent bool

	pending    []Word
	pendingLen int
}

func newFiller(width int, prefix func(first bool) []Word) *filler {
	f := &filler{width: width, prefix: prefix}
	f.startRow(true)
	return f
}

func (f *filler) startRow(first bool) {
	f.row = nil
	if f.prefix != nil {
		f.row = append(f.row, f.prefix(first)...)
	}
	f.rowLen = RowWidth(f.row)
	f.hasContent = false
	f.pending = nil
	f.pendingLen = 0
}

func (f *filler) closeRow() {
	if f.hasContent {
		f.rows = append(f.rows, f.row)
	}
	f.startRow(false)
}

func (f *filler) add(word Word) {
	if word.IsWhitespace() {
		if !f.hasContent {
			return
		}
		f.pending = append(f.pending, word)
		f.pendingLen += word.Width()
		return
	}

	width := word.Width()
	if f.hasContent && f.rowLen+f.pendingLen+width > f.width {
		f.closeRow()
	} else {
		f.row = append(f.row, f.pending...)
		f.rowLen += f.pendingLen
		f.pending = nil
		f.pendingLen = 0
	}

	for word.Content != "" && f.rowLen+width > f.width {
		avail := f.width - f.rowLen
		head, tail := splitAtWidth(word.Content, avail)
		if head == "" {
			if f.hasContent {
				f.closeRow()
				continue
			}
			head, tail = splitFirstRune(word.Content)
		}
		part := word
		part.Content = head
		f.push(part)
		f.closeRow()
		word.Content = tail
		width = word.Width()
	}

	if word.Content != "" {
		f.push(word)
	}
}

func (f *filler) push(word Word) {
	f.row = append(f.row, word)
	f.rowLen += word.Width()
	f.hasContent = true
}

func (f *filler) finish() [][]Word {
	if f.hasContent {
		f.rows = append(f.rows, f.row)
	}
	f.row = nil
	return f.rows
}

// splitAtWidth splits s so the head occupies at most width cells.
func splitAtWidth(s string, width int) (string, string) {
	if width <= 0 {
		return "", s
	}
	used := 0
	for idx, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width {
			return s[:idx], s[idx:]
		}
		used += rw
	}
	return s, ""
}

func splitFirstRune(s string) (string, string) {
	for idx := range s {
		if idx > 0 {
			return s[:idx], s[idx:]
		}
	}
	return s, ""
}
