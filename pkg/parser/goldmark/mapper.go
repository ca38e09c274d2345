package goldmark

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/gomdview/pkg/component"
	"github.com/yaklabco/gomdview/pkg/langdetect"
)

// mapper converts a goldmark AST into layout blocks.
type mapper struct {
	content []byte
	detect  bool
	blocks  []*component.Block
}

func newMapper(content []byte, detect bool) *mapper {
	return &mapper{content: content, detect: detect}
}

// mapDocument maps every top-level node and separates the results with
// line break blocks.
func (m *mapper) mapDocument(doc ast.Node) []*component.Block {
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		before := len(m.blocks)
		if before > 0 {
			m.blocks = append(m.blocks, component.New(component.BlockLineBreak, nil))
		}
		m.mapBlock(child)
		if len(m.blocks) == before+1 && before > 0 {
			// Nothing was produced; drop the separator again.
			m.blocks = m.blocks[:before]
		}
	}
	return m.blocks
}

func (m *mapper) emit(block *component.Block) {
	m.blocks = append(m.blocks, block)
}

func (m *mapper) mapBlock(node ast.Node) {
	switch n := node.(type) {
	case *ast.Heading:
		words := m.inlineWords(n, style{})
		words = append(words, meta(component.MetaHeadingLevel, strconv.Itoa(n.Level)))
		m.emit(component.New(component.BlockHeading, words))

	case *ast.Paragraph, *ast.TextBlock:
		m.mapParagraph(n)

	case *ast.List:
		m.mapList(n)

	case *ast.Blockquote:
		m.mapQuote(n)

	case *ast.FencedCodeBlock:
		m.mapFencedCodeBlock(n)

	case *ast.CodeBlock:
		m.emit(component.NewFormatted(component.BlockCodeBlock, m.codeRows(n, "")))

	case *ast.ThematicBreak:
		m.emit(component.New(component.BlockHorizontalRule, nil))

	case *east.Table:
		m.mapTable(n)

	case *east.FootnoteList:
		m.mapFootnotes(n)

	case *ast.HTMLBlock:
		// Raw HTML is not rendered.

	default:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			m.mapBlock(child)
		}
	}
}

// mapParagraph emits a paragraph, or an image block when the paragraph holds
// nothing but a single image.
func (m *mapper) mapParagraph(node ast.Node) {
	if img, ok := node.FirstChild().(*ast.Image); ok && img.NextSibling() == nil {
		words := m.inlineWords(img, style{link: true})
		if len(words) == 0 {
			words = []component.Word{component.NewWord("image", component.KindLink)}
		}
		words = append(words, component.NewWord(string(img.Destination), component.KindLinkData))
		m.emit(component.New(component.BlockImage, words))
		return
	}

	rows := m.inlineRows(node, style{})
	if len(rows) == 0 {
		return
	}
	m.emit(component.NewFormatted(component.BlockParagraph, rows))
}

func (m *mapper) mapFencedCodeBlock(n *ast.FencedCodeBlock) {
	language := ""
	if n.Info != nil {
		language = langdetect.Resolve(string(n.Language(m.content)))
	}
	if language == "" && m.detect {
		if guess := langdetect.Detect(m.codeText(n)); guess != langdetect.Text {
			language = guess
		}
	}
	m.emit(component.NewFormatted(component.BlockCodeBlock, m.codeRows(n, language)))
}

func (m *mapper) codeText(node ast.Node) []byte {
	var buf []byte
	lines := node.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		buf = append(buf, seg.Value(m.content)...)
	}
	return buf
}

// codeRows returns one row per source line. The language rides on the first
// row as metadata.
func (m *mapper) codeRows(node ast.Node, language string) [][]component.Word {
	lines := node.Lines()
	rows := make([][]component.Word, 0, lines.Len()+1)
	for i := range lines.Len() {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(m.content)), "\r\n")
		rows = append(rows, []component.Word{
			component.NewWord(line, component.KindCodeBlock(component.ClassDefault)),
		})
	}
	if len(rows) == 0 {
		rows = append(rows, []component.Word{component.NewWord("", component.KindCodeBlock(component.ClassDefault))})
	}
	if language != "" {
		rows[0] = append(rows[0], meta(component.MetaCodeLanguage, language))
	}
	return rows
}

//nolint:gochecknoglobals // Read-only lookup table.
var admonitions = map[string]component.MetaKind{
	"[!NOTE]":      component.MetaNote,
	"[!TIP]":       component.MetaTip,
	"[!IMPORTANT]": component.MetaImportant,
	"[!WARNING]":   component.MetaWarning,
	"[!CAUTION]":   component.MetaCaution,
}

// mapQuote flattens a block quote into rows, one per contained paragraph or
// list item. A leading GitHub alert marker becomes admonition metadata.
func (m *mapper) mapQuote(n *ast.Blockquote) {
	var rows [][]component.Word
	var collect func(node ast.Node)
	collect = func(node ast.Node) {
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
				rows = append(rows, m.inlineRows(c, style{})...)
			case *ast.FencedCodeBlock, *ast.CodeBlock:
				for _, row := range m.codeRows(c, "") {
					rows = append(rows, []component.Word{component.NewWord(component.RowText(row), component.KindCode)})
				}
			default:
				collect(c)
			}
		}
	}
	collect(n)

	if kind, ok := m.admonition(n); ok && len(rows) > 0 {
		rows[0] = stripAlertMarker(rows[0])
		if len(rows[0]) == 0 {
			rows = rows[1:]
		}
		if len(rows) > 0 {
			rows[len(rows)-1] = append(rows[len(rows)-1], meta(kind, ""))
		}
	}
	if len(rows) == 0 {
		return
	}
	m.emit(component.NewFormatted(component.BlockQuote, rows))
}

func (m *mapper) admonition(n *ast.Blockquote) (component.MetaKind, bool) {
	first := n.FirstChild()
	if first == nil || first.Lines().Len() == 0 {
		return component.MetaNone, false
	}
	seg := first.Lines().At(0)
	line := strings.TrimSpace(string(seg.Value(m.content)))
	kind, ok := admonitions[strings.ToUpper(line)]
	return kind, ok
}

// stripAlertMarker removes the words spelling "[!KIND]" from the front of a
// row, however goldmark split them.
func stripAlertMarker(row []component.Word) []component.Word {
	var seen strings.Builder
	for i := range row {
		seen.WriteString(strings.TrimSpace(row[i].Content))
		if strings.HasSuffix(seen.String(), "]") {
			rest := row[i+1:]
			for len(rest) > 0 && rest[0].IsWhitespace() {
				rest = rest[1:]
			}
			return rest
		}
	}
	return row
}

// mapList emits list blocks. Items starting with a task checkbox become task
// blocks of their own; the surrounding plain items stay together.
func (m *mapper) mapList(list *ast.List) {
	var rows [][]component.Word
	flush := func() {
		if len(rows) > 0 {
			m.emit(component.NewFormatted(component.BlockList, rows))
			rows = nil
		}
	}

	var walk func(list *ast.List, depth int)
	walk = func(list *ast.List, depth int) {
		for item := list.FirstChild(); item != nil; item = item.NextSibling() {
			words, nested := m.listItem(item)
			if checked, ok := taskState(item); ok {
				flush()
				state := component.MetaTaskUnchecked
				if checked {
					state = component.MetaTaskChecked
				}
				m.emit(component.New(component.BlockTask, append(trimLeading(words), meta(state, ""))))
			} else {
				kind := component.MetaListUnordered
				if list.IsOrdered() {
					kind = component.MetaListOrdered
				}
				row := []component.Word{
					meta(component.MetaListDepth, strconv.Itoa(depth)),
					meta(kind, ""),
				}
				rows = append(rows, append(row, words...))
			}
			for _, child := range nested {
				walk(child, depth+1)
			}
		}
	}
	walk(list, 0)
	flush()
}

// listItem returns the inline words of an item's text blocks and its nested
// lists.
func (m *mapper) listItem(item ast.Node) ([]component.Word, []*ast.List) {
	var words []component.Word
	var nested []*ast.List
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.List:
			nested = append(nested, c)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			for _, row := range m.codeRows(c, "") {
				words = appendSeparated(words, []component.Word{
					component.NewWord(component.RowText(row), component.KindCode),
				})
			}
		default:
			words = appendSeparated(words, m.inlineWords(c, style{}))
		}
	}
	return words, nested
}

func taskState(item ast.Node) (bool, bool) {
	first := item.FirstChild()
	if first == nil {
		return false, false
	}
	if box, ok := first.FirstChild().(*east.TaskCheckBox); ok {
		return box.IsChecked, true
	}
	return false, false
}

// mapTable emits the header and body cells as one flat sequence. Column
// count and alignments ride on the first cell as metadata.
func (m *mapper) mapTable(table *east.Table) {
	cols := len(table.Alignments)
	if cols == 0 {
		return
	}

	var cells [][]component.Word
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		count := 0
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if count < cols {
				cells = append(cells, m.inlineWords(cell, style{}))
			}
			count++
		}
		for ; count < cols; count++ {
			cells = append(cells, nil)
		}
	}
	if len(cells) == 0 {
		return
	}

	head := []component.Word{meta(component.MetaTableColumns, strconv.Itoa(cols))}
	for _, align := range table.Alignments {
		head = append(head, meta(component.MetaTableAlignment, alignment(align)))
	}
	cells[0] = append(head, cells[0]...)
	m.emit(component.NewFormatted(component.BlockTable, cells))
}

func alignment(align east.Alignment) string {
	switch align {
	case east.AlignLeft:
		return component.AlignLeft
	case east.AlignCenter:
		return component.AlignCenter
	case east.AlignRight:
		return component.AlignRight
	case east.AlignNone:
		return component.AlignNone
	default:
		return component.AlignNone
	}
}

func (m *mapper) mapFootnotes(list *east.FootnoteList) {
	for node := list.FirstChild(); node != nil; node = node.NextSibling() {
		note, ok := node.(*east.Footnote)
		if !ok {
			continue
		}
		words := []component.Word{
			component.NewWord("["+strconv.Itoa(note.Index)+"]", component.KindFootnoteRef),
		}
		for child := note.FirstChild(); child != nil; child = child.NextSibling() {
			words = appendSeparated(words, m.inlineWords(child, style{}))
		}
		m.emit(component.New(component.BlockFootnote, words))
	}
}

func meta(kind component.MetaKind, value string) component.Word {
	return component.NewWord(value, component.KindMeta(kind))
}

func trimLeading(words []component.Word) []component.Word {
	for len(words) > 0 && words[0].IsWhitespace() && words[0].Kind().Renderable() {
		words = words[1:]
	}
	return words
}

func appendSeparated(words, more []component.Word) []component.Word {
	if len(more) == 0 {
		return words
	}
	if len(words) > 0 {
		words = append(words, component.NewWord(" ", component.KindNormal))
	}
	return append(words, more...)
}
