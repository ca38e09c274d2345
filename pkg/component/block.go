package component

import (
	"strconv"
	"strings"
)

// BlockKind classifies a structural Markdown unit.
type BlockKind uint8

// Block kinds.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockList
	BlockTable
	BlockCodeBlock
	BlockQuote
	BlockTask
	BlockLineBreak
	BlockHorizontalRule
	BlockImage
	BlockFootnote
)

// String returns a human-readable name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockList:
		return "list"
	case BlockTable:
		return "table"
	case BlockCodeBlock:
		return "code_block"
	case BlockQuote:
		return "quote"
	case BlockTask:
		return "task"
	case BlockLineBreak:
		return "line_break"
	case BlockHorizontalRule:
		return "horizontal_rule"
	case BlockImage:
		return "image"
	case BlockFootnote:
		return "footnote"
	default:
		return "unknown"
	}
}

// Block is one structural unit of a document: a grid of renderable words,
// the non-renderable metadata extracted from them, and positional state.
//
// Content is rebuilt from the retained source on every Transform, so marks
// placed on Content words do not survive a re-wrap.
type Block struct {
	kind    BlockKind
	source  [][]Word
	Content [][]Word
	Meta    []Word

	height       int
	yOffset      int
	scrollOffset int
	focused      bool
	focusedIndex int

	// highlighted caches the highlight merge made by highlightedBy; code
	// does not depend on width.
	highlighted   [][]Word
	highlightedBy Highlighter
}

// New creates a block from a flat token stream. Non-renderable words are
// moved into Meta.
func New(kind BlockKind, words []Word) *Block {
	return NewFormatted(kind, [][]Word{words})
}

// NewFormatted creates a block from pre-split rows.
func NewFormatted(kind BlockKind, rows [][]Word) *Block {
	block := &Block{kind: kind}
	block.source = make([][]Word, 0, len(rows))
	targets := 0
	for _, row := range rows {
		kept := make([]Word, 0, len(row))
		for _, word := range row {
			if word.kind.Renderable() {
				// Link text precedes its LinkData word, so the Nth link's
				// words are the link words after N-1 destinations.
				if word.kind.Tag == WordLink {
					word.link = targets + 1
				}
				kept = append(kept, word)
				continue
			}
			if word.kind.Tag == WordLinkData {
				targets++
			}
			block.Meta = append(block.Meta, word)
		}
		block.source = append(block.source, kept)
	}
	block.Content = cloneRows(block.source)
	block.height = len(block.Content)
	switch kind {
	case BlockHeading, BlockLineBreak, BlockHorizontalRule, BlockImage:
		block.height = 1
	case BlockParagraph, BlockList, BlockTable, BlockCodeBlock, BlockQuote, BlockTask, BlockFootnote:
	}
	return block
}

// Kind returns the block kind.
func (b *Block) Kind() BlockKind {
	return b.kind
}

// Height returns the logical height computed by the last transform.
func (b *Block) Height() int {
	return b.height
}

// DisplayHeight returns the number of terminal lines the block occupies.
// Tables draw their header on a line of its own above the body rows.
func (b *Block) DisplayHeight() int {
	if b.kind == BlockTable && len(b.Content) > 0 {
		return b.height + 1
	}
	return b.height
}

// YOffset returns the block's first absolute row.
func (b *Block) YOffset() int {
	return b.yOffset
}

// ScrollOffset returns the scroll offset assigned by the last SetScroll.
func (b *Block) ScrollOffset() int {
	return b.scrollOffset
}

// Focused reports whether the block holds the current link selection.
func (b *Block) Focused() bool {
	return b.focused
}

// FocusedIndex returns the index of the selected link run within the block.
func (b *Block) FocusedIndex() int {
	return b.focusedIndex
}

// MetaValue returns the content of the first metadata word of the given kind.
func (b *Block) MetaValue(meta MetaKind) (string, bool) {
	for i := range b.Meta {
		kind := b.Meta[i].kind
		if kind.Tag == WordMetaInfo && kind.Meta == meta {
			return b.Meta[i].Content, true
		}
	}
	return "", false
}

// HasMeta reports whether a metadata word of the given kind exists.
func (b *Block) HasMeta(meta MetaKind) bool {
	_, ok := b.MetaValue(meta)
	return ok
}

// HeadingLevel returns the heading level, or 0 for non-heading blocks.
func (b *Block) HeadingLevel() int {
	value, ok := b.MetaValue(MetaHeadingLevel)
	if !ok {
		return 0
	}
	level, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return level
}

// Columns returns the table column count, at least 1.
func (b *Block) Columns() int {
	value, ok := b.MetaValue(MetaTableColumns)
	if !ok {
		return 1
	}
	cols, err := strconv.Atoi(value)
	if err != nil || cols < 1 {
		return 1
	}
	return cols
}

// Language returns the declared code block language tag.
func (b *Block) Language() string {
	lang, _ := b.MetaValue(MetaCodeLanguage)
	return lang
}

// Admonition returns the quote admonition kind, or MetaNone.
func (b *Block) Admonition() MetaKind {
	for _, meta := range []MetaKind{MetaNote, MetaTip, MetaImportant, MetaWarning, MetaCaution} {
		if b.HasMeta(meta) {
			return meta
		}
	}
	return MetaNone
}

// Checked reports whether a task block is checked.
func (b *Block) Checked() bool {
	return b.HasMeta(MetaTaskChecked)
}

// Text returns the concatenated content of all rows separated by spaces.
func (b *Block) Text() string {
	var buf strings.Builder
	for i, row := range b.Content {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(RowText(row))
	}
	return buf.String()
}

// LinkTargets returns the destinations recorded in LinkData metadata, in
// document order.
func (b *Block) LinkTargets() []string {
	var targets []string
	for i := range b.Meta {
		if b.Meta[i].kind.Tag == WordLinkData {
			targets = append(targets, b.Meta[i].Content)
		}
	}
	return targets
}

// ContentRow maps a content index to the block-relative display line.
func (b *Block) ContentRow(index int) int {
	if b.kind != BlockTable {
		return index
	}
	return index / b.Columns()
}

func (b *Block) setPosition(yOffset, scrollOffset int) {
	b.yOffset = yOffset
	b.scrollOffset = scrollOffset
}
