// Package component provides the document layout engine for gomdview.
// It models a parsed Markdown file as a Root holding typed Blocks, each a grid
// of styled Words, and implements width-dependent wrapping, viewport clipping,
// link selection and in-document search on top of that model.
package component

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WordTag classifies a Word.
type WordTag uint8

// Word tags. MetaInfo and LinkData are non-renderable.
const (
	WordNormal WordTag = iota
	WordWhite
	WordCode
	WordBold
	WordItalic
	WordBoldItalic
	WordStrikethrough
	WordLink
	WordListMarker
	WordSelected
	WordCodeBlock
	WordFootnoteRef
	WordMetaInfo
	WordLinkData
)

// MetaKind is the payload of a MetaInfo word.
type MetaKind uint8

const (
	MetaNone MetaKind = iota
	MetaListDepth
	MetaListOrdered
	MetaListUnordered
	MetaTableColumns
	MetaTableAlignment
	MetaCodeLanguage
	MetaHeadingLevel
	MetaQuoteIndent
	MetaNote
	MetaTip
	MetaImportant
	MetaWarning
	MetaCaution
	MetaTaskChecked
	MetaTaskUnchecked
)

// HighlightClass identifies a syntax-highlight color slot.
type HighlightClass uint8

// Highlight classes map onto the configurable code palette.
const (
	ClassDefault HighlightClass = iota
	ClassKeyword
	ClassString
	ClassComment
	ClassNumber
	ClassFunction
	ClassType
	ClassOperator
	ClassPunctuation
	ClassVariable
	ClassConstant
	ClassBuiltin
	ClassTag
	ClassAttribute
)

// WordKind is a tagged variant: Tag selects the case, Class is only set for
// WordCodeBlock and Meta only for WordMetaInfo.
type WordKind struct {
	Tag   WordTag
	Class HighlightClass
	Meta  MetaKind
}

// Kind constructors for the payload-less tags.
//
//nolint:gochecknoglobals // Immutable value constants.
var (
	KindNormal        = WordKind{Tag: WordNormal}
	KindWhite         = WordKind{Tag: WordWhite}
	KindCode          = WordKind{Tag: WordCode}
	KindBold          = WordKind{Tag: WordBold}
	KindItalic        = WordKind{Tag: WordItalic}
	KindBoldItalic    = WordKind{Tag: WordBoldItalic}
	KindStrikethrough = WordKind{Tag: WordStrikethrough}
	KindLink          = WordKind{Tag: WordLink}
	KindListMarker    = WordKind{Tag: WordListMarker}
	KindSelected      = WordKind{Tag: WordSelected}
	KindFootnoteRef   = WordKind{Tag: WordFootnoteRef}
	KindLinkData      = WordKind{Tag: WordLinkData}
)

// KindCodeBlock returns the kind of a highlighted code token.
func KindCodeBlock(class HighlightClass) WordKind {
	return WordKind{Tag: WordCodeBlock, Class: class}
}

// KindMeta returns the kind of a non-renderable metadata word.
func KindMeta(meta MetaKind) WordKind {
	return WordKind{Tag: WordMetaInfo, Meta: meta}
}

// Renderable reports whether words of this kind are drawn.
func (k WordKind) Renderable() bool {
	return k.Tag != WordMetaInfo && k.Tag != WordLinkData
}

// IsLinkLike reports whether the kind counts toward link runs.
func (k WordKind) IsLinkLike() bool {
	return k.Tag == WordLink || k.Tag == WordSelected
}

// Word is the smallest styled unit of text.
//
// Mark and Clear form a push/pop of depth one: marking an already marked word
// overwrites the stash, so nested marking is not supported.
type Word struct {
	Content string
	kind    WordKind
	prev    WordKind
	stashed bool

	// link is the 1-based ordinal of the link this word belongs to within
	// its block, or 0. It survives wrapping and marking.
	link int
}

// NewWord creates a word with the given content and kind.
func NewWord(content string, kind WordKind) Word {
	return Word{Content: content, kind: kind}
}

// Kind returns the current kind.
func (w *Word) Kind() WordKind {
	return w.kind
}

// SetKind replaces the kind without touching the stash.
func (w *Word) SetKind(kind WordKind) {
	w.kind = kind
}

// PreviousKind returns the stashed kind, if any.
func (w *Word) PreviousKind() (WordKind, bool) {
	return w.prev, w.stashed
}

// Mark stashes the current kind and switches to kind.
func (w *Word) Mark(kind WordKind) {
	w.prev = w.kind
	w.stashed = true
	w.kind = kind
}

// Clear restores the stashed kind. It is a no-op on unmarked words.
func (w *Word) Clear() {
	if !w.stashed {
		return
	}
	w.kind = w.prev
	w.prev = WordKind{}
	w.stashed = false
}

// LinkID returns the block-local link ordinal of the word, or 0 when the
// word is not part of a link.
func (w *Word) LinkID() int {
	return w.link
}

// Width returns the display width of the content in terminal cells.
func (w *Word) Width() int {
	return runewidth.StringWidth(w.Content)
}

// IsWhitespace reports whether the content is empty or only whitespace.
func (w *Word) IsWhitespace() bool {
	return strings.TrimSpace(w.Content) == ""
}

// RowWidth returns the summed display width of a row of words.
func RowWidth(row []Word) int {
	total := 0
	for i := range row {
		total += row[i].Width()
	}
	return total
}

// RowText concatenates the content of a row.
func RowText(row []Word) string {
	var buf strings.Builder
	for i := range row {
		buf.WriteString(row[i].Content)
	}
	return buf.String()
}

// SplitWords splits text into alternating word and whitespace tokens of the
// given kind. Whitespace runs become separate tokens so the wrapper can defer
// them.
func SplitWords(text string, kind WordKind) []Word {
	var words []Word
	start := 0
	inSpace := false
	for idx, r := range text {
		space := r == ' ' || r == '\t' || r == '\n'
		if idx == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			words = append(words, NewWord(normalizeSpace(text[start:idx], inSpace), kind))
			start = idx
			inSpace = space
		}
	}
	if start < len(text) {
		words = append(words, NewWord(normalizeSpace(text[start:], inSpace), kind))
	}
	return words
}

func normalizeSpace(s string, space bool) string {
	if !space {
		return s
	}
	return " "
}

func cloneRows(rows [][]Word) [][]Word {
	out := make([][]Word, len(rows))
	for i, row := range rows {
		out[i] = append([]Word(nil), row...)
	}
	return out
}
