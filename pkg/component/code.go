package component

import (
	"strings"
)

// EventKind classifies a highlighter event.
type EventKind uint8

// Highlighter event kinds.
const (
	EventSource EventKind = iota
	EventHighlightStart
	EventHighlightEnd
)

// HighlightEvent is one step of a highlighter's output: a source span
// [Start, End) or a color-scope boundary.
type HighlightEvent struct {
	Kind  EventKind
	Start int
	End   int
	Class HighlightClass
}

// Highlighter tokenizes source code for a language tag. Implementations
// return an error for languages they cannot highlight. Blocks compare
// highlighters with ==, so implementations must be comparable (pointers are).
type Highlighter interface {
	Tokenize(language string, src []byte) ([]HighlightEvent, error)
}

func (b *Block) transformCode(hl Highlighter) {
	if b.highlighted == nil || b.highlightedBy != hl {
		b.highlighted = MergeHighlights(hl, b.Language(), []byte(b.sourceText()))
		b.highlightedBy = hl
	}
	rows := cloneRows(b.highlighted)
	if b.Language() == "" {
		rows = append([][]Word{{NewWord("", KindCodeBlock(ClassDefault))}}, rows...)
	}
	b.Content = rows
	b.height = len(rows)
}

// sourceText joins the retained source rows of a code block with newlines.
func (b *Block) sourceText() string {
	lines := make([]string, len(b.source))
	for i, row := range b.source {
		lines[i] = RowText(row)
	}
	return strings.Join(lines, "\n")
}

// MergeHighlights runs the highlighter over src and folds the events into
// rows of CodeBlock words. The current color is a single slot: a start event
// sets it and an end event resets it to the default. Any highlighter failure
// yields the source as plain rows.
func MergeHighlights(hl Highlighter, language string, src []byte) [][]Word {
	if hl == nil || language == "" {
		return plainRows(src)
	}
	events, err := hl.Tokenize(language, src)
	if err != nil {
		return plainRows(src)
	}

	rows := [][]Word{nil}
	current := ClassDefault
	for _, event := range events {
		switch event.Kind {
		case EventHighlightStart:
			current = event.Class
		case EventHighlightEnd:
			current = ClassDefault
		case EventSource:
			start := max(event.Start, 0)
			end := min(event.End, len(src))
			if start >= end {
				continue
			}
			rows = appendSpan(rows, string(src[start:end]), KindCodeBlock(current))
		}
	}
	return trimTrailingEmpty(rows)
}

// appendSpan appends text to the last row, opening a new row at every line
// break. The partial content after the last break starts the next row.
func appendSpan(rows [][]Word, text string, kind WordKind) [][]Word {
	parts := strings.Split(text, "\n")
	for i, part := range parts {
		if i > 0 {
			rows = append(rows, nil)
		}
		if part == "" {
			continue
		}
		last := len(rows) - 1
		rows[last] = append(rows[last], NewWord(part, kind))
	}
	return rows
}

func plainRows(src []byte) [][]Word {
	lines := strings.Split(string(src), "\n")
	rows := make([][]Word, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []Word{NewWord(line, KindCodeBlock(ClassDefault))})
	}
	return trimTrailingEmpty(rows)
}

// trimTrailingEmpty drops the empty row left behind by a final newline.
func trimTrailingEmpty(rows [][]Word) [][]Word {
	if len(rows) > 1 && RowText(rows[len(rows)-1]) == "" {
		return rows[:len(rows)-1]
	}
	return rows
}
