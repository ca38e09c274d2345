package component

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gomdview/pkg/search"
)

// segment maps a rune range of a block's search text back to its token.
type segment struct {
	start int
	end   int
	ref   wordRef
}

// searchText concatenates the block's visible tokens. Rows are joined by a
// virtual space that maps to no token, so words split across rows still
// read as separate words. Fillers are skipped.
func (b *Block) searchText() (string, []segment) {
	var buf strings.Builder
	var segments []segment
	offset := 0
	for r, row := range b.Content {
		if r > 0 {
			buf.WriteByte(' ')
			offset++
		}
		for c := range row {
			if row[c].kind.Tag == WordWhite {
				continue
			}
			n := utf8.RuneCountInString(row[c].Content)
			buf.WriteString(row[c].Content)
			segments = append(segments, segment{start: offset, end: offset + n, ref: wordRef{row: r, col: c}})
			offset += n
		}
	}
	return buf.String(), segments
}

// FindAndMark clears previous marks, then searches every block for query
// and marks each token overlapping a match as Selected. An exact pass runs
// over the whole document first; only when it finds nothing is a one-edit
// pass tried. It returns the number of matches.
func (r *Root) FindAndMark(query string) int {
	r.Deselect()
	if strings.TrimSpace(query) == "" {
		return 0
	}

	size := utf8.RuneCountInString(query)
	window := search.WindowSize(query)
	for threshold := 0; threshold <= search.MaxBackoff; threshold++ {
		matches := 0
		for _, block := range r.blocks {
			text, segments := block.searchText()
			offsets := search.Find(query, text, threshold)
			for _, off := range offsets {
				block.markRange(segments, off, off+size, window)
			}
			matches += len(offsets)
		}
		if matches > 0 {
			return matches
		}
	}
	return 0
}

// markRange marks the tokens overlapping [start, end), at most window of
// them. Tokens glued together without whitespace count as one, and a row
// join counts as a separator.
func (b *Block) markRange(segments []segment, start, end, window int) {
	units, prevEnd, prevSpace := 0, 0, false
	for _, seg := range segments {
		if seg.end <= start || seg.start >= end {
			continue
		}
		word := &b.Content[seg.ref.row][seg.ref.col]
		space := word.IsWhitespace()
		switch {
		case units == 0 && space:
			continue
		case units == 0:
			units = 1
		case seg.start != prevEnd:
			units += 2
		case space || prevSpace:
			units++
		}
		if units > window {
			return
		}
		prevEnd, prevSpace = seg.end, space
		// Overlapping matches must not mark twice: the stash holds one kind.
		if _, marked := word.PreviousKind(); marked {
			continue
		}
		word.Mark(KindSelected)
	}
}

// SearchResultHeights returns, in ascending order, the absolute rows that
// contain at least one Selected token.
func (r *Root) SearchResultHeights() []int {
	var rows []int
	for _, block := range r.blocks {
		last := -1
		for idx, row := range block.Content {
			line := block.yOffset + block.ContentRow(idx)
			if line == last {
				continue
			}
			for c := range row {
				if row[c].kind.Tag == WordSelected {
					rows = append(rows, line)
					last = line
					break
				}
			}
		}
	}
	return rows
}

// ClearSearch restores every marked token to its previous kind.
func (r *Root) ClearSearch() {
	r.Deselect()
}
