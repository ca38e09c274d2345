package component

import (
	"fmt"
	"strings"
)

// LinkPosition locates one link run: its absolute index across the document
// and the absolute row its first token is drawn on.
type LinkPosition struct {
	Index int
	Row   int
}

// Link is a selected link run and its destination.
type Link struct {
	Text   string
	Target string
}

type wordRef struct {
	row int
	col int
}

// linkRuns groups the words of each link into runs. A run continues across
// fillers and row breaks only while the words belong to the same link, so
// adjacent links never merge whatever the wrap width. Table cells always end
// a run.
func (b *Block) linkRuns() [][]wordRef {
	var runs [][]wordRef
	current := 0
	for r, row := range b.Content {
		if b.kind == BlockTable {
			current = 0
		}
		for c := range row {
			word := &row[c]
			if word.link == 0 {
				if word.kind.Tag != WordWhite {
					current = 0
				}
				continue
			}
			if word.link != current {
				runs = append(runs, nil)
				current = word.link
			}
			runs[len(runs)-1] = append(runs[len(runs)-1], wordRef{row: r, col: c})
		}
	}
	return runs
}

// NumLinks returns the number of link runs in the block.
func (b *Block) NumLinks() int {
	return len(b.linkRuns())
}

func (b *Block) selectLink(index int) bool {
	runs := b.linkRuns()
	if index < 0 || index >= len(runs) {
		return false
	}
	for _, ref := range runs[index] {
		b.Content[ref.row][ref.col].Mark(KindSelected)
	}
	b.focused = true
	b.focusedIndex = index
	return true
}

func (b *Block) clearMarks() {
	for r := range b.Content {
		for c := range b.Content[r] {
			b.Content[r][c].Clear()
		}
	}
	b.focused = false
	b.focusedIndex = 0
}

// LinkIndexAndHeight lists every link run in document order with the
// absolute row it starts on. Selected runs are included so a selection can
// be found again after scrolling.
func (r *Root) LinkIndexAndHeight() []LinkPosition {
	var positions []LinkPosition
	index := 0
	for _, block := range r.blocks {
		for _, run := range block.linkRuns() {
			positions = append(positions, LinkPosition{
				Index: index,
				Row:   block.yOffset + block.ContentRow(run[0].row),
			})
			index++
		}
	}
	return positions
}

// NumLinks returns the number of link runs in the document.
func (r *Root) NumLinks() int {
	total := 0
	for _, block := range r.blocks {
		total += block.NumLinks()
	}
	return total
}

// SelectLink deselects everything, then marks the link run with the given
// absolute index as Selected. It returns the owning block's y offset.
func (r *Root) SelectLink(index int) (int, error) {
	r.Deselect()
	if index < 0 {
		return 0, fmt.Errorf("%w: %d", ErrLinkOutOfRange, index)
	}
	remaining := index
	for _, block := range r.blocks {
		count := block.NumLinks()
		if remaining < count {
			block.selectLink(remaining)
			r.focused = true
			return block.yOffset, nil
		}
		remaining -= count
	}
	return 0, fmt.Errorf("%w: %d", ErrLinkOutOfRange, index)
}

// Deselect clears every mark in the document.
func (r *Root) Deselect() {
	for _, block := range r.blocks {
		block.clearMarks()
	}
	r.focused = false
}

// SelectedLink returns the text and destination of the selected link run.
// A run pairs with the LinkData word recorded for its link.
func (r *Root) SelectedLink() (Link, error) {
	for _, block := range r.blocks {
		if !block.focused {
			continue
		}
		runs := block.linkRuns()
		if block.focusedIndex >= len(runs) {
			break
		}
		var text strings.Builder
		for _, ref := range runs[block.focusedIndex] {
			text.WriteString(block.Content[ref.row][ref.col].Content)
		}
		run := runs[block.focusedIndex]
		link := Link{Text: strings.TrimSpace(text.String())}
		id := block.Content[run[0].row][run[0].col].link
		if targets := block.LinkTargets(); id <= len(targets) {
			link.Target = targets[id-1]
		}
		return link, nil
	}
	return Link{}, ErrNoSelection
}

// NearestLinkBelow returns the index of the first link at or below the
// scroll offset. It walks the index backwards and keeps the last candidate
// before a row falls above the scroll offset.
func (r *Root) NearestLinkBelow(scroll int) (int, bool) {
	positions := r.LinkIndexAndHeight()
	found := false
	candidate := 0
	for i := len(positions) - 1; i >= 0; i-- {
		if positions[i].Row < scroll {
			break
		}
		candidate = positions[i].Index
		found = true
	}
	return candidate, found
}

// NearestLinkToCenter returns the index of the link closest to the upper
// third of a viewport of viewHeight rows scrolled to scroll.
func (r *Root) NearestLinkToCenter(scroll, viewHeight int) (int, bool) {
	positions := r.LinkIndexAndHeight()
	if len(positions) == 0 {
		return 0, false
	}
	center := scroll + viewHeight/3
	best := positions[0]
	for _, pos := range positions[1:] {
		if abs(pos.Row-center) < abs(best.Row-center) {
			best = pos
		}
	}
	return best.Index, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
