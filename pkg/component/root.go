package component

import (
	"fmt"
	"strings"
)

// Root is the document model for one open file. It owns its blocks.
// Navigation replaces a Root wholesale; scrolling, searching and link
// selection mutate it in place.
type Root struct {
	FileName string

	blocks  []*Block
	focused bool
	scroll  int
	width   int
}

// NewRoot creates a document from parsed blocks.
func NewRoot(fileName string, blocks []*Block) *Root {
	return &Root{FileName: fileName, blocks: blocks}
}

// Blocks returns the blocks in document order.
func (r *Root) Blocks() []*Block {
	return r.blocks
}

// Focused reports whether a link in the document is selected.
func (r *Root) Focused() bool {
	return r.focused
}

// Scroll returns the current scroll offset.
func (r *Root) Scroll() int {
	return r.scroll
}

// Width returns the width of the last transform.
func (r *Root) Width() int {
	return r.width
}

// Transform re-wraps every block to width and recomputes offsets.
func (r *Root) Transform(width int, hl Highlighter) {
	r.width = width
	for _, block := range r.blocks {
		block.Transform(width, hl)
	}
	r.focused = false
	r.SetScroll(r.scroll)
}

// SetScroll assigns every block its absolute y offset (the running total of
// the display heights before it) and the global scroll offset. It walks all
// blocks on every call because heights change under re-transform.
func (r *Root) SetScroll(scroll int) {
	r.scroll = max(scroll, 0)
	total := 0
	for _, block := range r.blocks {
		block.setPosition(total, r.scroll)
		total += block.DisplayHeight()
	}
}

// Height returns the total display height of the document.
func (r *Root) Height() int {
	total := 0
	for _, block := range r.blocks {
		total += block.DisplayHeight()
	}
	return total
}

// MaxScroll returns the largest scroll offset that still fills a viewport of
// viewHeight rows.
func (r *Root) MaxScroll(viewHeight int) int {
	return max(r.Height()-viewHeight, 0)
}

// HeadingOffset returns the y offset of the first heading whose slug equals
// anchor. A leading '#' on the anchor is ignored.
func (r *Root) HeadingOffset(anchor string) (int, error) {
	want := strings.ToLower(strings.TrimPrefix(anchor, "#"))
	for _, block := range r.blocks {
		if block.kind != BlockHeading {
			continue
		}
		if Slug(block.Text()) == want {
			return block.yOffset, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrHeadingNotFound, anchor)
}

// Headings returns the slugs of all headings in document order.
func (r *Root) Headings() []string {
	var slugs []string
	for _, block := range r.blocks {
		if block.kind == BlockHeading {
			slugs = append(slugs, Slug(block.Text()))
		}
	}
	return slugs
}

// Slug converts heading text to an anchor: lowercased, parentheses
// stripped, whitespace-separated words joined with '-'.
func Slug(text string) string {
	text = strings.ToLower(text)
	text = strings.NewReplacer("(", "", ")", "").Replace(text)
	return strings.Join(strings.Fields(text), "-")
}
