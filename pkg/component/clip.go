package component

// ClipKind classifies how a block intersects the viewport.
type ClipKind uint8

const (
	// ClipNone means the block is fully visible.
	ClipNone ClipKind = iota
	// ClipUpper means the block starts above the viewport top.
	ClipUpper
	// ClipLower means the block extends past the viewport bottom.
	ClipLower
	// ClipBoth means the block is cut at both edges.
	ClipBoth
)

// String returns a human-readable name for the clip kind.
func (k ClipKind) String() string {
	switch k {
	case ClipNone:
		return "none"
	case ClipUpper:
		return "upper"
	case ClipLower:
		return "lower"
	case ClipBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Clipping describes the rows of a block that fall inside the viewport.
// When Visible is false the block must be skipped; Start and End are then
// both zero. Otherwise 0 <= Start <= End <= height, and ScreenY is the
// viewport row the first kept row is drawn on.
type Clipping struct {
	Kind    ClipKind
	Visible bool
	Start   int
	End     int
	ScreenY int
}

// Rows returns the number of rows kept.
func (c Clipping) Rows() int {
	return c.End - c.Start
}

// Clip computes the visible row range of a block occupying height rows from
// absolute row yOffset, for a viewport of viewHeight rows scrolled to scroll.
// Negative inputs are clamped to zero; nothing here can panic.
func Clip(yOffset, height, scroll, viewHeight int) Clipping {
	yOffset = max(yOffset, 0)
	height = max(height, 0)
	scroll = max(scroll, 0)
	viewHeight = max(viewHeight, 0)

	// Skip before any drop arithmetic: no overlap means nothing to drain.
	if height == 0 || viewHeight == 0 || yOffset+height <= scroll || yOffset >= scroll+viewHeight {
		return Clipping{}
	}

	upper := scroll > yOffset
	lower := (yOffset+height)-scroll > viewHeight

	clip := Clipping{Visible: true, End: height}
	switch {
	case upper && lower:
		clip.Kind = ClipBoth
		clip.Start = satSub(scroll, yOffset)
		clip.End = min(clip.Start+viewHeight, height)
	case upper:
		clip.Kind = ClipUpper
		clip.Start = min(satSub(scroll, yOffset), height)
	case lower:
		clip.Kind = ClipLower
		clip.ScreenY = satSub(yOffset, scroll)
		clip.End = min(satSub(viewHeight, clip.ScreenY), height)
	default:
		clip.Kind = ClipNone
		clip.ScreenY = satSub(yOffset, scroll)
	}
	return clip
}

// Drain returns the rows selected by c. Out-of-range clippings yield nil.
func Drain[T any](rows []T, c Clipping) []T {
	if !c.Visible {
		return nil
	}
	start := min(max(c.Start, 0), len(rows))
	end := min(max(c.End, start), len(rows))
	return rows[start:end]
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
