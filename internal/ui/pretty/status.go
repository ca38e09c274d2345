package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdview/pkg/config"
)

// StatusLine renders the bottom bar: left-aligned text and a right-aligned
// position indicator, padded to width.
func (s *Styles) StatusLine(width int, left, right string) string {
	width = max(width, 0)
	rightWidth := runewidth.StringWidth(right)
	room := max(width-rightWidth-1, 0)
	left = runewidth.Truncate(left, room, "…")
	gap := max(width-runewidth.StringWidth(left)-rightWidth, 0)
	text := runewidth.Truncate(left+strings.Repeat(" ", gap)+right, width, "")
	return s.Status.Render(PadRight(text, width))
}

// Position formats the scroll position as a percentage of the scrollable range.
func Position(scroll, maxScroll int) string {
	switch {
	case maxScroll <= 0:
		return "All"
	case scroll <= 0:
		return "Top"
	case scroll >= maxScroll:
		return "Bot"
	default:
		return fmt.Sprintf("%d%%", scroll*100/maxScroll)
	}
}

// MessageLine renders a transient message over the status bar. Errors use
// the error style.
func (s *Styles) MessageLine(width int, text string, isError bool) string {
	style := s.Message
	if isError {
		style = s.Error
	}
	text = runewidth.Truncate(" "+text, max(width, 0), "…")
	return style.Render(PadRight(text, width))
}

// HelpLines renders one line per key binding, keys right-aligned in a column.
func (s *Styles) HelpLines(bindings []config.Binding) []string {
	keyWidth := 0
	for _, binding := range bindings {
		keyWidth = max(keyWidth, runewidth.StringWidth(binding.Key))
	}
	lines := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		key := strings.Repeat(" ", keyWidth-runewidth.StringWidth(binding.Key)) + binding.Key
		lines = append(lines, "  "+s.HelpKey.Render(key)+"  "+binding.Action.Description())
	}
	return lines
}
