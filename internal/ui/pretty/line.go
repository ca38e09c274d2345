package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// tabWidth is the number of cells a tab expands to in code rows.
const tabWidth = 4

// lineBuilder assembles one styled terminal line of at most max cells.
// Segments past the limit are cut; once full, further segments are dropped.
type lineBuilder struct {
	buf   strings.Builder
	width int
	max   int
}

func newLine(maxWidth int) *lineBuilder {
	return &lineBuilder{max: max(maxWidth, 0)}
}

// add appends text in style, truncated to the remaining width.
func (l *lineBuilder) add(text string, style lipgloss.Style) {
	if text == "" || l.width >= l.max {
		return
	}
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
	remaining := l.max - l.width
	if runewidth.StringWidth(text) > remaining {
		text = runewidth.Truncate(text, remaining, "")
	}
	l.width += runewidth.StringWidth(text)
	l.buf.WriteString(style.Render(text))
}

// space appends n unstyled cells.
func (l *lineBuilder) space(n int) {
	if n > 0 {
		l.add(strings.Repeat(" ", n), lipgloss.NewStyle())
	}
}

// fill pads the line to its full width in style.
func (l *lineBuilder) fill(style lipgloss.Style) {
	if pad := l.max - l.width; pad > 0 {
		l.add(strings.Repeat(" ", pad), style)
	}
}

func (l *lineBuilder) String() string {
	return l.buf.String()
}
