package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdview/pkg/component"
)

// Glyphs drawn around block content.
const (
	quoteBar       = "▌"
	ruleGlyph      = "─"
	tableSeparator = "│"
	imagePrefix    = "▣ "
	taskChecked    = "[x] "
	taskUnchecked  = "[ ] "
	taskHang       = "    "
)

// RenderOptions configures a Renderer.
type RenderOptions struct {
	// Width is the document width blocks were transformed to.
	Width int

	// Margin is the number of blank cells in front of every line.
	Margin int
}

// Renderer turns transformed blocks into styled terminal lines.
type Renderer struct {
	styles *Styles
	opts   RenderOptions
}

// NewRenderer creates a renderer drawing with styles.
func NewRenderer(styles *Styles, opts RenderOptions) *Renderer {
	opts.Width = max(opts.Width, 1)
	opts.Margin = max(opts.Margin, 0)
	return &Renderer{styles: styles, opts: opts}
}

// Document renders every block of root in order.
func (r *Renderer) Document(root *component.Root) []string {
	lines := make([]string, 0, root.Height())
	for _, block := range root.Blocks() {
		lines = append(lines, r.Block(block)...)
	}
	return lines
}

// Viewport renders the rows of root visible at its current scroll offset in
// a view of viewHeight rows. Blocks outside the view are never rendered.
// The result is padded with empty lines to exactly viewHeight entries.
func (r *Renderer) Viewport(root *component.Root, viewHeight int) []string {
	viewHeight = max(viewHeight, 0)
	lines := make([]string, 0, viewHeight)
	for _, block := range root.Blocks() {
		clip := component.Clip(block.YOffset(), block.DisplayHeight(), root.Scroll(), viewHeight)
		if !clip.Visible {
			if block.YOffset() >= root.Scroll()+viewHeight {
				break
			}
			continue
		}
		lines = append(lines, component.Drain(r.Block(block), clip)...)
	}
	for len(lines) < viewHeight {
		lines = append(lines, "")
	}
	return lines[:viewHeight]
}

// Block renders b as exactly b.DisplayHeight() lines.
func (r *Renderer) Block(b *component.Block) []string {
	var lines []string
	switch b.Kind() {
	case component.BlockHeading:
		lines = []string{r.heading(b)}
	case component.BlockHorizontalRule:
		line := newLine(r.opts.Width)
		line.add(strings.Repeat(ruleGlyph, r.opts.Width), r.styles.HorizontalRule)
		lines = []string{line.String()}
	case component.BlockLineBreak:
		lines = []string{""}
	case component.BlockImage:
		lines = []string{r.image(b)}
	case component.BlockQuote:
		lines = r.quote(b)
	case component.BlockTask:
		lines = r.task(b)
	case component.BlockTable:
		lines = r.table(b)
	case component.BlockCodeBlock:
		lines = r.code(b)
	case component.BlockParagraph, component.BlockList, component.BlockFootnote:
		lines = r.rows(b.Content)
	default:
		lines = r.rows(b.Content)
	}
	return r.indent(fit(lines, b.DisplayHeight()))
}

// fit pads or cuts lines to height entries.
func fit(lines []string, height int) []string {
	height = max(height, 0)
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}

func (r *Renderer) indent(lines []string) []string {
	if r.opts.Margin == 0 {
		return lines
	}
	margin := strings.Repeat(" ", r.opts.Margin)
	for i, line := range lines {
		if line != "" {
			lines[i] = margin + line
		}
	}
	return lines
}

func (r *Renderer) words(line *lineBuilder, row []component.Word) {
	for i := range row {
		line.add(row[i].Content, r.styles.Word(row[i].Kind()))
	}
}

func (r *Renderer) rows(rows [][]component.Word) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line := newLine(r.opts.Width)
		r.words(line, row)
		lines = append(lines, line.String())
	}
	return lines
}

func (r *Renderer) heading(b *component.Block) string {
	style := r.styles.Heading(b.HeadingLevel())
	line := newLine(r.opts.Width)
	if len(b.Content) == 0 {
		return ""
	}
	row := b.Content[0]
	if b.HeadingLevel() == 1 {
		line.space((r.opts.Width - component.RowWidth(row)) / 2)
	}
	for i := range row {
		kind := row[i].Kind()
		if kind.IsLinkLike() {
			line.add(row[i].Content, r.styles.Word(kind))
			continue
		}
		line.add(row[i].Content, style)
	}
	return line.String()
}

func (r *Renderer) image(b *component.Block) string {
	line := newLine(r.opts.Width)
	line.add(imagePrefix, r.styles.Link)
	if len(b.Content) > 0 {
		r.words(line, b.Content[0])
	}
	return line.String()
}

func (r *Renderer) quote(b *component.Block) []string {
	accent := r.styles.Admonition(b.Admonition())
	lines := make([]string, 0, len(b.Content))
	for i, row := range b.Content {
		line := newLine(r.opts.Width)
		line.add(quoteBar, accent)
		if i == 0 && b.Admonition() != component.MetaNone {
			for j := range row {
				line.add(row[j].Content, accent.Bold(true))
			}
		} else {
			r.words(line, row)
		}
		lines = append(lines, line.String())
	}
	return lines
}

func (r *Renderer) task(b *component.Block) []string {
	box, style := taskUnchecked, r.styles.TaskUnchecked
	if b.Checked() {
		box, style = taskChecked, r.styles.TaskChecked
	}
	lines := make([]string, 0, len(b.Content))
	for i, row := range b.Content {
		line := newLine(r.opts.Width)
		if i == 0 {
			line.add(box, style)
		} else {
			line.add(taskHang, lipgloss.NewStyle())
		}
		r.words(line, row)
		lines = append(lines, line.String())
	}
	return lines
}

func (r *Renderer) code(b *component.Block) []string {
	lines := make([]string, 0, len(b.Content))
	for _, row := range b.Content {
		line := newLine(r.opts.Width)
		line.add(" ", r.styles.CodeBlock)
		r.words(line, row)
		line.fill(r.styles.CodeBlock)
		lines = append(lines, line.String())
	}
	return lines
}

func (r *Renderer) table(b *component.Block) []string {
	rows := b.TableRows()
	if len(rows) == 0 {
		return nil
	}
	widths := b.ColumnWidths()
	aligns := b.Alignments()

	lines := make([]string, 0, len(rows))
	for idx, row := range rows {
		line := newLine(r.opts.Width)
		for col, cell := range row {
			if col > 0 {
				line.add(tableSeparator, r.styles.TableBorder)
			}
			align := component.AlignNone
			if col < len(aligns) {
				align = aligns[col]
			}
			left, right := cellPadding(align, widths[col]-component.RowWidth(cell))
			line.space(left + 1)
			if idx == 0 {
				for i := range cell {
					line.add(cell[i].Content, r.styles.TableHeader)
				}
			} else {
				r.words(line, cell)
			}
			line.space(right)
		}
		lines = append(lines, line.String())
	}
	return lines
}

// cellPadding splits spare cells around a cell for the column alignment.
func cellPadding(align string, spare int) (int, int) {
	spare = max(spare, 0)
	switch align {
	case component.AlignRight:
		return spare, 0
	case component.AlignCenter:
		return spare / 2, spare - spare/2
	default:
		return 0, spare
	}
}

// Width returns the display width of a rendered line with styling removed.
func Width(line string) int {
	return lipgloss.Width(line)
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
