package goldmark

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/gomdview/pkg/component"
)

// style accumulates the inline formatting in effect while walking children.
type style struct {
	bold   bool
	italic bool
	strike bool
	code   bool
	link   bool
}

func (s style) kind() component.WordKind {
	switch {
	case s.link:
		return component.KindLink
	case s.code:
		return component.KindCode
	case s.bold && s.italic:
		return component.KindBoldItalic
	case s.bold:
		return component.KindBold
	case s.italic:
		return component.KindItalic
	case s.strike:
		return component.KindStrikethrough
	default:
		return component.KindNormal
	}
}

// inlineCollector gathers words into rows. A hard line break starts a new
// row; link destinations are recorded as LinkData words after the link text.
type inlineCollector struct {
	m    *mapper
	rows [][]component.Word
}

func (c *inlineCollector) add(words ...component.Word) {
	if len(c.rows) == 0 {
		c.rows = append(c.rows, nil)
	}
	last := len(c.rows) - 1
	c.rows[last] = append(c.rows[last], words...)
}

func (c *inlineCollector) newRow() {
	c.rows = append(c.rows, nil)
}

func (c *inlineCollector) walk(parent ast.Node, s style) {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		c.node(child, s)
	}
}

func (c *inlineCollector) node(node ast.Node, s style) {
	switch n := node.(type) {
	case *ast.Text:
		c.add(component.SplitWords(string(n.Value(c.m.content)), s.kind())...)
		switch {
		case n.HardLineBreak():
			c.newRow()
		case n.SoftLineBreak():
			c.add(component.NewWord(" ", s.kind()))
		}

	case *ast.String:
		c.add(component.SplitWords(string(n.Value), s.kind())...)

	case *ast.Emphasis:
		next := s
		if n.Level >= 2 {
			next.bold = true
		} else {
			next.italic = true
		}
		c.walk(n, next)

	case *east.Strikethrough:
		next := s
		next.strike = true
		c.walk(n, next)

	case *ast.CodeSpan:
		next := s
		next.code = true
		c.walk(n, next)

	case *ast.Link:
		next := s
		next.link = true
		c.walk(n, next)
		c.add(component.NewWord(string(n.Destination), component.KindLinkData))

	case *ast.Image:
		next := s
		next.link = true
		before := c.count()
		c.walk(n, next)
		if c.count() == before {
			c.add(component.NewWord("image", component.KindLink))
		}
		c.add(component.NewWord(string(n.Destination), component.KindLinkData))

	case *ast.AutoLink:
		next := s
		next.link = true
		c.add(component.SplitWords(string(n.Label(c.m.content)), next.kind())...)
		c.add(component.NewWord(string(n.URL(c.m.content)), component.KindLinkData))

	case *east.FootnoteLink:
		c.add(component.NewWord("["+strconv.Itoa(n.Index)+"]", component.KindFootnoteRef))

	case *east.TaskCheckBox, *ast.RawHTML, *east.FootnoteBacklink:
		// Task state is block metadata; raw HTML and backlinks are not shown.

	default:
		c.walk(n, s)
	}
}

func (c *inlineCollector) count() int {
	total := 0
	for _, row := range c.rows {
		total += len(row)
	}
	return total
}

// inlineRows collects the inline content of node, split at hard breaks.
// Rows left empty by a trailing break are dropped.
func (m *mapper) inlineRows(node ast.Node, s style) [][]component.Word {
	c := &inlineCollector{m: m}
	c.walk(node, s)
	rows := make([][]component.Word, 0, len(c.rows))
	for _, row := range c.rows {
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// inlineWords collects the inline content of node as one row.
func (m *mapper) inlineWords(node ast.Node, s style) []component.Word {
	var words []component.Word
	for _, row := range m.inlineRows(node, s) {
		words = appendSeparated(words, row)
	}
	return words
}
