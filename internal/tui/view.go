package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomdview/internal/ui/pretty"
)

// View renders the screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body []string
	switch m.mode {
	case modeFileTree, modeTreeSearch:
		body = m.treeView()
	case modeHelp:
		body = m.helpView()[m.helpScroll:]
	case modeView, modeLinks, modeSearch:
		body = m.documentView()
	}
	body = padLines(body, m.viewHeight())
	return strings.Join(append(body, m.bottomLine()), "\n")
}

func (m *Model) documentView() []string {
	if m.root == nil {
		return nil
	}
	return m.renderer().Viewport(m.root, m.viewHeight())
}

func (m *Model) helpView() []string {
	lines := []string{m.styles.Heading(1).Render(" Keys"), ""}
	lines = append(lines, m.styles.HelpLines(m.opts.Config.Keys.Bindings())...)
	lines = append(lines, "", "  "+m.styles.HelpKey.Render("esc")+"  "+m.keys.Escape.Help().Desc)
	lines = append(lines, "  "+m.styles.HelpKey.Render("ctrl+c")+"  "+m.keys.Quit.Help().Desc)
	return lines
}

func (m *Model) treeView() []string {
	title := "Files in " + m.treeRoot
	if abs, err := filepath.Abs(m.treeRoot); err == nil {
		title = "Files in " + abs
	}
	lines := []string{m.styles.Heading(1).Render(" " + title), ""}

	selected, hasSelection := m.tree.SelectedOnPage()
	for i, entry := range m.tree.Page() {
		line := "  " + entry.Name
		if hasSelection && i == selected {
			line = m.styles.Selected.Render(line + "  ")
		}
		lines = append(lines, line, "")
	}

	if m.tree.FileCount() == 0 {
		switch {
		case !m.tree.Finished():
			lines = append(lines, m.styles.Dim.Render("  searching…"))
		case m.tree.Query() != "":
			lines = append(lines, m.styles.Dim.Render("  no files match "+m.tree.Query()))
		default:
			lines = append(lines, m.styles.Dim.Render("  no markdown files found"))
		}
	}
	return lines
}

func (m *Model) bottomLine() string {
	if m.mode == modeSearch || m.mode == modeTreeSearch {
		return m.input.View()
	}
	if m.message != "" {
		return m.styles.MessageLine(m.width, m.message, m.messageErr)
	}
	return m.styles.StatusLine(m.width, m.statusLeft(), m.statusRight())
}

func (m *Model) statusLeft() string {
	switch m.mode {
	case modeFileTree, modeTreeSearch:
		if q := m.tree.Query(); q != "" {
			return " /" + q
		}
		return " file tree"
	case modeLinks:
		return fmt.Sprintf(" link %d/%d", m.linkIndex+1, m.root.NumLinks())
	case modeHelp:
		return " help"
	case modeView, modeSearch:
	}
	if m.path == "" {
		return ""
	}
	name := filepath.Base(m.path)
	if len(m.results) > 0 {
		name += fmt.Sprintf("  [%d/%d] %s", m.resultIndex+1, len(m.results), m.query)
	}
	return " " + name
}

func (m *Model) statusRight() string {
	switch m.mode {
	case modeFileTree, modeTreeSearch:
		return fmt.Sprintf("%d files  %d/%d ", m.tree.FileCount(), m.tree.PageIndex()+1, max(m.tree.PageCount(), 1))
	case modeHelp:
		return pretty.Position(m.helpScroll, m.maxHelpScroll()) + " "
	case modeView, modeLinks, modeSearch:
	}
	if m.root == nil {
		return ""
	}
	return pretty.Position(m.root.Scroll(), m.root.MaxScroll(m.viewHeight())) + " "
}

func padLines(lines []string, height int) []string {
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
