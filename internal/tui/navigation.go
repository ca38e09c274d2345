package tui

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/pkg/component"
	"github.com/yaklabco/gomdview/pkg/discovery"
)

var (
	// ErrNoLinks is shown when link selection is requested in a document
	// without links.
	ErrNoLinks = errors.New("no links in document")

	// ErrNoHistory is shown when going back from the first document.
	ErrNoHistory = errors.New("no previous document")

	// ErrEmptyTarget is shown when following a link without a destination.
	ErrEmptyTarget = errors.New("link has no target")

	// ErrNoFileSelected is shown when opening from the file tree without a
	// selection.
	ErrNoFileSelected = errors.New("no file selected")
)

// enterLinkMode selects the link nearest to the upper third of the view.
func (m *Model) enterLinkMode() tea.Cmd {
	if m.root == nil {
		return nil
	}
	index, ok := m.root.NearestLinkToCenter(m.root.Scroll(), m.viewHeight())
	if !ok {
		return m.showError(ErrNoLinks)
	}
	m.root.ClearSearch()
	m.results = nil
	m.mode = modeLinks
	return m.selectLink(index)
}

// selectLink selects the link with the given index, wrapping around at the
// ends, and scrolls it into view.
func (m *Model) selectLink(index int) tea.Cmd {
	count := m.root.NumLinks()
	if count == 0 {
		return m.showError(ErrNoLinks)
	}
	index = ((index % count) + count) % count
	if _, err := m.root.SelectLink(index); err != nil {
		return m.showError(err)
	}
	m.linkIndex = index
	positions := m.root.LinkIndexAndHeight()
	if index < len(positions) {
		m.revealIfHidden(positions[index].Row)
	}
	return nil
}

// keepLinkInView re-selects when paging in link mode moved the selected
// link off screen: the first link at or below the new scroll offset wins.
func (m *Model) keepLinkInView() tea.Cmd {
	if m.mode != modeLinks {
		return nil
	}
	scroll := m.root.Scroll()
	positions := m.root.LinkIndexAndHeight()
	if m.linkIndex < len(positions) {
		row := positions[m.linkIndex].Row
		if row >= scroll && row < scroll+m.viewHeight() {
			return nil
		}
	}
	index, ok := m.root.NearestLinkBelow(scroll)
	if !ok {
		index, ok = m.root.NearestLinkToCenter(scroll, m.viewHeight())
	}
	if !ok {
		return nil
	}
	if _, err := m.root.SelectLink(index); err != nil {
		return m.showError(err)
	}
	m.linkIndex = index
	return nil
}

func (m *Model) leaveLinkMode() {
	if m.mode != modeLinks {
		return
	}
	if m.root != nil {
		m.root.Deselect()
	}
	m.mode = modeView
}

// followLink acts on the selected link: anchors scroll, Markdown files open
// in the viewer and everything else goes to the external opener.
func (m *Model) followLink() tea.Cmd {
	link, err := m.root.SelectedLink()
	if err != nil {
		return m.showError(err)
	}
	target := strings.TrimSpace(link.Target)
	m.logger.Debug("follow link", logging.FieldTarget, target)

	switch {
	case target == "":
		return m.showError(ErrEmptyTarget)
	case strings.HasPrefix(target, "#"):
		offset, err := m.root.HeadingOffset(target)
		if err != nil {
			return m.showError(err)
		}
		m.leaveLinkMode()
		m.setScroll(offset)
		return nil
	case isExternal(target):
		return m.openExternal(target)
	}

	path, anchor, _ := strings.Cut(target, "#")
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(m.path), path)
	}
	if !m.isMarkdown(path) {
		return m.openExternal(path)
	}
	if anchor != "" {
		anchor = "#" + anchor
	}
	return m.load(loadOpen, path, anchor, 0)
}

func isExternal(target string) bool {
	parsed, err := url.Parse(target)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "ftp":
		return true
	default:
		return false
	}
}

func (m *Model) isMarkdown(path string) bool {
	extensions := m.opts.Config.General.Extensions
	if len(extensions) == 0 {
		extensions = discovery.DefaultExtensions()
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// back reopens the previous document at its scroll offset. The history
// entry is dropped only once the load succeeds.
func (m *Model) back() tea.Cmd {
	if len(m.history) == 0 {
		return m.showError(ErrNoHistory)
	}
	prev := m.history[len(m.history)-1]
	return m.load(loadBack, prev.path, "", prev.scroll)
}

// hover shows the selected link's destination.
func (m *Model) hover() tea.Cmd {
	link, err := m.root.SelectedLink()
	if err != nil {
		return m.showError(err)
	}
	if link.Target == "" {
		return m.showError(ErrEmptyTarget)
	}
	return m.showMessage(link.Target, false)
}

// yank copies the selected link's destination to the clipboard.
func (m *Model) yank() tea.Cmd {
	link, err := m.root.SelectedLink()
	if err != nil {
		return m.showError(err)
	}
	if err := m.opts.Clipboard(link.Target); err != nil {
		return m.showError(fmt.Errorf("copy to clipboard: %w", err))
	}
	return m.showMessage("copied "+link.Target, false)
}

// applyDocument commits a successfully loaded document.
func (m *Model) applyDocument(msg documentLoadedMsg) tea.Cmd {
	previous := m.path
	switch msg.kind {
	case loadOpen:
		if m.root != nil {
			m.history = append(m.history, historyEntry{path: m.path, scroll: m.root.Scroll()})
		}
	case loadBack:
		m.history = m.history[:len(m.history)-1]
	case loadReload:
		if m.root != nil {
			msg.scroll = m.root.Scroll()
		}
	case loadInitial:
	}

	m.root = msg.root
	m.path = msg.path
	m.info = msg.info
	m.results = nil
	if msg.kind != loadReload || m.mode == modeLinks {
		m.mode = modeView
	}
	m.root.Transform(m.documentWidth(), m.opts.Highlighter)
	m.setScroll(msg.scroll)

	m.logger.Debug("document loaded",
		logging.FieldPath, msg.path,
		logging.FieldBlocks, len(m.root.Blocks()),
		logging.FieldHeight, m.root.Height(),
	)

	var cmds []tea.Cmd
	if msg.anchor != "" {
		offset, err := m.root.HeadingOffset(msg.anchor)
		if err != nil {
			cmds = append(cmds, m.showError(err))
		} else {
			m.setScroll(offset)
		}
	}
	if msg.path != previous || m.watcher == nil {
		if m.watcher != nil {
			_ = m.watcher.Close()
			m.watcher = nil
		}
		cmds = append(cmds, startWatch(msg.path))
	}
	return tea.Batch(cmds...)
}

// openSelectedFile opens the file under the tree cursor.
func (m *Model) openSelectedFile() tea.Cmd {
	entry, ok := m.tree.Selected()
	if !ok {
		return m.showError(ErrNoFileSelected)
	}
	return m.load(loadOpen, entry.Path, "", 0)
}

// searchDocument marks every match of query and jumps to the first result
// at or below the current scroll offset.
func (m *Model) searchDocument(query string) tea.Cmd {
	m.query = query
	m.results = nil
	if strings.TrimSpace(query) == "" {
		m.root.ClearSearch()
		return nil
	}
	if m.root.FindAndMark(query) == 0 {
		return m.showError(fmt.Errorf("%w: %s", component.ErrNoResults, query))
	}
	m.results = m.root.SearchResultHeights()
	m.resultIndex = 0
	for i, row := range m.results {
		if row >= m.root.Scroll() {
			m.resultIndex = i
			break
		}
	}
	m.reveal(m.results[m.resultIndex])
	return m.showMessage(fmt.Sprintf("%d/%d", m.resultIndex+1, len(m.results)), false)
}

// stepResult moves to the next or previous search result, wrapping around.
func (m *Model) stepResult(delta int) tea.Cmd {
	if len(m.results) == 0 {
		return m.showError(component.ErrNoResults)
	}
	count := len(m.results)
	m.resultIndex = ((m.resultIndex+delta)%count + count) % count
	m.reveal(m.results[m.resultIndex])
	return m.showMessage(fmt.Sprintf("%d/%d", m.resultIndex+1, count), false)
}
