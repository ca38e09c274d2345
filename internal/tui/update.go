package tui

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/pkg/config"
	"github.com/yaklabco/gomdview/pkg/discovery"
	"github.com/yaklabco/gomdview/pkg/filetree"
)

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.shutdown()
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case documentLoadedMsg:
		if msg.err != nil {
			return m, m.showError(msg.err)
		}
		return m, m.applyDocument(msg)

	case startWalkMsg:
		if m.tree == nil {
			m.tree = filetree.New(m.viewHeight())
		}
		return m, m.startWalk()

	case fileFoundMsg:
		return m, m.handleDiscovery(msg)

	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Debug("watch failed", logging.FieldPath, m.path, logging.FieldError, msg.err)
			return m, nil
		}
		if msg.watcher.Path() != m.path || m.watcher != nil {
			_ = msg.watcher.Close()
			return m, nil
		}
		m.watcher = msg.watcher
		return m, subscribe(m.watcher)

	case fileChangedMsg:
		if msg.watcher != m.watcher {
			return m, nil
		}
		return m, tea.Batch(m.reload(), subscribe(m.watcher))

	case watchErrorMsg:
		if msg.watcher != m.watcher {
			return m, nil
		}
		m.logger.Debug("watch error", logging.FieldPath, m.path, logging.FieldError, msg.err)
		return m, subscribe(m.watcher)

	case editorFinishedMsg:
		if msg.err != nil {
			return m, m.showError(msg.err)
		}
		return m, m.reload()

	case externalOpenedMsg:
		if msg.err != nil {
			m.logger.Debug("open external", logging.FieldTarget, msg.target, logging.FieldError, msg.err)
			return m, nil
		}
		return m, m.showMessage("opened "+msg.target, false)

	case messageExpiredMsg:
		if msg.id == m.messageID {
			m.message = ""
			m.messageErr = false
		}
		return m, nil
	}

	if m.mode == modeSearch || m.mode == modeTreeSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-2, 1)
	if m.tree != nil {
		m.tree.Resize(m.viewHeight())
	}
	if m.root != nil {
		scroll := m.root.Scroll()
		m.root.Transform(m.documentWidth(), m.opts.Highlighter)
		m.setScroll(scroll)
		if m.mode == modeLinks {
			m.mode = modeView
		}
		m.results = nil
	}
}

func (m *Model) handleDiscovery(found fileFoundMsg) tea.Cmd {
	if m.tree == nil {
		return nil
	}
	switch found.msg.Kind {
	case discovery.MessageFile:
		m.tree.Add(filetree.NewEntry(found.msg.Root, found.msg.Path))
		return waitForFile(found.ch)
	case discovery.MessageDone:
		m.tree.Finish()
		m.logger.Debug("discovery finished", logging.FieldFiles, m.tree.TotalCount())
		return nil
	case discovery.MessageError:
		m.tree.Finish()
		if errors.Is(found.msg.Err, context.Canceled) {
			return nil
		}
		return m.showError(found.msg.Err)
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch, modeTreeSearch:
		return m.handleInputKey(msg)
	case modeFileTree:
		return m.handleTreeKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	case modeView, modeLinks:
	}

	if key.Matches(msg, m.keys.Escape) {
		if m.mode == modeLinks {
			m.leaveLinkMode()
		} else if m.root != nil {
			m.root.ClearSearch()
			m.results = nil
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Confirm) {
		if m.mode == modeLinks {
			return m, m.followLink()
		}
		return m, nil
	}

	action, ok := m.keys.action(msg)
	if !ok {
		return m, nil
	}
	return m, m.documentAction(action)
}

func (m *Model) documentAction(action config.Action) tea.Cmd {
	page := m.viewHeight()
	linkMode := m.mode == modeLinks

	switch action {
	case config.ActionQuit:
		m.shutdown()
		return tea.Quit
	case config.ActionHelp:
		m.leaveLinkMode()
		m.openHelp()
		return nil
	case config.ActionFileTree:
		return m.openFileTree()
	case config.ActionBack:
		return m.back()
	}

	if m.root == nil {
		return nil
	}

	switch action {
	case config.ActionDown:
		if linkMode {
			return m.selectLink(m.linkIndex + 1)
		}
		m.scrollBy(1)
	case config.ActionUp:
		if linkMode {
			return m.selectLink(m.linkIndex - 1)
		}
		m.scrollBy(-1)
	case config.ActionPageDown:
		m.scrollBy(page)
		return m.keepLinkInView()
	case config.ActionPageUp:
		m.scrollBy(-page)
		return m.keepLinkInView()
	case config.ActionHalfPageDown:
		m.scrollBy(page / 2)
		return m.keepLinkInView()
	case config.ActionHalfPageUp:
		m.scrollBy(-page / 2)
		return m.keepLinkInView()
	case config.ActionTop:
		m.setScroll(0)
		return m.keepLinkInView()
	case config.ActionBottom:
		m.setScroll(m.root.MaxScroll(page))
		return m.keepLinkInView()
	case config.ActionSelectLink:
		if linkMode {
			return m.followLink()
		}
		return m.enterLinkMode()
	case config.ActionHover:
		return m.hover()
	case config.ActionYank:
		return m.yank()
	case config.ActionSearch:
		m.leaveLinkMode()
		m.mode = modeSearch
		m.input.Prompt = "/"
		m.input.SetValue("")
		return m.input.Focus()
	case config.ActionNextResult:
		return m.stepResult(1)
	case config.ActionPreviousResult:
		return m.stepResult(-1)
	case config.ActionEdit:
		return m.edit()
	case config.ActionQuit, config.ActionHelp, config.ActionFileTree, config.ActionBack:
	}
	return nil
}

// openFileTree shows the file tree, starting discovery on first use below
// the current document's directory.
func (m *Model) openFileTree() tea.Cmd {
	m.leaveLinkMode()
	m.mode = modeFileTree
	if m.tree != nil {
		return nil
	}
	if m.treeRoot == "" {
		m.treeRoot = "."
		if m.path != "" {
			m.treeRoot = filepath.Dir(m.path)
		}
	}
	m.tree = filetree.New(m.viewHeight())
	return m.startWalk()
}

func (m Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		if m.tree.Query() != "" {
			m.tree.Search("")
			return m, nil
		}
		if m.root != nil {
			m.mode = modeView
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Confirm) {
		return m, m.openSelectedFile()
	}

	action, ok := m.keys.action(msg)
	if !ok {
		return m, nil
	}
	switch action {
	case config.ActionDown:
		m.tree.Next()
	case config.ActionUp:
		m.tree.Previous()
	case config.ActionPageDown, config.ActionHalfPageDown:
		m.tree.NextPage()
	case config.ActionPageUp, config.ActionHalfPageUp:
		m.tree.PreviousPage()
	case config.ActionTop:
		m.tree.First()
	case config.ActionBottom:
		m.tree.Last()
	case config.ActionSelectLink:
		return m, m.openSelectedFile()
	case config.ActionSearch:
		m.mode = modeTreeSearch
		m.input.Prompt = "/"
		m.input.SetValue(m.tree.Query())
		return m, m.input.Focus()
	case config.ActionFileTree:
		if m.root != nil {
			m.mode = modeView
		}
	case config.ActionHelp:
		m.openHelp()
	case config.ActionQuit:
		m.shutdown()
		return m, tea.Quit
	case config.ActionBack:
		return m, m.back()
	case config.ActionEdit, config.ActionHover, config.ActionYank,
		config.ActionNextResult, config.ActionPreviousResult:
	}
	return m, nil
}

// openHelp shows the key overlay from the current mode.
func (m *Model) openHelp() {
	m.helpReturn = m.mode
	m.helpScroll = 0
	m.mode = modeHelp
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.mode = m.helpReturn
		return m, nil
	}
	action, ok := m.keys.action(msg)
	if !ok {
		return m, nil
	}
	page := m.viewHeight()
	switch action {
	case config.ActionHelp:
		m.mode = m.helpReturn
	case config.ActionQuit:
		m.shutdown()
		return m, tea.Quit
	case config.ActionDown:
		m.scrollHelp(m.helpScroll + 1)
	case config.ActionUp:
		m.scrollHelp(m.helpScroll - 1)
	case config.ActionPageDown:
		m.scrollHelp(m.helpScroll + page)
	case config.ActionPageUp:
		m.scrollHelp(m.helpScroll - page)
	case config.ActionHalfPageDown:
		m.scrollHelp(m.helpScroll + page/2)
	case config.ActionHalfPageUp:
		m.scrollHelp(m.helpScroll - page/2)
	case config.ActionTop:
		m.scrollHelp(0)
	case config.ActionBottom:
		m.scrollHelp(m.maxHelpScroll())
	case config.ActionSearch, config.ActionNextResult, config.ActionPreviousResult,
		config.ActionSelectLink, config.ActionHover, config.ActionYank,
		config.ActionBack, config.ActionEdit, config.ActionFileTree:
	}
	return m, nil
}

func (m *Model) scrollHelp(scroll int) {
	m.helpScroll = max(min(scroll, m.maxHelpScroll()), 0)
}

func (m *Model) maxHelpScroll() int {
	return max(len(m.helpView())-m.viewHeight(), 0)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	treeSearch := m.mode == modeTreeSearch

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.input.Blur()
		if treeSearch {
			m.tree.Search("")
			m.mode = modeFileTree
		} else {
			m.mode = modeView
		}
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.input.Blur()
		query := m.input.Value()
		if treeSearch {
			m.mode = modeFileTree
			m.tree.Search(query)
			return m, nil
		}
		m.mode = modeView
		m.logger.Debug("search", logging.FieldQuery, query)
		return m, m.searchDocument(query)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if treeSearch {
		m.tree.Search(m.input.Value())
	}
	return m, cmd
}
