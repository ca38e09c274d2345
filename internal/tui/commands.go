package tui

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/gomdview/pkg/discovery"
	"github.com/yaklabco/gomdview/pkg/fsutil"
	"github.com/yaklabco/gomdview/pkg/watch"
)

// load reads and parses path off the main loop. The model commits the
// result only when it arrives without error.
func (m *Model) load(kind loadKind, path, anchor string, scroll int) tea.Cmd {
	ctx := m.ctx
	parser := m.opts.Parser
	return func() tea.Msg {
		msg := documentLoadedMsg{kind: kind, path: path, anchor: anchor, scroll: scroll}

		abs, err := filepath.Abs(path)
		if err != nil {
			msg.err = fmt.Errorf("resolve %s: %w", path, err)
			return msg
		}
		msg.path = abs

		content, info, err := fsutil.ReadFile(ctx, abs)
		if err != nil {
			msg.err = err
			return msg
		}
		root, err := parser.Parse(ctx, abs, content)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.root = root
		msg.info = info
		return msg
	}
}

// reload re-reads the current document when its content changed on disk.
func (m *Model) reload() tea.Cmd {
	if m.path == "" {
		return nil
	}
	ctx := m.ctx
	info := m.info
	load := m.load(loadReload, m.path, "", 0)
	return func() tea.Msg {
		if info != nil {
			modified, err := fsutil.CheckModified(ctx, info)
			if err == nil && !modified {
				return nil
			}
		}
		return load()
	}
}

// startWalk begins discovery below the tree root and returns the command
// that reads the first message.
func (m *Model) startWalk() tea.Cmd {
	if m.walkCancel != nil {
		m.walkCancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.walkCancel = cancel

	general := m.opts.Config.General
	ch := discovery.Walk(ctx, discovery.Options{
		Root:         m.treeRoot,
		Extensions:   general.Extensions,
		Gitignore:    general.GitignoreEnabled(),
		ExcludeGlobs: general.Ignore,
	})
	return waitForFile(ch)
}

// waitForFile reads one discovery message.
func waitForFile(ch <-chan discovery.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return fileFoundMsg{msg: msg, ch: ch}
	}
}

func startWatch(path string) tea.Cmd {
	return func() tea.Msg {
		w, err := watch.New(path)
		return watchStartedMsg{watcher: w, err: err}
	}
}

// subscribe waits for the next change of w. Bursts of events that arrive
// within the debounce window collapse into one message.
func subscribe(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrorMsg{watcher: w, err: err}
		}
		time.Sleep(watchDebounce)
		return fileChangedMsg{watcher: w}
	}
}

// edit suspends the program and runs the editor on the current file.
func (m *Model) edit() tea.Cmd {
	//nolint:gosec // The editor command comes from the user's environment.
	cmd := exec.Command(m.opts.Editor, m.path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m *Model) openExternal(target string) tea.Cmd {
	open := m.opts.OpenURL
	return func() tea.Msg {
		return externalOpenedMsg{target: target, err: open(target)}
	}
}
