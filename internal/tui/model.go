// Package tui implements the interactive viewer on top of bubbletea.
package tui

import (
	"context"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/internal/ui/pretty"
	"github.com/yaklabco/gomdview/pkg/component"
	"github.com/yaklabco/gomdview/pkg/config"
	"github.com/yaklabco/gomdview/pkg/filetree"
	"github.com/yaklabco/gomdview/pkg/fsutil"
	mdparser "github.com/yaklabco/gomdview/pkg/parser/goldmark"
	"github.com/yaklabco/gomdview/pkg/watch"
)

const (
	messageTimeout = 3 * time.Second
	watchDebounce  = 120 * time.Millisecond
	defaultEditor  = "vi"
	fallbackWidth  = 80
)

type mode uint8

const (
	modeView mode = iota
	modeLinks
	modeSearch
	modeFileTree
	modeTreeSearch
	modeHelp
)

// Options configures a Model.
type Options struct {
	// Config is the merged configuration. Required.
	Config *config.Config

	// Path is the file to open, or a directory to browse.
	Path string

	// Directory is true when Path names a directory.
	Directory bool

	// Parser parses documents. Defaults to the configured flavor.
	Parser *mdparser.Parser

	// Highlighter colors code blocks. Nil leaves them plain.
	Highlighter component.Highlighter

	// Logger receives debug output. Defaults to a discarding logger.
	Logger *log.Logger

	// Editor is the command run by the edit action. Defaults to $EDITOR,
	// then vi.
	Editor string

	// OpenURL opens an external link. Defaults to the platform opener.
	OpenURL func(target string) error

	// Clipboard copies text. Defaults to the system clipboard.
	Clipboard func(text string) error
}

type historyEntry struct {
	path   string
	scroll int
}

// Model is the bubbletea model of the viewer. It exclusively owns the open
// document, the file tree and the watcher.
type Model struct {
	ctx    context.Context
	opts   Options
	styles *pretty.Styles
	keys   keyMap
	logger *log.Logger

	width  int
	height int
	mode   mode

	// helpReturn is the mode the help overlay was opened from.
	helpReturn mode
	helpScroll int

	root    *component.Root
	path    string
	info    *fsutil.FileInfo
	history []historyEntry

	linkIndex   int
	results     []int
	resultIndex int
	query       string
	input       textinput.Model

	tree       *filetree.Tree
	treeRoot   string
	walkCancel context.CancelFunc

	watcher *watch.Watcher

	message    string
	messageErr bool
	messageID  int
}

// New creates a viewer model.
func New(ctx context.Context, opts Options) Model {
	if opts.Parser == nil {
		opts.Parser = mdparser.NewWithOptions(mdparser.Options{
			Flavor:         string(opts.Config.General.Flavor),
			DetectLanguage: opts.Config.General.DetectLanguageEnabled(),
		})
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Editor == "" {
		opts.Editor = os.Getenv("EDITOR")
	}
	if opts.Editor == "" {
		opts.Editor = defaultEditor
	}
	if opts.OpenURL == nil {
		opts.OpenURL = OpenURL
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	input := textinput.New()
	input.Prompt = "/"
	input.CharLimit = 256

	m := Model{
		ctx:    ctx,
		opts:   opts,
		styles: pretty.NewStyles(opts.Config, true),
		keys:   newKeyMap(opts.Config.Keys),
		logger: opts.Logger,
		input:  input,
	}
	if opts.Directory {
		m.mode = modeFileTree
		m.treeRoot = opts.Path
		m.tree = filetree.New(m.viewHeight())
	}
	return m
}

// Init starts loading the initial document or the file discovery.
func (m Model) Init() tea.Cmd {
	if m.opts.Directory {
		return func() tea.Msg { return startWalkMsg{} }
	}
	return m.load(loadInitial, m.opts.Path, "", 0)
}

// startWalkMsg asks the model to start discovery once it owns the tree.
type startWalkMsg struct{}

// viewHeight returns the number of document rows above the status line.
func (m *Model) viewHeight() int {
	return max(m.height-1, 1)
}

// documentWidth returns the wrap width: the configured width capped by the
// terminal. Before the first resize the terminal width is unknown.
func (m *Model) documentWidth() int {
	width := m.opts.Config.General.Width
	if m.width > 0 && (width <= 0 || width > m.width) {
		width = m.width
	}
	if width <= 0 {
		return fallbackWidth
	}
	return width
}

func (m *Model) renderer() *pretty.Renderer {
	width := m.documentWidth()
	return pretty.NewRenderer(m.styles, pretty.RenderOptions{
		Width:  width,
		Margin: m.opts.Config.General.Alignment.Offset(width, m.width),
	})
}

// setScroll clamps scroll to the document and applies it.
func (m *Model) setScroll(scroll int) {
	if m.root == nil {
		return
	}
	scroll = min(scroll, m.root.MaxScroll(m.viewHeight()))
	m.root.SetScroll(max(scroll, 0))
}

func (m *Model) scrollBy(delta int) {
	if m.root != nil {
		m.setScroll(m.root.Scroll() + delta)
	}
}

// reveal scrolls so row sits a third of the way down the view.
func (m *Model) reveal(row int) {
	m.setScroll(row - m.viewHeight()/3)
}

// revealIfHidden scrolls to row only when it is outside the view.
func (m *Model) revealIfHidden(row int) {
	if m.root == nil {
		return
	}
	scroll := m.root.Scroll()
	if row < scroll || row >= scroll+m.viewHeight() {
		m.reveal(row)
	}
}

// showMessage sets the message box and schedules its expiry.
func (m *Model) showMessage(text string, isErr bool) tea.Cmd {
	m.messageID++
	m.message = text
	m.messageErr = isErr
	id := m.messageID
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return messageExpiredMsg{id: id}
	})
}

func (m *Model) showError(err error) tea.Cmd {
	m.logger.Debug("action failed", logging.FieldError, err)
	return m.showMessage(err.Error(), true)
}

// Close releases the resources of a model the program did not shut down
// itself, such as after the context was cancelled.
func (m *Model) Close() {
	m.shutdown()
}

// shutdown releases the watcher and stops discovery.
func (m *Model) shutdown() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
	if m.walkCancel != nil {
		m.walkCancel()
		m.walkCancel = nil
	}
}
