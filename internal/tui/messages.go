package tui

import (
	"github.com/yaklabco/gomdview/pkg/component"
	"github.com/yaklabco/gomdview/pkg/discovery"
	"github.com/yaklabco/gomdview/pkg/fsutil"
	"github.com/yaklabco/gomdview/pkg/watch"
)

// loadKind says how a loaded document relates to the one on screen.
type loadKind uint8

const (
	// loadOpen replaces the document and pushes the old one on the history.
	loadOpen loadKind = iota
	// loadBack replaces the document with the top of the history.
	loadBack
	// loadReload re-reads the current document and keeps the scroll offset.
	loadReload
	// loadInitial opens the first document without touching the history.
	loadInitial
)

// documentLoadedMsg carries the result of reading and parsing a file.
type documentLoadedMsg struct {
	kind   loadKind
	path   string
	root   *component.Root
	info   *fsutil.FileInfo
	anchor string
	scroll int
	err    error
}

// fileFoundMsg carries one discovery message.
type fileFoundMsg struct {
	msg discovery.Message
	ch  <-chan discovery.Message
}

type watchStartedMsg struct {
	watcher *watch.Watcher
	err     error
}

type fileChangedMsg struct {
	watcher *watch.Watcher
}

type watchErrorMsg struct {
	watcher *watch.Watcher
	err     error
}

// messageExpiredMsg clears the message box when id is still current.
type messageExpiredMsg struct {
	id int
}

type editorFinishedMsg struct {
	err error
}

type externalOpenedMsg struct {
	target string
	err    error
}
