// Package watch reports changes to a single file. Editors often replace a
// file instead of writing it in place, so the parent directory is watched
// and events are filtered by name.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher coalesces change events for one file into a capacity-one channel:
// a burst of writes produces at most one pending notification.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	changes chan struct{}
	errs    chan error

	closeOnce sync.Once
	done      chan struct{}
}

// New starts watching path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		fs:      fsw,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes delivers a notification after the file was written, created or
// renamed into place. It is closed when the watcher is closed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers the most recent watcher error that nobody has read yet.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching and releases the underlying handles. It is safe to
// call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	if err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
