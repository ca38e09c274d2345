package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned when the walk root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// MessageKind classifies a discovery message.
type MessageKind uint8

const (
	// MessageFile carries one discovered file.
	MessageFile MessageKind = iota
	// MessageDone is sent once after the last file.
	MessageDone
	// MessageError is sent once when the walk fails; no Done follows.
	MessageError
)

// Message is one item of the discovery stream.
type Message struct {
	Kind MessageKind
	// Path is the absolute file path for MessageFile.
	Path string
	// Root is the absolute walk root, for computing display names.
	Root string
	Err  error
}

// Walk starts a background walk and returns the stream of its results. The
// channel is closed after the terminal Done or Error message. Cancelling ctx
// stops the walk; the terminal message then carries the context error.
func Walk(ctx context.Context, opts Options) <-chan Message {
	out := make(chan Message, opts.effectiveBuffer())

	go func() {
		defer close(out)

		root, err := resolveRoot(opts.Root)
		if err != nil {
			out <- Message{Kind: MessageError, Err: err}
			return
		}

		w := &walker{
			ctx:        ctx,
			root:       root,
			opts:       opts,
			extensions: opts.effectiveExtensions(),
			ignores:    newIgnoreSet(),
			out:        out,
		}
		if err := w.walk(root); err != nil {
			send(ctx, out, Message{Kind: MessageError, Root: root, Err: err})
			return
		}
		send(ctx, out, Message{Kind: MessageDone, Root: root})
	}()

	return out
}

// Collect drains a walk and returns the discovered files in arrival order.
func Collect(ctx context.Context, opts Options) ([]string, error) {
	var files []string
	for msg := range Walk(ctx, opts) {
		switch msg.Kind {
		case MessageFile:
			files = append(files, msg.Path)
		case MessageError:
			return files, msg.Err
		case MessageDone:
		}
	}
	return files, nil
}

// send delivers msg unless ctx is cancelled first. Terminal messages are
// still attempted without blocking so a reader draining after cancel sees
// why the stream ended.
func send(ctx context.Context, out chan<- Message, msg Message) bool {
	select {
	case out <- msg:
		return true
	case <-ctx.Done():
		select {
		case out <- msg:
			return true
		default:
			return false
		}
	}
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}
	return abs, nil
}

type walker struct {
	ctx        context.Context
	root       string
	opts       Options
	extensions []string
	ignores    *ignoreSet
	out        chan<- Message
}

func (w *walker) walk(dir string) error {
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path != dir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != w.root && w.excluded(relPath, true) {
				return filepath.SkipDir
			}
			if w.opts.Gitignore {
				w.ignores.load(path, relPath)
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Inaccessible targets are skipped.
			}
			if info.IsDir() {
				if !w.opts.FollowSymlinks || w.excluded(relPath, true) {
					return nil
				}
				// Walk the target; WalkDir uses Lstat on its root.
				return w.walk(realPath)
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if !hasMatchingExtension(path, w.extensions) || w.excluded(relPath, false) {
			return nil
		}

		if !send(w.ctx, w.out, Message{Kind: MessageFile, Path: path, Root: w.root}) {
			return w.ctx.Err()
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", dir, err)
	}
	return nil
}

func (w *walker) excluded(relPath string, isDir bool) bool {
	for _, pattern := range w.opts.ExcludeGlobs {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return w.opts.Gitignore && w.ignores.ignored(relPath, isDir)
}

func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
