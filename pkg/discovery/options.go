// Package discovery finds Markdown files below a directory in the
// background and streams them to the caller over a channel.
package discovery

// Options controls a discovery walk.
type Options struct {
	// Root is the directory to walk. Empty means the working directory.
	Root string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown. Defaults to DefaultExtensions().
	Extensions []string

	// Gitignore skips files and directories matched by .gitignore files
	// found during the walk.
	Gitignore bool

	// ExcludeGlobs are extra patterns, relative to Root, to skip.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Buffer is the channel capacity. Defaults to 64.
	Buffer int
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectiveBuffer() int {
	if o.Buffer <= 0 {
		return 64
	}
	return o.Buffer
}
