package discovery

import (
	"path/filepath"
	"strings"
)

// matchGlob matches a slash-separated relative path against a pattern such
// as "*.md", "docs/**" or "**/drafts". Patterns without a slash also match
// the base name.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStar handles the "**/x", "x/**" and "a/**/b" forms.
func matchDoubleStar(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	switch {
	case prefix == "" && suffix == "":
		return true

	case prefix == "":
		// "**/x": x matches the path, its tail, or any component.
		segments := strings.Split(path, "/")
		for i := range segments {
			tail := strings.Join(segments[i:], "/")
			if matched, err := filepath.Match(suffix, tail); err == nil && matched {
				return true
			}
		}
		return false

	case suffix == "":
		// "x/**": everything below x.
		return strings.HasPrefix(path, prefix+"/") || path == prefix

	default:
		if !strings.HasPrefix(path, prefix+"/") {
			return false
		}
		return matchDoubleStar(strings.TrimPrefix(path, prefix+"/"), "**/"+suffix)
	}
}
