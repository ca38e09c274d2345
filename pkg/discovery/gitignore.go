package discovery

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ignoreRule is one line of a .gitignore file.
type ignoreRule struct {
	// base is the slash-separated directory holding the .gitignore,
	// relative to the walk root; "" for the root itself.
	base     string
	pattern  string
	negate   bool
	dirOnly  bool
	anchored bool
}

// ignoreSet accumulates the rules of every .gitignore seen so far. Rules are
// evaluated in load order and the last match wins, so deeper files override
// their parents.
type ignoreSet struct {
	rules []ignoreRule
}

func newIgnoreSet() *ignoreSet {
	return &ignoreSet{}
}

// load reads dir/.gitignore if present. A missing or unreadable file adds
// no rules.
func (s *ignoreSet) load(dir, relDir string) {
	f, err := os.Open(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return
	}
	defer f.Close()

	base := filepath.ToSlash(relDir)
	if base == "." {
		base = ""
	}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if rule, ok := parseIgnoreLine(base, scanner.Text()); ok {
			s.rules = append(s.rules, rule)
		}
	}
}

func parseIgnoreLine(base, line string) (ignoreRule, bool) {
	line = strings.TrimRight(line, " \t\r")
	if line == "" || strings.HasPrefix(line, "#") {
		return ignoreRule{}, false
	}

	rule := ignoreRule{base: base}
	if strings.HasPrefix(line, "!") {
		rule.negate = true
		line = line[1:]
	}
	line = strings.TrimPrefix(line, `\`)
	if strings.HasSuffix(line, "/") {
		rule.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.Contains(line, "/") {
		rule.anchored = true
		line = strings.TrimPrefix(line, "/")
	}
	if line == "" {
		return ignoreRule{}, false
	}
	rule.pattern = line
	return rule, true
}

// ignored reports whether relPath is excluded by the loaded rules.
func (s *ignoreSet) ignored(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)
	ignored := false
	for _, rule := range s.rules {
		if rule.matches(relPath, isDir) {
			ignored = !rule.negate
		}
	}
	return ignored
}

func (r ignoreRule) matches(relPath string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}
	rel := relPath
	if r.base != "" {
		if !strings.HasPrefix(relPath, r.base+"/") {
			return false
		}
		rel = strings.TrimPrefix(relPath, r.base+"/")
	}

	if !r.anchored {
		matched, err := path.Match(r.pattern, path.Base(rel))
		return err == nil && matched
	}
	if strings.Contains(r.pattern, "**") {
		return matchDoubleStar(rel, r.pattern)
	}
	matched, err := path.Match(r.pattern, rel)
	return err == nil && matched
}
