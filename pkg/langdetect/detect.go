// Package langdetect resolves code fence language tags and guesses the
// language of untagged code blocks. It uses go-enry's alias table and
// classifier so that tags like "golang", "py" or "sh" reach the highlighter
// under one canonical name.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language could be determined.
const Text = "text"

// Languages offered to the classifier. Keeping the candidate set small keeps
// detection fast and avoids exotic answers for short snippets.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile", "TOML",
}

// prefixRule maps an unambiguous leading token to a language.
type prefixRule struct {
	prefix string
	lang   string
	fold   bool
}

//nolint:gochecknoglobals // Read-only lookup table.
var prefixRules = []prefixRule{
	{"package ", "go", false},
	{"<!doctype html", "html", true},
	{"<html", "html", true},
	{"<?xml", "xml", false},
	{"FROM ", "dockerfile", false},
	{"fn main()", "rust", false},
	{"def ", "python", false},
	{"SELECT ", "sql", false},
	{"CREATE TABLE", "sql", false},
	{"#include", "c", false},
}

// Resolve returns the canonical lowercase language name for a fence tag.
// Attributes after the first word ("go {linenos=true}") are ignored. Unknown
// tags are returned lowercased so the highlighter can still try them.
func Resolve(tag string) string {
	fields := strings.Fields(tag)
	if len(fields) == 0 {
		return ""
	}
	word := strings.Trim(fields[0], "{}.")
	if lang, ok := enry.GetLanguageByAlias(word); ok {
		return normalize(lang)
	}
	// Extension-style tags ("py", "rb", "yml") are not always aliases.
	if lang, safe := enry.GetLanguageByExtension("x." + word); safe && lang != "" {
		return normalize(lang)
	}
	return strings.ToLower(word)
}

// Detect guesses the language of a code snippet. It returns Text when the
// guess is not reliable.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	for _, rule := range prefixRules {
		if hasPrefix(trimmed, rule) {
			return rule.lang
		}
	}
	if looksLikeJSON(trimmed) {
		return "json"
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}
	return Text
}

func hasPrefix(content []byte, rule prefixRule) bool {
	if !rule.fold {
		return bytes.HasPrefix(content, []byte(rule.prefix))
	}
	if len(content) < len(rule.prefix) {
		return false
	}
	return strings.EqualFold(string(content[:len(rule.prefix)]), rule.prefix)
}

func looksLikeJSON(trimmed []byte) bool {
	first, last := trimmed[0], trimmed[len(trimmed)-1]
	if (first != '{' || last != '}') && (first != '[' || last != ']') {
		return false
	}
	return bytes.Contains(trimmed, []byte(`":`)) || first == '['
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	}
	return strings.ToLower(lang)
}
