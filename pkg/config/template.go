package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every color and key binding.
	// If false, generates a minimal template with only general settings.
	Full bool
}

// GenerateTemplate creates a commented configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer
	defaults := NewConfig()

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")
	buf.WriteString("general:\n")
	buf.WriteString("  # Maximum document width in cells (0 = terminal width)\n")
	fmt.Fprintf(&buf, "  width: %d\n", defaults.General.Width)
	buf.WriteString("  # Position of the document when the terminal is wider: left, center, right\n")
	fmt.Fprintf(&buf, "  alignment: %s\n", defaults.General.Alignment)
	buf.WriteString("  # Honor .gitignore files when listing Markdown files\n")
	fmt.Fprintf(&buf, "  gitignore: %t\n", defaults.General.GitignoreEnabled())
	buf.WriteString("  # Markdown flavor: commonmark or gfm\n")
	fmt.Fprintf(&buf, "  flavor: %s\n", defaults.General.Flavor)
	buf.WriteString("  # Guess the language of code blocks without a tag\n")
	fmt.Fprintf(&buf, "  detect_language: %t\n", defaults.General.DetectLanguageEnabled())
	buf.WriteString("  # Glob patterns to skip in the file tree\n")
	buf.WriteString("  # ignore:\n")
	buf.WriteString("  #   - \"vendor/**\"\n")
	buf.WriteString("  #   - \"node_modules/**\"\n")

	if !opts.Full {
		buf.WriteString("\n# Colors and key bindings: run 'gomdview config init --full'\n")
		return buf.Bytes()
	}

	buf.WriteString("\n# Colors accept \"#rrggbb\" or an ANSI color index (0-255)\n")
	buf.WriteString("colors:\n")
	names := make([]string, 0, len(defaults.Colors))
	for name := range defaults.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&buf, "  %s: %q\n", name, defaults.Colors[name])
	}

	buf.WriteString("\n# Single-character key bindings\n")
	buf.WriteString("keys:\n")
	for _, b := range defaults.Keys.Bindings() {
		fmt.Fprintf(&buf, "  %s: %q # %s\n", b.Action, b.Key, b.Action.Description())
	}

	return buf.Bytes()
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return strings.Join([]string{
		"# gomdview configuration",
		"# See: https://github.com/yaklabco/gomdview",
	}, "\n")
}
