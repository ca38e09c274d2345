// Package config defines core configuration types for gomdview.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Alignment places the document column inside a terminal that is wider than
// the configured width.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// IsValid returns true if the alignment is known.
func (a Alignment) IsValid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	default:
		return false
	}
}

// Offset returns the left margin for a column of width inside total cells.
func (a Alignment) Offset(width, total int) int {
	spare := total - width
	if spare <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return spare / 2
	case AlignRight:
		return spare
	default:
		return 0
	}
}

// GeneralConfig holds layout and discovery settings.
type GeneralConfig struct {
	// Width is the maximum document width in cells. Zero uses the terminal width.
	Width int `yaml:"width"`

	// Alignment positions the document when Width is narrower than the terminal.
	Alignment Alignment `yaml:"alignment"`

	// Gitignore makes file discovery honor .gitignore files.
	Gitignore *bool `yaml:"gitignore"`

	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// DetectLanguage guesses the language of untagged code blocks.
	DetectLanguage *bool `yaml:"detect_language"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore,omitempty"`

	// Extensions overrides the file extensions treated as Markdown.
	Extensions []string `yaml:"extensions,omitempty"`
}

// GitignoreEnabled reports whether discovery honors .gitignore files.
func (g GeneralConfig) GitignoreEnabled() bool {
	return g.Gitignore == nil || *g.Gitignore
}

// DetectLanguageEnabled reports whether untagged code blocks are classified.
func (g GeneralConfig) DetectLanguageEnabled() bool {
	return g.DetectLanguage != nil && *g.DetectLanguage
}

// Config is the root configuration structure for gomdview.
type Config struct {
	General GeneralConfig `yaml:"general"`

	// Colors maps palette names to lipgloss color strings ("#rrggbb" or an
	// ANSI index). Names missing here fall back to DefaultColors.
	Colors map[string]string `yaml:"colors"`

	Keys KeyConfig `yaml:"keys"`

	// CLI-level options (not persisted to config files).

	// LogFile receives log output while the viewer owns the terminal.
	LogFile string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	gitignore := true
	detect := false
	return &Config{
		General: GeneralConfig{
			Width:          100,
			Alignment:      AlignLeft,
			Gitignore:      &gitignore,
			Flavor:         FlavorGFM,
			DetectLanguage: &detect,
		},
		Colors: DefaultColors(),
		Keys:   DefaultKeys(),
	}
}

// Color returns the configured color for name, falling back to the default
// palette and then to the empty string.
func (c *Config) Color(name string) string {
	if c != nil {
		if value, ok := c.Colors[name]; ok && value != "" {
			return value
		}
	}
	return defaultColors[name]
}
