// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gomdview/pkg/component"
	"github.com/yaklabco/gomdview/pkg/config"
)

// Styles contains all styled renderers for document and chrome output.
type Styles struct {
	// Inline text
	Text          lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	BoldItalic    lipgloss.Style
	Strikethrough lipgloss.Style
	Code          lipgloss.Style
	Link          lipgloss.Style
	Selected      lipgloss.Style
	FootnoteRef   lipgloss.Style

	// Blocks
	Headings       [6]lipgloss.Style
	ListMarker     lipgloss.Style
	QuoteBar       lipgloss.Style
	TableHeader    lipgloss.Style
	TableBorder    lipgloss.Style
	HorizontalRule lipgloss.Style
	TaskChecked    lipgloss.Style
	TaskUnchecked  lipgloss.Style
	CodeBlock      lipgloss.Style
	Syntax         map[component.HighlightClass]lipgloss.Style
	Admonitions    map[component.MetaKind]lipgloss.Style

	// Chrome
	Status  lipgloss.Style
	Message lipgloss.Style
	Error   lipgloss.Style
	HelpKey lipgloss.Style
	Dim     lipgloss.Style

	colorEnabled bool
}

// NewStyles creates the styles for cfg's palette. With color disabled every
// style renders text unchanged.
func NewStyles(cfg *config.Config, colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles(cfg)
}

// ColorEnabled reports whether the styles emit color.
func (s *Styles) ColorEnabled() bool {
	return s.colorEnabled
}

func newColorStyles(cfg *config.Config) *Styles {
	fg := func(name string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Color(name)))
	}
	codeBlock := lipgloss.NewStyle().
		Background(lipgloss.Color(cfg.Color(config.ColorCodeBlockBg))).
		Foreground(lipgloss.Color(cfg.Color(config.ColorText)))

	styles := &Styles{
		Text:          fg(config.ColorText),
		Bold:          fg(config.ColorBold).Bold(true),
		Italic:        fg(config.ColorItalic).Italic(true),
		BoldItalic:    fg(config.ColorBold).Bold(true).Italic(true),
		Strikethrough: fg(config.ColorStrikethrough).Strikethrough(true),
		Code: fg(config.ColorCodeFg).
			Background(lipgloss.Color(cfg.Color(config.ColorCodeBg))),
		Link: fg(config.ColorLink).Underline(true),
		Selected: fg(config.ColorSelectedFg).
			Background(lipgloss.Color(cfg.Color(config.ColorSelectedBg))),
		FootnoteRef: fg(config.ColorFootnote),

		ListMarker:     fg(config.ColorListMarker),
		QuoteBar:       fg(config.ColorQuoteBar),
		TableHeader:    fg(config.ColorTableHeader).Bold(true).Underline(true),
		TableBorder:    fg(config.ColorTableBorder),
		HorizontalRule: fg(config.ColorHorizontalRule),
		TaskChecked:    fg(config.ColorTaskChecked),
		TaskUnchecked:  fg(config.ColorQuoteBar),
		CodeBlock:      codeBlock,
		Syntax:         make(map[component.HighlightClass]lipgloss.Style, len(syntaxColors)),
		Admonitions: map[component.MetaKind]lipgloss.Style{
			component.MetaNote:      fg(config.ColorNote),
			component.MetaTip:       fg(config.ColorTip),
			component.MetaImportant: fg(config.ColorImportant),
			component.MetaWarning:   fg(config.ColorWarning),
			component.MetaCaution:   fg(config.ColorCaution),
		},

		Status: fg(config.ColorStatusFg).
			Background(lipgloss.Color(cfg.Color(config.ColorStatusBg))),
		Message: fg(config.ColorMessageFg).
			Background(lipgloss.Color(cfg.Color(config.ColorMessageBg))),
		Error: fg(config.ColorSelectedFg).
			Background(lipgloss.Color(cfg.Color(config.ColorCaution))),
		HelpKey: fg(config.ColorListMarker).Bold(true),
		Dim:     fg(config.ColorHorizontalRule),

		colorEnabled: true,
	}

	for level := range styles.Headings {
		styles.Headings[level] = fg(config.HeadingColor(level + 1)).Bold(true)
	}
	for class, name := range syntaxColors {
		styles.Syntax[class] = fg(name).Inherit(codeBlock)
	}

	return styles
}

// syntaxColors maps highlight classes to palette names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var syntaxColors = map[component.HighlightClass]string{
	component.ClassKeyword:     config.ColorSyntaxKeyword,
	component.ClassString:      config.ColorSyntaxString,
	component.ClassComment:     config.ColorSyntaxComment,
	component.ClassNumber:      config.ColorSyntaxNumber,
	component.ClassFunction:    config.ColorSyntaxFunction,
	component.ClassType:        config.ColorSyntaxType,
	component.ClassOperator:    config.ColorSyntaxOperator,
	component.ClassPunctuation: config.ColorSyntaxPunctuation,
	component.ClassVariable:    config.ColorSyntaxVariable,
	component.ClassConstant:    config.ColorSyntaxConstant,
	component.ClassBuiltin:     config.ColorSyntaxBuiltin,
	component.ClassTag:         config.ColorSyntaxTag,
	component.ClassAttribute:   config.ColorSyntaxAttribute,
}

// newNoColorStyles creates styles with no formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	styles := &Styles{
		Text:           plain,
		Bold:           plain,
		Italic:         plain,
		BoldItalic:     plain,
		Strikethrough:  plain,
		Code:           plain,
		Link:           plain,
		Selected:       plain,
		FootnoteRef:    plain,
		ListMarker:     plain,
		QuoteBar:       plain,
		TableHeader:    plain,
		TableBorder:    plain,
		HorizontalRule: plain,
		TaskChecked:    plain,
		TaskUnchecked:  plain,
		CodeBlock:      plain,
		Syntax:         map[component.HighlightClass]lipgloss.Style{},
		Admonitions:    map[component.MetaKind]lipgloss.Style{},
		Status:         plain,
		Message:        plain,
		Error:          plain,
		HelpKey:        plain,
		Dim:            plain,
	}
	for level := range styles.Headings {
		styles.Headings[level] = plain
	}
	return styles
}

// Heading returns the style for a heading level, clamped to 1..6.
func (s *Styles) Heading(level int) lipgloss.Style {
	return s.Headings[min(max(level, 1), len(s.Headings))-1]
}

// Admonition returns the accent style for a quote, falling back to the bar.
func (s *Styles) Admonition(meta component.MetaKind) lipgloss.Style {
	if style, ok := s.Admonitions[meta]; ok {
		return style
	}
	return s.QuoteBar
}

// Word returns the style for a word kind.
func (s *Styles) Word(kind component.WordKind) lipgloss.Style {
	switch kind.Tag {
	case component.WordBold:
		return s.Bold
	case component.WordItalic:
		return s.Italic
	case component.WordBoldItalic:
		return s.BoldItalic
	case component.WordStrikethrough:
		return s.Strikethrough
	case component.WordCode:
		return s.Code
	case component.WordLink:
		return s.Link
	case component.WordSelected:
		return s.Selected
	case component.WordListMarker:
		return s.ListMarker
	case component.WordFootnoteRef:
		return s.FootnoteRef
	case component.WordCodeBlock:
		if style, ok := s.Syntax[kind.Class]; ok {
			return style
		}
		return s.CodeBlock
	case component.WordWhite:
		return lipgloss.NewStyle()
	case component.WordNormal, component.WordMetaInfo, component.WordLinkData:
		return s.Text
	default:
		return s.Text
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
