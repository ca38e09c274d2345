package config

import "maps"

// Palette names.
const (
	ColorText           = "text"
	ColorHeading1       = "heading_1"
	ColorHeading2       = "heading_2"
	ColorHeading3       = "heading_3"
	ColorHeading4       = "heading_4"
	ColorHeading5       = "heading_5"
	ColorHeading6       = "heading_6"
	ColorBold           = "bold"
	ColorItalic         = "italic"
	ColorStrikethrough  = "strikethrough"
	ColorCodeFg         = "code_fg"
	ColorCodeBg         = "code_bg"
	ColorCodeBlockBg    = "code_block_bg"
	ColorLink           = "link"
	ColorSelectedFg     = "selected_fg"
	ColorSelectedBg     = "selected_bg"
	ColorListMarker     = "list_marker"
	ColorQuoteBar       = "quote_bar"
	ColorTableHeader    = "table_header"
	ColorTableBorder    = "table_border"
	ColorHorizontalRule = "horizontal_rule"
	ColorFootnote       = "footnote"
	ColorTaskChecked    = "task_checked"
	ColorNote           = "note"
	ColorTip            = "tip"
	ColorImportant      = "important"
	ColorWarning        = "warning"
	ColorCaution        = "caution"
	ColorStatusFg       = "status_fg"
	ColorStatusBg       = "status_bg"
	ColorMessageFg      = "message_fg"
	ColorMessageBg      = "message_bg"

	ColorSyntaxKeyword     = "syntax_keyword"
	ColorSyntaxString      = "syntax_string"
	ColorSyntaxComment     = "syntax_comment"
	ColorSyntaxNumber      = "syntax_number"
	ColorSyntaxFunction    = "syntax_function"
	ColorSyntaxType        = "syntax_type"
	ColorSyntaxOperator    = "syntax_operator"
	ColorSyntaxPunctuation = "syntax_punctuation"
	ColorSyntaxVariable    = "syntax_variable"
	ColorSyntaxConstant    = "syntax_constant"
	ColorSyntaxBuiltin     = "syntax_builtin"
	ColorSyntaxTag         = "syntax_tag"
	ColorSyntaxAttribute   = "syntax_attribute"
)

// defaultColors is the built-in palette.
//
//nolint:gochecknoglobals // Read-only lookup table.
var defaultColors = map[string]string{
	ColorText:           "#d0d0d0",
	ColorHeading1:       "#ff5f87",
	ColorHeading2:       "#5fafff",
	ColorHeading3:       "#87d787",
	ColorHeading4:       "#ffaf5f",
	ColorHeading5:       "#af87ff",
	ColorHeading6:       "#8a8a8a",
	ColorBold:           "#ffffff",
	ColorItalic:         "#d7d7af",
	ColorStrikethrough:  "#808080",
	ColorCodeFg:         "#ff875f",
	ColorCodeBg:         "#303030",
	ColorCodeBlockBg:    "#1c1c1c",
	ColorLink:           "#5fafd7",
	ColorSelectedFg:     "#000000",
	ColorSelectedBg:     "#ffd75f",
	ColorListMarker:     "#5fafff",
	ColorQuoteBar:       "#8a8a8a",
	ColorTableHeader:    "#87afff",
	ColorTableBorder:    "#585858",
	ColorHorizontalRule: "#585858",
	ColorFootnote:       "#949494",
	ColorTaskChecked:    "#87d787",
	ColorNote:           "#5f87ff",
	ColorTip:            "#5fd75f",
	ColorImportant:      "#af5fff",
	ColorWarning:        "#ffaf00",
	ColorCaution:        "#ff5f5f",
	ColorStatusFg:       "#d0d0d0",
	ColorStatusBg:       "#3a3a3a",
	ColorMessageFg:      "#000000",
	ColorMessageBg:      "#87afd7",

	ColorSyntaxKeyword:     "#ff79c6",
	ColorSyntaxString:      "#f1fa8c",
	ColorSyntaxComment:     "#6272a4",
	ColorSyntaxNumber:      "#bd93f9",
	ColorSyntaxFunction:    "#50fa7b",
	ColorSyntaxType:        "#8be9fd",
	ColorSyntaxOperator:    "#ff79c6",
	ColorSyntaxPunctuation: "#d0d0d0",
	ColorSyntaxVariable:    "#f8f8f2",
	ColorSyntaxConstant:    "#bd93f9",
	ColorSyntaxBuiltin:     "#8be9fd",
	ColorSyntaxTag:         "#ff79c6",
	ColorSyntaxAttribute:   "#50fa7b",
}

// DefaultColors returns a copy of the built-in palette.
func DefaultColors() map[string]string {
	return maps.Clone(defaultColors)
}

// IsKnownColor reports whether name is a palette entry.
func IsKnownColor(name string) bool {
	_, ok := defaultColors[name]
	return ok
}

// HeadingColor returns the palette name for a heading level, clamped to 1..6.
func HeadingColor(level int) string {
	switch {
	case level <= 1:
		return ColorHeading1
	case level == 2:
		return ColorHeading2
	case level == 3:
		return ColorHeading3
	case level == 4:
		return ColorHeading4
	case level == 5:
		return ColorHeading5
	default:
		return ColorHeading6
	}
}
