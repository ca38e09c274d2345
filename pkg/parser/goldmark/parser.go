// Package goldmark parses Markdown with the goldmark library and maps the
// resulting AST onto the block model of the layout engine.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdview/pkg/component"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Options configures a Parser.
type Options struct {
	// Flavor selects the Markdown dialect. Invalid flavors default to GFM.
	Flavor string

	// DetectLanguage guesses a language for code blocks without a fence tag.
	DetectLanguage bool
}

// Parser turns Markdown source into a document root.
type Parser struct {
	opts Options
	md   goldmark.Markdown
}

// New creates a parser for the given flavor.
func New(flavor string) *Parser {
	return NewWithOptions(Options{Flavor: flavor})
}

// NewWithOptions creates a parser from options.
func NewWithOptions(opts Options) *Parser {
	opts.Flavor = flavorOrDefault(opts.Flavor)
	return &Parser{
		opts: opts,
		md:   newGoldmarkInstance(opts.Flavor),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.opts.Flavor
}

// Parse converts raw Markdown into an untransformed document root named
// path. Callers transform the root to a width before rendering it.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*component.Root, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	source := copyContent(content)
	doc := p.md.Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(source, p.opts.DetectLanguage)
	return component.NewRoot(path, m.mapDocument(doc)), nil
}

// IsValidFlavor reports whether flavor names a supported dialect.
func IsValidFlavor(flavor string) bool {
	return flavor == FlavorCommonMark || flavor == FlavorGFM
}

func flavorOrDefault(flavor string) string {
	if IsValidFlavor(flavor) {
		return flavor
	}
	return FlavorGFM
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
