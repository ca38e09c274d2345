// Package highlight tokenizes code blocks with chroma and reports the result
// as highlight events for the layout engine.
package highlight

import (
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/yaklabco/gomdview/pkg/component"
	"github.com/yaklabco/gomdview/pkg/langdetect"
)

// ErrUnsupportedLanguage is returned for tags no lexer is registered for.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Chroma implements component.Highlighter.
type Chroma struct{}

// New returns a chroma-backed highlighter.
func New() *Chroma {
	return &Chroma{}
}

var _ component.Highlighter = (*Chroma)(nil)

// Tokenize lexes src as language and returns source spans wrapped in
// highlight start/end events. Spans are byte offsets into src.
func (c *Chroma) Tokenize(language string, src []byte) ([]component.HighlightEvent, error) {
	lexer := c.lexer(language)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	iter, err := chroma.Coalesce(lexer).Tokenise(nil, string(src))
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", language, err)
	}

	var events []component.HighlightEvent
	offset := 0
	for _, tok := range iter.Tokens() {
		if tok.Value == "" {
			continue
		}
		end := min(offset+len(tok.Value), len(src))
		span := component.HighlightEvent{Kind: component.EventSource, Start: offset, End: end}
		class := Classify(tok.Type)
		if class == component.ClassDefault {
			events = append(events, span)
		} else {
			events = append(events,
				component.HighlightEvent{Kind: component.EventHighlightStart, Class: class},
				span,
				component.HighlightEvent{Kind: component.EventHighlightEnd},
			)
		}
		offset = end
	}
	return events, nil
}

func (c *Chroma) lexer(language string) chroma.Lexer {
	if language == "" {
		return nil
	}
	if lexer := lexers.Get(language); lexer != nil {
		return lexer
	}
	if resolved := langdetect.Resolve(language); resolved != "" {
		return lexers.Get(resolved)
	}
	return nil
}

// Supported reports whether a lexer exists for language.
func (c *Chroma) Supported(language string) bool {
	return c.lexer(language) != nil
}

// Classify maps a chroma token type onto a palette slot.
func Classify(t chroma.TokenType) component.HighlightClass {
	switch {
	case t == chroma.KeywordType:
		return component.ClassType
	case t == chroma.KeywordConstant:
		return component.ClassConstant
	case t.InCategory(chroma.Keyword):
		return component.ClassKeyword
	case t == chroma.NameBuiltin || t == chroma.NameBuiltinPseudo:
		return component.ClassBuiltin
	case t == chroma.NameFunction || t == chroma.NameFunctionMagic:
		return component.ClassFunction
	case t == chroma.NameClass || t == chroma.NameNamespace:
		return component.ClassType
	case t == chroma.NameConstant:
		return component.ClassConstant
	case t == chroma.NameTag:
		return component.ClassTag
	case t == chroma.NameAttribute:
		return component.ClassAttribute
	case t == chroma.NameVariable || t == chroma.NameVariableInstance || t == chroma.NameVariableGlobal:
		return component.ClassVariable
	case t.InSubCategory(chroma.LiteralString):
		return component.ClassString
	case t.InSubCategory(chroma.LiteralNumber):
		return component.ClassNumber
	case t.InCategory(chroma.Comment):
		return component.ClassComment
	case t.InCategory(chroma.Operator):
		return component.ClassOperator
	case t == chroma.Punctuation:
		return component.ClassPunctuation
	default:
		return component.ClassDefault
	}
}
