// Package parse reads sentences from their textual form.
//
// The grammar is right-associative, with not binding tighter than and,
// and and binding tighter than or:
//
//	sentence := and_test [ "or" sentence ]
//	and_test := not_test [ "and" and_test ]
//	not_test := "not" not_test | leaf
//	leaf     := "(" sentence ")" | "true" | "false" | ident "=" ident
//	ident    := name | number | string
//
// The plain rendering of a sentence parses back to an equal sentence as long
// as its partitionings and parts are names or numbers.
package parse

import (
	"fmt"
	"log/slog"

	"github.com/cottand/worlds/internal/log"
	"github.com/cottand/worlds/sentence"
	"github.com/cottand/worlds/werr"
)

type Option func(*parser)

// WithRegistry interns atoms in r instead of sentence.Default
func WithRegistry(r *sentence.Registry) Option {
	return func(p *parser) {
		p.registry = r
	}
}

type parser struct {
	tokens   []token
	pos      int
	registry *sentence.Registry
	*slog.Logger
}

// Sentence parses src, which must hold exactly one sentence.
// Syntax errors are *werr.NewSyntax.
func Sentence(src string, opts ...Option) (sentence.Sentence, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		tokens:   tokens,
		registry: sentence.Default,
		Logger:   log.DefaultLogger.With("section", "parse"),
	}
	for _, opt := range opts {
		opt(p)
	}

	s, err := p.sentence()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.unexpected(tok, "after sentence")
	}
	p.Debug("parsed sentence", "sentence", sentence.LogValue(s))
	return s, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

// keyword consumes the next token if it is the unquoted name word
func (p *parser) keyword(word string) bool {
	if tok := p.peek(); tok.kind == tokName && tok.text == word {
		p.advance()
		return true
	}
	return false
}

func (p *parser) unexpected(tok token, context string) error {
	found := tok.kind.String()
	switch tok.kind {
	case tokName, tokString, tokNumber, tokPunct:
		found = fmt.Sprintf("%s '%s'", found, tok.text)
	}
	return &werr.NewSyntax{
		Line:          tok.line,
		Column:        tok.column,
		ParserMessage: fmt.Sprintf("unexpected %s %s", found, context),
	}
}

func (p *parser) sentence() (sentence.Sentence, error) {
	left, err := p.andTest()
	if err != nil {
		return nil, err
	}
	if !p.keyword("or") {
		return left, nil
	}
	right, err := p.sentence()
	if err != nil {
		return nil, err
	}
	return sentence.Or(left, right), nil
}

func (p *parser) andTest() (sentence.Sentence, error) {
	left, err := p.notTest()
	if err != nil {
		return nil, err
	}
	if !p.keyword("and") {
		return left, nil
	}
	right, err := p.andTest()
	if err != nil {
		return nil, err
	}
	return sentence.And(left, right), nil
}

func (p *parser) notTest() (sentence.Sentence, error) {
	if !p.keyword("not") {
		return p.leaf()
	}
	sub, err := p.notTest()
	if err != nil {
		return nil, err
	}
	return sentence.Negate(sub), nil
}

func (p *parser) leaf() (sentence.Sentence, error) {
	if p.peek().kind == tokLParen {
		p.advance()
		s, err := p.sentence()
		if err != nil {
			return nil, err
		}
		if tok := p.advance(); tok.kind != tokRParen {
			return nil, p.unexpected(tok, "where ')' was expected to close the sentence")
		}
		return s, nil
	}
	return p.label()
}

func (p *parser) label() (sentence.Sentence, error) {
	if p.keyword("true") {
		return p.registry.Top(), nil
	}
	if p.keyword("false") {
		return p.registry.Bottom(), nil
	}

	partitioning, err := p.ident("as partitioning of a label")
	if err != nil {
		return nil, err
	}
	if tok := p.advance(); tok.kind != tokEquals {
		return nil, p.unexpected(tok, "where '=' was expected in a label")
	}
	part, err := p.ident("as part of a label")
	if err != nil {
		return nil, err
	}
	return p.registry.Label(sentence.Partitioning(partitioning), sentence.Part(part)), nil
}

func (p *parser) ident(context string) (string, error) {
	tok := p.advance()
	switch tok.kind {
	case tokName, tokNumber, tokString:
		return tok.text, nil
	default:
		return "", p.unexpected(tok, "where an identifier was expected "+context)
	}
}
