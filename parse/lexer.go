package parse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cottand/worlds/werr"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokEquals
	tokName
	tokString
	tokNumber
	tokPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokEquals:
		return "'='"
	case tokName:
		return "name"
	case tokString:
		return "string"
	case tokNumber:
		return "number"
	default:
		return "punctuation"
	}
}

type token struct {
	kind tokenKind
	// text is the unquoted value for strings
	text         string
	line, column int
}

// isIdentifier reports whether r may be part of a name.
// Punctuation of the clause language also ends names, so that sentences
// embedded in clauses tokenize the same way.
func isIdentifier(r rune) bool {
	return !unicode.IsSpace(r) && !strings.ContainsRune("()=,.!~?[]@:%\"", r)
}

type lexer struct {
	src          string
	offset       int
	line, column int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, column: 1}
}

func (l *lexer) peekRune(skip int) rune {
	offset := l.offset
	for ; skip > 0 && offset < len(l.src); skip-- {
		_, size := utf8.DecodeRuneInString(l.src[offset:])
		offset += size
	}
	if offset >= len(l.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.src[offset:])
	return r
}

func (l *lexer) nextRune() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.offset:])
	l.offset += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *lexer) errorf(line, column int, message string) error {
	return &werr.NewSyntax{Line: line, Column: column, ParserMessage: message}
}

func (l *lexer) skipSpaceAndComments() {
	for l.offset < len(l.src) {
		r := l.peekRune(0)
		switch {
		case unicode.IsSpace(r):
			l.nextRune()
		case r == '%':
			for l.offset < len(l.src) && l.peekRune(0) != '\n' {
				l.nextRune()
			}
		default:
			return
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	tok := token{line: l.line, column: l.column}
	if l.offset >= len(l.src) {
		tok.kind = tokEOF
		return tok, nil
	}

	r := l.peekRune(0)
	switch {
	case r == '(':
		l.nextRune()
		tok.kind, tok.text = tokLParen, "("
	case r == ')':
		l.nextRune()
		tok.kind, tok.text = tokRParen, ")"
	case r == '=':
		l.nextRune()
		tok.kind, tok.text = tokEquals, "="
	case r == '"':
		text, err := l.quoted()
		if err != nil {
			return tok, err
		}
		tok.kind, tok.text = tokString, text
	case unicode.IsDigit(r) || r == '-' && unicode.IsDigit(l.peekRune(1)):
		tok.kind, tok.text = tokNumber, l.number()
	case isIdentifier(r):
		start := l.offset
		for l.offset < len(l.src) && isIdentifier(l.peekRune(0)) {
			l.nextRune()
		}
		tok.kind, tok.text = tokName, l.src[start:l.offset]
	default:
		l.nextRune()
		tok.kind, tok.text = tokPunct, string(r)
	}
	return tok, nil
}

func (l *lexer) number() string {
	start := l.offset
	if l.peekRune(0) == '-' {
		l.nextRune()
	}
	for unicode.IsDigit(l.peekRune(0)) {
		l.nextRune()
	}
	// a period only continues the number if a digit follows it
	if l.peekRune(0) == '.' && unicode.IsDigit(l.peekRune(1)) {
		l.nextRune()
		for unicode.IsDigit(l.peekRune(0)) {
			l.nextRune()
		}
	}
	return l.src[start:l.offset]
}

// quoted consumes a double-quoted string literal and returns its value
func (l *lexer) quoted() (string, error) {
	line, column := l.line, l.column
	start := l.offset
	l.nextRune()
	for {
		if l.offset >= len(l.src) {
			return "", l.errorf(line, column, "end of input in string literal")
		}
		switch l.nextRune() {
		case '\n':
			return "", l.errorf(line, column, "newline in string literal")
		case '\\':
			if l.offset >= len(l.src) {
				return "", l.errorf(line, column, "end of input in string escape")
			}
			l.nextRune()
		case '"':
			text, err := strconv.Unquote(l.src[start:l.offset])
			if err != nil {
				return "", l.errorf(line, column, "invalid string literal: "+err.Error())
			}
			return text, nil
		}
	}
}

// tokenize reads all of src, ending with a tokEOF token
func tokenize(src string) ([]token, error) {
	l := newLexer(src)
	var tokens []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.kind == tokEOF {
			return tokens, nil
		}
	}
}
