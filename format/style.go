package format

import (
	"errors"
	"fmt"

	"github.com/cottand/worlds/sentence"
)

type Style int

const (
	PlainStyle Style = iota
	UnicodeStyle
	ColorStyle
)

var ErrBadStyle = errors.New("bad style")

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"":        PlainStyle,
		"p":       PlainStyle,
		"plain":   PlainStyle,
		"u":       UnicodeStyle,
		"unicode": UnicodeStyle,
		"c":       ColorStyle,
		"color":   ColorStyle,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

func (s Style) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case PlainStyle:
		return []byte("plain"), nil
	case UnicodeStyle:
		return []byte("unicode"), nil
	case ColorStyle:
		return []byte("color"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a style>", s)
	}
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// AllStyles returns all supported styles
func AllStyles() []Style {
	return []Style{PlainStyle, UnicodeStyle, ColorStyle}
}

// ShowCtx returns the context that renders tokens in this style
func (s Style) ShowCtx() sentence.ShowCtx {
	switch s {
	case UnicodeStyle:
		return unicodeShowCtx{}
	case ColorStyle:
		return NewColors()
	default:
		return sentence.PlainShowCtx
	}
}

// Sentence renders s in style
func Sentence(s sentence.Sentence, style Style) string {
	return sentence.Show(s, style.ShowCtx())
}

// Spec renders s in the style named by spec, see ParseStyle
func Spec(s sentence.Sentence, spec string) (string, error) {
	style, err := ParseStyle(spec)
	if err != nil {
		return "", err
	}
	return Sentence(s, style), nil
}
