package format

import (
	"strings"

	"github.com/cottand/worlds/sentence"
	"github.com/fatih/color"
)

type ColorAttr int

const (
	ConstantColor ColorAttr = iota
	PartitioningColor
	PartColor
	OperatorColor
	SepColor
)

// Colors renders the plain tokens of a sentence decorated with terminal colors.
// Attributes missing from Map use Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

var _ sentence.ShowCtx = (*Colors)(nil)

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			ConstantColor:     color.CyanString,
			PartitioningColor: color.RGB(128, 168, 196).SprintfFunc(),
			PartColor:         color.RGB(8, 196, 16).SprintfFunc(),
			OperatorColor:     color.RGB(196, 96, 16).SprintfFunc(),
			SepColor:          color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func colorDefault(format string, args ...any) string {
	return color.New(color.Reset).Sprintf(format, args...)
}

func (c *Colors) color(attr ColorAttr, text string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	// text is data, not a format
	return f("%s", text)
}

func (c *Colors) Constant(value bool) string {
	return c.color(ConstantColor, sentence.PlainShowCtx.Constant(value))
}

func (c *Colors) Label(partitioning sentence.Partitioning, part sentence.Part) string {
	return c.color(PartitioningColor, string(partitioning)) +
		c.color(SepColor, "=") +
		c.color(PartColor, string(part))
}

// Operator colors the keyword but not the whitespace around it
func (c *Colors) Operator(kind sentence.Kind) string {
	plain := sentence.PlainShowCtx.Operator(kind)
	keyword := strings.TrimSpace(plain)
	if keyword == "" {
		return plain
	}
	i := strings.Index(plain, keyword)
	return plain[:i] + c.color(OperatorColor, keyword) + plain[i+len(keyword):]
}

func (c *Colors) Paren(open bool) string {
	return c.color(SepColor, sentence.PlainShowCtx.Paren(open))
}
