package format

import "github.com/cottand/worlds/sentence"

// unicodeShowCtx uses logic notation: ⊤ ⊥ ¬ ∧ ∨
type unicodeShowCtx struct{}

func (unicodeShowCtx) Constant(value bool) string {
	if value {
		return "⊤"
	}
	return "⊥"
}

func (unicodeShowCtx) Label(partitioning sentence.Partitioning, part sentence.Part) string {
	return sentence.PlainShowCtx.Label(partitioning, part)
}

func (unicodeShowCtx) Operator(kind sentence.Kind) string {
	switch kind {
	case sentence.KindNegation:
		return "¬"
	case sentence.KindConjunction:
		return " ∧ "
	case sentence.KindDisjunction:
		return " ∨ "
	default:
		return ""
	}
}

func (unicodeShowCtx) Paren(open bool) string {
	return sentence.PlainShowCtx.Paren(open)
}
