package sentence

import "strings"

// ShowCtx decides how each token of a sentence is rendered.
// Sentences only decide the layout: which tokens appear, and in which order.
type ShowCtx interface {
	Constant(value bool) string
	Label(partitioning Partitioning, part Part) string
	// Operator renders the operator of a composite kind including the
	// whitespace around it, eg " and " in plain text
	Operator(kind Kind) string
	Paren(open bool) string
}

type plainShowCtx struct{}

// PlainShowCtx renders the canonical text of a sentence:
// true, false, p=k, not s, (l and r), (l or r)
var PlainShowCtx ShowCtx = plainShowCtx{}

func (plainShowCtx) Constant(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

func (plainShowCtx) Label(partitioning Partitioning, part Part) string {
	return string(partitioning) + "=" + string(part)
}

func (plainShowCtx) Operator(kind Kind) string {
	switch kind {
	case KindNegation:
		return "not "
	case KindConjunction:
		return " and "
	case KindDisjunction:
		return " or "
	default:
		return ""
	}
}

func (plainShowCtx) Paren(open bool) string {
	if open {
		return "("
	}
	return ")"
}

func showBinary(ctx ShowCtx, kind Kind, left, right Sentence) string {
	sb := strings.Builder{}
	sb.WriteString(ctx.Paren(true))
	sb.WriteString(left.ShowIn(ctx))
	sb.WriteString(ctx.Operator(kind))
	sb.WriteString(right.ShowIn(ctx))
	sb.WriteString(ctx.Paren(false))
	return sb.String()
}

// Show renders s with ctx, or with PlainShowCtx if ctx is nil
func Show(s Sentence, ctx ShowCtx) string {
	if ctx == nil {
		ctx = PlainShowCtx
	}
	return s.ShowIn(ctx)
}
