// Package sentence implements propositional sentences over possible worlds.
//
// A possible world selects exactly one Part for every Partitioning. Sentences
// are boolean combinations of Label atoms ("partitioning=part") and the
// constants Top and Bottom. Atoms are interned by a Registry, so that two atoms
// built from equal arguments are the same pointer. Composite sentences
// (Negation, Conjunction, Disjunction) are built fresh on every call and are
// compared structurally with Equal.
//
// Sentences are immutable and safe for concurrent use.
package sentence

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Partitioning names a set of mutually exclusive alternatives
type Partitioning string

// Part is one alternative within a Partitioning
type Part string

type Kind uint8

const (
	KindTop Kind = iota
	KindBottom
	KindLabel
	KindNegation
	KindConjunction
	KindDisjunction
)

func (k Kind) String() string {
	switch k {
	case KindTop:
		return "top"
	case KindBottom:
		return "bottom"
	case KindLabel:
		return "label"
	case KindNegation:
		return "negation"
	case KindConjunction:
		return "conjunction"
	case KindDisjunction:
		return "disjunction"
	default:
		return "invalid"
	}
}

// Sentence is a boolean formula describing a set of possible worlds.
//
// The implementations are closed to this package: *Top, *Bottom, *Label,
// *Negation, *Conjunction and *Disjunction. Consumers should type-switch
// over exactly these.
type Sentence interface {
	fmt.Stringer
	Kind() Kind
	// Hash is consistent with Equal: structurally equal sentences hash identically
	Hash() uint64
	// ShowIn renders the sentence with ctx deciding how each token looks
	ShowIn(ctx ShowCtx) string
	isSentence()
}

// Atom is a leaf Sentence. Atoms are the only interned sentences
type Atom interface {
	Sentence
	isAtom()
}

var (
	_ Atom = (*Top)(nil)
	_ Atom = (*Bottom)(nil)
	_ Atom = (*Label)(nil)

	_ Sentence = (*Negation)(nil)
	_ Sentence = (*Conjunction)(nil)
	_ Sentence = (*Disjunction)(nil)
)

func hashOf(tag string, operands ...uint64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tag))
	arr := make([]byte, 0, 8*len(operands))
	for _, operand := range operands {
		arr = binary.LittleEndian.AppendUint64(arr, operand)
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

var (
	topHash    = hashOf("Top")
	bottomHash = hashOf("Bottom")
)

// Top is the constant true. Obtain it with Registry.Top or True
type Top struct {
	hash uint64
}

func (*Top) Kind() Kind                  { return KindTop }
func (t *Top) Hash() uint64              { return t.hash }
func (t *Top) ShowIn(ctx ShowCtx) string { return ctx.Constant(true) }
func (t *Top) String() string            { return t.ShowIn(PlainShowCtx) }
func (*Top) isSentence()                 {}
func (*Top) isAtom()                     {}

// Bottom is the constant false. Obtain it with Registry.Bottom or False
type Bottom struct {
	hash uint64
}

func (*Bottom) Kind() Kind                  { return KindBottom }
func (b *Bottom) Hash() uint64              { return b.hash }
func (b *Bottom) ShowIn(ctx ShowCtx) string { return ctx.Constant(false) }
func (b *Bottom) String() string            { return b.ShowIn(PlainShowCtx) }
func (*Bottom) isSentence()                 {}
func (*Bottom) isAtom()                     {}

// Label asserts that a world selects Part for Partitioning.
// Obtain it with Registry.Label or LabelOf so that equal labels share one instance.
type Label struct {
	partitioning Partitioning
	part         Part
	hash         uint64
}

func newLabel(partitioning Partitioning, part Part) *Label {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Label"))
	_, _ = h.Write([]byte(partitioning))
	// separates ("ab", "c") from ("a", "bc")
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(part))
	return &Label{
		partitioning: partitioning,
		part:         part,
		hash:         h.Sum64(),
	}
}

func (l *Label) Partitioning() Partitioning { return l.partitioning }
func (l *Label) Part() Part                 { return l.part }
func (*Label) Kind() Kind                   { return KindLabel }
func (l *Label) Hash() uint64               { return l.hash }
func (l *Label) ShowIn(ctx ShowCtx) string  { return ctx.Label(l.partitioning, l.part) }
func (l *Label) String() string             { return l.ShowIn(PlainShowCtx) }
func (*Label) isSentence()                  {}
func (*Label) isAtom()                      {}

type Negation struct {
	sub  Sentence
	hash uint64
}

// Negate builds the negation of s. s must not be nil
func Negate(s Sentence) *Negation {
	return &Negation{
		sub:  s,
		hash: hashOf("Negation", s.Hash()),
	}
}

func (n *Negation) Sub() Sentence { return n.sub }
func (*Negation) Kind() Kind      { return KindNegation }
func (n *Negation) Hash() uint64  { return n.hash }
func (n *Negation) ShowIn(ctx ShowCtx) string {
	return ctx.Operator(KindNegation) + n.sub.ShowIn(ctx)
}
func (n *Negation) String() string { return n.ShowIn(PlainShowCtx) }
func (*Negation) isSentence()      {}

type Conjunction struct {
	left, right Sentence
	hash        uint64
}

// And builds the conjunction of left and right, which must not be nil.
// It does not simplify: And(True(), x) is not x.
func And(left, right Sentence) *Conjunction {
	return &Conjunction{
		left:  left,
		right: right,
		hash:  hashOf("Conjunction", left.Hash(), right.Hash()),
	}
}

func (c *Conjunction) Left() Sentence  { return c.left }
func (c *Conjunction) Right() Sentence { return c.right }
func (*Conjunction) Kind() Kind        { return KindConjunction }
func (c *Conjunction) Hash() uint64    { return c.hash }
func (c *Conjunction) ShowIn(ctx ShowCtx) string {
	return showBinary(ctx, KindConjunction, c.left, c.right)
}
func (c *Conjunction) String() string { return c.ShowIn(PlainShowCtx) }
func (*Conjunction) isSentence()      {}

type Disjunction struct {
	left, right Sentence
	hash        uint64
}

// Or builds the disjunction of left and right, which must not be nil.
// It does not simplify: Or(False(), x) is not x.
func Or(left, right Sentence) *Disjunction {
	return &Disjunction{
		left:  left,
		right: right,
		hash:  hashOf("Disjunction", left.Hash(), right.Hash()),
	}
}

func (d *Disjunction) Left() Sentence  { return d.left }
func (d *Disjunction) Right() Sentence { return d.right }
func (*Disjunction) Kind() Kind        { return KindDisjunction }
func (d *Disjunction) Hash() uint64    { return d.hash }
func (d *Disjunction) ShowIn(ctx ShowCtx) string {
	return showBinary(ctx, KindDisjunction, d.left, d.right)
}
func (d *Disjunction) String() string { return d.ShowIn(PlainShowCtx) }
func (*Disjunction) isSentence()      {}

// AndAll conjoins ss right-nested, so AndAll(a, b, c) is And(a, And(b, c)).
// It returns Top for no sentences and the sentence itself for one.
func AndAll(ss ...Sentence) Sentence {
	switch len(ss) {
	case 0:
		return True()
	case 1:
		return ss[0]
	default:
		return And(ss[0], AndAll(ss[1:]...))
	}
}

// OrAll disjoins ss right-nested, so OrAll(a, b, c) is Or(a, Or(b, c)).
// It returns Bottom for no sentences and the sentence itself for one.
func OrAll(ss ...Sentence) Sentence {
	switch len(ss) {
	case 0:
		return False()
	case 1:
		return ss[0]
	default:
		return Or(ss[0], OrAll(ss[1:]...))
	}
}

// Equal reports whether a and b are structurally equal.
// Operand order matters, and no simplification is applied, so
// And(x, y) is not equal to And(y, x).
func Equal(a, b Sentence) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() || a.Hash() != b.Hash() {
		return false
	}
	switch a := a.(type) {
	case *Top, *Bottom:
		return true
	case *Label:
		other := b.(*Label)
		return a.partitioning == other.partitioning && a.part == other.part
	case *Negation:
		return Equal(a.sub, b.(*Negation).sub)
	case *Conjunction:
		other := b.(*Conjunction)
		return Equal(a.left, other.left) && Equal(a.right, other.right)
	case *Disjunction:
		other := b.(*Disjunction)
		return Equal(a.left, other.left) && Equal(a.right, other.right)
	default:
		panic(fmt.Sprintf("unreachable: unknown sentence type %T", a))
	}
}
