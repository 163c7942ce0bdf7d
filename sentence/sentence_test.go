package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualStructural(t *testing.T) {
	r := NewRegistry()
	red := r.Label("color", "red")
	blue := r.Label("color", "blue")

	testCases := []struct {
		name     string
		a, b     Sentence
		expected bool
	}{
		{
			name:     "same operands same order",
			a:        And(red, blue),
			b:        And(red, blue),
			expected: true,
		},
		{
			name:     "operand order matters",
			a:        And(red, blue),
			b:        And(blue, red),
			expected: false,
		},
		{
			name:     "conjunction is not disjunction",
			a:        And(red, blue),
			b:        Or(red, blue),
			expected: false,
		},
		{
			name:     "no simplification of top",
			a:        And(r.Top(), red),
			b:        red,
			expected: false,
		},
		{
			name:     "double negation is kept",
			a:        Negate(Negate(red)),
			b:        red,
			expected: false,
		},
		{
			name:     "nested composites",
			a:        Or(Negate(red), And(blue, r.Bottom())),
			b:        Or(Negate(red), And(blue, r.Bottom())),
			expected: true,
		},
		{
			name:     "labels from different registries",
			a:        r.Label("color", "red"),
			b:        NewRegistry().Label("color", "red"),
			expected: true,
		},
		{
			name:     "top is not bottom",
			a:        r.Top(),
			b:        r.Bottom(),
			expected: false,
		},
		{
			name:     "nil is only equal to nil",
			a:        red,
			b:        nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Equal(tc.a, tc.b))
			assert.Equal(t, tc.expected, Equal(tc.b, tc.a))
			if tc.expected {
				assert.Equal(t, tc.a.Hash(), tc.b.Hash())
			}
		})
	}
}

func TestCompositesAreNotInterned(t *testing.T) {
	red := LabelOf("color", "red")
	first := Negate(red)
	second := Negate(red)

	assert.NotSame(t, first, second)
	assert.True(t, Equal(first, second))
	assert.Same(t, first.Sub(), second.Sub())
}

func TestKinds(t *testing.T) {
	red := LabelOf("color", "red")
	assert.Equal(t, KindTop, True().Kind())
	assert.Equal(t, KindBottom, False().Kind())
	assert.Equal(t, KindLabel, red.Kind())
	assert.Equal(t, KindNegation, Negate(red).Kind())
	assert.Equal(t, KindConjunction, And(red, red).Kind())
	assert.Equal(t, KindDisjunction, Or(red, red).Kind())
	assert.Equal(t, "disjunction", KindDisjunction.String())
	assert.Equal(t, "invalid", Kind(42).String())
}

func TestAccessors(t *testing.T) {
	red := LabelOf("color", "red")
	blue := LabelOf("color", "blue")

	assert.Equal(t, Partitioning("color"), red.Partitioning())
	assert.Equal(t, Part("red"), red.Part())

	conj := And(red, blue)
	assert.Same(t, red, conj.Left())
	assert.Same(t, blue, conj.Right())

	disj := Or(blue, red)
	assert.Same(t, blue, disj.Left())
	assert.Same(t, red, disj.Right())
}

func TestLabelHashSeparatesArguments(t *testing.T) {
	r := NewRegistry()
	assert.NotEqual(t, r.Label("ab", "c").Hash(), r.Label("a", "bc").Hash())
	assert.False(t, Equal(r.Label("ab", "c"), r.Label("a", "bc")))
}

func TestAndAllOrAll(t *testing.T) {
	a := LabelOf("a", "1")
	b := LabelOf("b", "2")
	c := LabelOf("c", "3")

	assert.Same(t, True(), AndAll())
	assert.Same(t, False(), OrAll())
	assert.Same(t, a, AndAll(a))
	assert.Same(t, a, OrAll(a))
	assert.True(t, Equal(And(a, And(b, c)), AndAll(a, b, c)))
	assert.True(t, Equal(Or(a, Or(b, c)), OrAll(a, b, c)))
}

func TestHasherKeysStructurally(t *testing.T) {
	red := LabelOf("color", "red")
	blue := LabelOf("color", "blue")

	s := NewSet(And(red, blue), Negate(red))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(And(red, blue)))
	assert.False(t, s.Has(And(blue, red)))

	s = s.Add(Negate(red))
	assert.Equal(t, 2, s.Len())
}
