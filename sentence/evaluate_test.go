package sentence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// colorWorld selects red for color and nothing else
var colorWorld = AssignmentFunc(func(partitioning Partitioning, part Part) (bool, error) {
	if partitioning != "color" {
		return false, errUnknown
	}
	return part == "red", nil
})

var errUnknown = errors.New("unknown partitioning")

func TestEvaluate(t *testing.T) {
	red := LabelOf("color", "red")
	blue := LabelOf("color", "blue")

	testCases := []struct {
		name     string
		s        Sentence
		expected bool
	}{
		{"top", True(), true},
		{"bottom", False(), false},
		{"selected label", red, true},
		{"unselected label", blue, false},
		{"negated label", Negate(red), false},
		{"conjunction", And(red, blue), false},
		{"disjunction", Or(red, blue), true},
		{"negated conjunction", Negate(And(red, blue)), true},
		{"conjunction with top", And(True(), red), true},
		{"disjunction with bottom", Or(False(), blue), false},
		{"nested", Or(And(blue, red), Negate(Or(blue, False()))), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := Evaluate(tc.s, colorWorld)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestEvaluatePropagatesCheckErrors(t *testing.T) {
	unknown := LabelOf("shape", "round")

	_, err := Evaluate(unknown, colorWorld)
	assert.Same(t, errUnknown, err)

	_, err = Evaluate(Negate(And(True(), unknown)), colorWorld)
	assert.Same(t, errUnknown, err)

	_, err = Evaluate(Or(LabelOf("color", "blue"), unknown), colorWorld)
	assert.Same(t, errUnknown, err)
}

func TestEvaluateShortCircuitsLeftToRight(t *testing.T) {
	var checked []Label
	world := AssignmentFunc(func(partitioning Partitioning, part Part) (bool, error) {
		checked = append(checked, Label{partitioning: partitioning, part: part})
		return part == "yes", nil
	})
	yes := LabelOf("a", "yes")
	no := LabelOf("b", "no")

	value, err := Evaluate(And(no, yes), world)
	assert.NoError(t, err)
	assert.False(t, value)
	assert.Equal(t, []Label{{partitioning: "b", part: "no"}}, checked)

	checked = nil
	value, err = Evaluate(Or(yes, no), world)
	assert.NoError(t, err)
	assert.True(t, value)
	assert.Equal(t, []Label{{partitioning: "a", part: "yes"}}, checked)

	checked = nil
	value, err = Evaluate(Or(no, yes), world)
	assert.NoError(t, err)
	assert.True(t, value)
	assert.Equal(t, []Label{{partitioning: "b", part: "no"}, {partitioning: "a", part: "yes"}}, checked)
}

func TestEvaluateDeepRightNesting(t *testing.T) {
	labels := make([]Sentence, 10_000)
	for i := range labels {
		labels[i] = LabelOf("color", "blue")
	}
	labels[len(labels)-1] = LabelOf("color", "red")

	value, err := Evaluate(OrAll(labels...), colorWorld)
	assert.NoError(t, err)
	assert.True(t, value)
}
