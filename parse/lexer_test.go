package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected []token
	}{
		{
			name: "label",
			src:  "x=1",
			expected: []token{
				{kind: tokName, text: "x", line: 1, column: 1},
				{kind: tokEquals, text: "=", line: 1, column: 2},
				{kind: tokNumber, text: "1", line: 1, column: 3},
				{kind: tokEOF, line: 1, column: 4},
			},
		},
		{
			name: "period after number is not a fraction",
			src:  "n=2.",
			expected: []token{
				{kind: tokName, text: "n", line: 1, column: 1},
				{kind: tokEquals, text: "=", line: 1, column: 2},
				{kind: tokNumber, text: "2", line: 1, column: 3},
				{kind: tokPunct, text: ".", line: 1, column: 4},
				{kind: tokEOF, line: 1, column: 5},
			},
		},
		{
			name: "escapes and unicode",
			src:  "\"tab\\there\" (é",
			expected: []token{
				{kind: tokString, text: "tab\there", line: 1, column: 1},
				{kind: tokLParen, text: "(", line: 1, column: 13},
				{kind: tokName, text: "é", line: 1, column: 14},
				{kind: tokEOF, line: 1, column: 15},
			},
		},
		{
			name: "comments run to end of line",
			src:  "% nothing here\n  )",
			expected: []token{
				{kind: tokRParen, text: ")", line: 2, column: 3},
				{kind: tokEOF, line: 2, column: 4},
			},
		},
		{
			name: "dash inside names",
			src:  "first-choice",
			expected: []token{
				{kind: tokName, text: "first-choice", line: 1, column: 1},
				{kind: tokEOF, line: 1, column: 13},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := tokenize(tc.src)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, tokens, cmp.AllowUnexported(token{})); diff != "" {
				t.Errorf("tokenize(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}
