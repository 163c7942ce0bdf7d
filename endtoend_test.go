package main

import (
	"embed"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"testing"

	"github.com/cottand/worlds/parse"
	"github.com/cottand/worlds/sentence"
	"github.com/cottand/worlds/world"
	"github.com/cottand/worlds/worlds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// embeds the test folder
//
//go:embed test
var testSet embed.FS

// format is as follows:
//
//	%worlds:test partitioning=part ... | expected value
func extractTestComment(t *testing.T, str string) (choices []string, expected string) {
	firstLine := strings.Split(str, "\n")[0]
	trimmed := strings.TrimPrefix(firstLine, "%worlds:test ")
	elems := strings.Split(trimmed, "|")
	if len(elems) < 2 {
		t.Fatalf("could not parse comment string: '%v'", firstLine)
	}
	return strings.Fields(elems[0]), strings.TrimSpace(elems[1])
}

func TestEvaluateEndToEnd(t *testing.T) {
	files, err := testSet.ReadDir("test/evaluate")
	require.NoError(t, err)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".worlds") {
			continue
		}
		testFile(t, "evaluate", f)
	}
}

func TestWorldsEndToEnd(t *testing.T) {
	files, err := testSet.ReadDir("test/worlds")
	require.NoError(t, err)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".worlds") {
			continue
		}
		testFile(t, "worlds", f)
	}
}

func testFile(t *testing.T, at string, f fs.DirEntry) bool {
	return t.Run(f.Name(), func(t *testing.T) {
		content, err := testSet.ReadFile(path.Join("test", at, f.Name()))
		require.NoError(t, err)

		choices, expected := extractTestComment(t, string(content))
		w, err := world.ParseChoices(choices)
		require.NoError(t, err)

		q, err := worlds.NewQuery(string(content))
		require.NoError(t, err)

		value, err := q.Evaluate(w)
		require.NoError(t, err)
		assert.Equal(t, expected, strconv.FormatBool(value))

		// the canonical text reads back as the same sentence
		reparsed, err := parse.Sentence(q.Sentence().String())
		require.NoError(t, err)
		assert.True(t, sentence.Equal(q.Sentence(), reparsed), "%v != %v", q.Sentence(), reparsed)

		// the truth table agrees in the rows that make the same choices
		rows, err := q.TruthTable()
		require.NoError(t, err)
		for _, row := range rows {
			if agrees(row.World, w) {
				assert.Equal(t, value, row.Value, "world %v", row.World)
			}
		}
	})
}

func agrees(row, w world.Choices) bool {
	for partitioning, part := range row {
		if chosen, ok := w[partitioning]; ok && chosen != part {
			return false
		}
	}
	return true
}
