// Package worlds ties parsing, evaluation and rendering of sentences together
// for the command line and the browser.
package worlds

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cottand/worlds/format"
	"github.com/cottand/worlds/internal/log"
	"github.com/cottand/worlds/parse"
	"github.com/cottand/worlds/sentence"
	"github.com/cottand/worlds/werr"
	"github.com/cottand/worlds/world"
)

var queryLogger = log.DefaultLogger.With("section", "query")

// Query is a parsed sentence ready to be evaluated and shown
type Query struct {
	src      string
	sentence sentence.Sentence
}

// NewQuery parses src, interning its atoms in the default registry
func NewQuery(src string, opts ...parse.Option) (*Query, error) {
	s, err := parse.Sentence(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not parse sentence: %w", err)
	}
	return &Query{src: src, sentence: s}, nil
}

func (q *Query) Source() string                 { return q.src }
func (q *Query) Sentence() sentence.Sentence    { return q.sentence }
func (q *Query) Show(style format.Style) string { return format.Sentence(q.sentence, style) }

// Labels returns the labels of the sentence in plain text, sorted
func (q *Query) Labels() []string {
	labels := sentence.SortedLabels(q.sentence)
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = label.String()
	}
	return out
}

func (q *Query) Evaluate(w sentence.Assignment) (bool, error) {
	value, err := sentence.Evaluate(q.sentence, w)
	if err != nil {
		return false, fmt.Errorf("could not evaluate %v: %w", q.sentence, err)
	}
	queryLogger.Debug("evaluated", "sentence", sentence.LogValue(q.sentence), "value", value)
	return value, nil
}

// Row is one line of a truth table
type Row struct {
	World world.Choices
	Value bool
}

// TruthTable evaluates the sentence in every world of the parts it mentions
func (q *Query) TruthTable() ([]Row, error) {
	domain := world.DomainOf(q.sentence)
	var rows []Row
	for w := range domain.Worlds() {
		value, err := q.Evaluate(w)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{World: w, Value: value})
	}
	return rows, nil
}

// EvaluateSource parses src and evaluates it in the world described by choices
func EvaluateSource(src string, choices map[string]string) (bool, error) {
	q, err := NewQuery(src)
	if err != nil {
		return false, err
	}
	w := make(world.Choices, len(choices))
	for partitioning, part := range choices {
		w[sentence.Partitioning(partitioning)] = sentence.Part(part)
	}
	return q.Evaluate(w)
}

// ShowSource parses src and renders it in the style named by spec
func ShowSource(src, spec string) (string, error) {
	q, err := NewQuery(src)
	if err != nil {
		return "", err
	}
	return format.Spec(q.sentence, spec)
}

// Describe renders err for users, prefixed by its code when it has one
func Describe(err error) string {
	var worldsErr werr.WorldsError
	if errors.As(err, &worldsErr) {
		return werr.FormatWithCode(worldsErr)
	}
	return err.Error()
}

// LabelsSource parses src and returns its sorted labels
func LabelsSource(src string) ([]string, error) {
	q, err := NewQuery(src)
	if err != nil {
		return nil, err
	}
	return q.Labels(), nil
}

// TruthTable parses src and evaluates it in every world of its domain
func TruthTable(src string) ([]Row, error) {
	q, err := NewQuery(src)
	if err != nil {
		return nil, err
	}
	return q.TruthTable()
}

// NumberPart spells f the way a number part is written in a sentence,
// so that 6 reads as "6" and 2.5 as "2.5"
func NumberPart(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
