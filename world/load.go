package world

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cottand/worlds/sentence"
	"github.com/cottand/worlds/werr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a world from a YAML mapping of partitioning to part:
//
//	color: red
//	size: 3
//
// Scalar parts of any type are read as text.
func Load(r io.Reader) (Choices, error) {
	var raw map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Choices{}, nil
		}
		return nil, errors.Wrap(err, "could not decode world")
	}

	choices := make(Choices, len(raw))
	for partitioning, node := range raw {
		part, err := scalarPart(partitioning, &node)
		if err != nil {
			return nil, err
		}
		choices[sentence.Partitioning(partitioning)] = part
	}
	return choices, nil
}

// scalarPart reads the part chosen for partitioning, following aliases.
// Nulls and empty scalars choose nothing and are rejected.
func scalarPart(partitioning string, node *yaml.Node) (sentence.Part, error) {
	line := node.Line
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return "", &werr.NewBadWorld{
			Reason: fmt.Sprintf("line %d: part of '%s' must be a scalar", line, partitioning),
		}
	}
	if node.Tag == "!!null" || node.Value == "" {
		return "", &werr.NewBadWorld{
			Reason: fmt.Sprintf("line %d: no part chosen for '%s'", line, partitioning),
		}
	}
	return sentence.Part(node.Value), nil
}

func LoadFile(path string) (Choices, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open world file %s", path)
	}
	defer f.Close()

	choices, err := Load(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "in %s", path)
	}
	return choices, nil
}

// ParseChoice reads a single "partitioning=part" assignment
func ParseChoice(choice string) (sentence.Partitioning, sentence.Part, error) {
	partitioning, part, ok := strings.Cut(choice, "=")
	if !ok || partitioning == "" || part == "" {
		return "", "", &werr.NewBadWorld{Reason: fmt.Sprintf("choice '%s' is not of the form partitioning=part", choice)}
	}
	return sentence.Partitioning(partitioning), sentence.Part(part), nil
}

// ParseChoices reads assignments made with ParseChoice into one world.
// Choosing twice for the same partitioning is an error.
func ParseChoices(choices []string) (Choices, error) {
	world := make(Choices, len(choices))
	for _, choice := range choices {
		partitioning, part, err := ParseChoice(choice)
		if err != nil {
			return nil, err
		}
		if previous, ok := world[partitioning]; ok {
			return nil, &werr.NewBadWorld{
				Reason: fmt.Sprintf("partitioning '%s' chosen twice ('%s' and '%s')", partitioning, previous, part),
			}
		}
		world[partitioning] = part
	}
	return world, nil
}
