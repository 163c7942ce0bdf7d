// Package world provides concrete possible worlds to evaluate sentences against
package world

import (
	"maps"
	"slices"
	"strings"

	"github.com/cottand/worlds/sentence"
	"github.com/cottand/worlds/werr"
)

// Choices is a possible world selecting one part per partitioning.
//
// Check fails with *werr.NewUnknownPartitioning for partitionings without a
// choice; see Lenient for a world that answers false instead.
type Choices map[sentence.Partitioning]sentence.Part

var _ sentence.Assignment = Choices(nil)

func (c Choices) Check(partitioning sentence.Partitioning, part sentence.Part) (bool, error) {
	chosen, ok := c[partitioning]
	if !ok {
		return false, &werr.NewUnknownPartitioning{Partitioning: string(partitioning)}
	}
	return chosen == part, nil
}

// Lenient returns a world like c where labels of unknown partitionings are false
func (c Choices) Lenient() sentence.Assignment {
	return sentence.AssignmentFunc(func(partitioning sentence.Partitioning, part sentence.Part) (bool, error) {
		chosen, ok := c[partitioning]
		return ok && chosen == part, nil
	})
}

// Partitionings returns the partitionings c chooses for, sorted
func (c Choices) Partitionings() []sentence.Partitioning {
	return slices.Sorted(maps.Keys(c))
}

// String renders c as "p1=k1, p2=k2" ordered by partitioning
func (c Choices) String() string {
	sb := strings.Builder{}
	for i, partitioning := range c.Partitionings() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sentence.PlainShowCtx.Label(partitioning, c[partitioning]))
	}
	return sb.String()
}

// Clone returns a copy of c that can be modified independently
func (c Choices) Clone() Choices {
	return maps.Clone(c)
}
