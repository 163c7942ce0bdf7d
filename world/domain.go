package world

import (
	"iter"
	"math"
	"slices"

	"github.com/cottand/worlds/sentence"
	"github.com/cottand/worlds/werr"
)

// Domain lists the known parts of each partitioning
type Domain struct {
	parts map[sentence.Partitioning][]sentence.Part
}

func NewDomain() *Domain {
	return &Domain{parts: make(map[sentence.Partitioning][]sentence.Part)}
}

// DomainOf collects every part the sentences mention, per partitioning
func DomainOf(ss ...sentence.Sentence) *Domain {
	d := NewDomain()
	for _, label := range sentence.SortedLabels(ss...) {
		d.Add(label.Partitioning(), label.Part())
	}
	return d
}

// Add registers parts as alternatives of partitioning, keeping parts sorted and distinct
func (d *Domain) Add(partitioning sentence.Partitioning, parts ...sentence.Part) {
	known := d.parts[partitioning]
	for _, part := range parts {
		i, found := slices.BinarySearch(known, part)
		if !found {
			known = slices.Insert(known, i, part)
		}
	}
	d.parts[partitioning] = known
}

// Parts returns the sorted alternatives of partitioning
func (d *Domain) Parts(partitioning sentence.Partitioning) []sentence.Part {
	return slices.Clone(d.parts[partitioning])
}

// Partitionings returns the sorted partitionings of d
func (d *Domain) Partitionings() []sentence.Partitioning {
	partitionings := make([]sentence.Partitioning, 0, len(d.parts))
	for partitioning := range d.parts {
		partitionings = append(partitionings, partitioning)
	}
	slices.Sort(partitionings)
	return partitionings
}

// Validate checks that c chooses a known part for every partitioning of d
func (d *Domain) Validate(c Choices) error {
	for _, partitioning := range d.Partitionings() {
		part, ok := c[partitioning]
		if !ok {
			return &werr.NewUnknownPartitioning{Partitioning: string(partitioning)}
		}
		if _, found := slices.BinarySearch(d.parts[partitioning], part); !found {
			return &werr.NewUnknownPart{Partitioning: string(partitioning), Part: string(part)}
		}
	}
	return nil
}

// Size returns the number of worlds Worlds yields, saturating at math.MaxInt
func (d *Domain) Size() int {
	size := 1
	for _, parts := range d.parts {
		if len(parts) == 0 {
			return 0
		}
		if size > math.MaxInt/len(parts) {
			size = math.MaxInt
			continue
		}
		size *= len(parts)
	}
	return size
}

// Worlds yields every selection of one part per partitioning of d, in
// lexicographic order of (partitioning, part). The yielded Choices are
// fresh and may be kept.
func (d *Domain) Worlds() iter.Seq[Choices] {
	partitionings := d.Partitionings()
	return func(yield func(Choices) bool) {
		for _, partitioning := range partitionings {
			if len(d.parts[partitioning]) == 0 {
				return
			}
		}
		indices := make([]int, len(partitionings))
		for {
			choices := make(Choices, len(partitionings))
			for i, partitioning := range partitionings {
				choices[partitioning] = d.parts[partitioning][indices[i]]
			}
			if !yield(choices) {
				return
			}
			// odometer increment, last partitioning fastest
			i := len(indices) - 1
			for ; i >= 0; i-- {
				indices[i]++
				if indices[i] < len(d.parts[partitionings[i]]) {
					break
				}
				indices[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
