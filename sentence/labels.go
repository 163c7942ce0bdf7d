package sentence

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-set/v3"
	sortedset "github.com/xtgo/set"
)

// Labels returns the distinct labels s refers to.
//
// Labels from one Registry are deduplicated by identity, which interning
// makes equivalent to structural equality.
func Labels(s Sentence) *set.Set[*Label] {
	labels := set.New[*Label](0)
	collectLabels(s, labels)
	return labels
}

func collectLabels(s Sentence, into *set.Set[*Label]) {
	switch s := s.(type) {
	case *Top, *Bottom:
	case *Label:
		into.Insert(s)
	case *Negation:
		collectLabels(s.sub, into)
	case *Conjunction:
		collectLabels(s.left, into)
		collectLabels(s.right, into)
	case *Disjunction:
		collectLabels(s.left, into)
		collectLabels(s.right, into)
	default:
		panic(fmt.Sprintf("unreachable: unknown sentence type %T", s))
	}
}

type labelSlice []*Label

func (s labelSlice) Len() int      { return len(s) }
func (s labelSlice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s labelSlice) Less(i, j int) bool {
	if s[i].partitioning != s[j].partitioning {
		return s[i].partitioning < s[j].partitioning
	}
	return s[i].part < s[j].part
}

// SortedLabels returns the labels of all ss ordered by partitioning, then part.
// Equal labels interned by different registries appear once.
func SortedLabels(ss ...Sentence) []*Label {
	labels := set.New[*Label](0)
	for _, s := range ss {
		collectLabels(s, labels)
	}
	sorted := labelSlice(labels.Slice())
	sort.Sort(sorted)
	return sorted[:sortedset.Uniq(sorted)]
}

// Partitionings returns the distinct partitionings s refers to, sorted
func Partitionings(s Sentence) []Partitioning {
	var partitionings []Partitioning
	for _, label := range SortedLabels(s) {
		n := len(partitionings)
		if n == 0 || partitionings[n-1] != label.partitioning {
			partitionings = append(partitionings, label.partitioning)
		}
	}
	return partitionings
}
