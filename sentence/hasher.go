package sentence

import "github.com/benbjohnson/immutable"

// Hasher lets sentences key immutable collections by structure rather than identity
type Hasher struct{}

var _ immutable.Hasher[Sentence] = Hasher{}

func (Hasher) Hash(s Sentence) uint32 {
	h := s.Hash()
	return uint32(h ^ h>>32)
}

func (Hasher) Equal(a, b Sentence) bool {
	return Equal(a, b)
}

// NewSet returns a persistent set of sentences compared with Equal
func NewSet(ss ...Sentence) immutable.Set[Sentence] {
	return immutable.NewSet[Sentence](Hasher{}, ss...)
}
