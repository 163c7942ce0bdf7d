package sentence

import "fmt"

// Assignment is a possible world: it answers whether it selects part for partitioning.
//
// Implementations must be deterministic for a fixed receiver. Check may fail,
// for example for a partitioning the world knows nothing about; Evaluate
// returns such errors unchanged.
type Assignment interface {
	Check(partitioning Partitioning, part Part) (bool, error)
}

// AssignmentFunc adapts a function to an Assignment
type AssignmentFunc func(partitioning Partitioning, part Part) (bool, error)

func (f AssignmentFunc) Check(partitioning Partitioning, part Part) (bool, error) {
	return f(partitioning, part)
}

// Evaluate computes the truth value of s in world.
//
// Operands are evaluated left to right and evaluation stops as soon as the
// result of a Conjunction or Disjunction is known.
func Evaluate(s Sentence, world Assignment) (bool, error) {
	switch s := s.(type) {
	case *Top:
		return true, nil
	case *Bottom:
		return false, nil
	case *Label:
		return world.Check(s.partitioning, s.part)
	case *Negation:
		value, err := Evaluate(s.sub, world)
		if err != nil {
			return false, err
		}
		return !value, nil
	case *Conjunction:
		left, err := Evaluate(s.left, world)
		if err != nil || !left {
			return false, err
		}
		return Evaluate(s.right, world)
	case *Disjunction:
		left, err := Evaluate(s.left, world)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return Evaluate(s.right, world)
	default:
		panic(fmt.Sprintf("unreachable: unknown sentence type %T", s))
	}
}
