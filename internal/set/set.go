package set

import (
	"iter"
	"maps"
)

// Set is a set of comparable values backed by a map. The zero value is an empty set.
type Set[T comparable] struct {
	values map[T]struct{}
}

func Of[T comparable](values ...T) Set[T] {
	var s Set[T]
	for _, value := range values {
		s.Insert(value)
	}

	return s
}

// Insert adds the value to the set. It returns false if the value was already present.
func (s *Set[T]) Insert(value T) bool {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	if _, exists := s.values[value]; exists {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

func (s *Set[T]) Has(value T) bool {
	_, exists := s.values[value]
	return exists
}

func (s *Set[T]) Len() int {
	return len(s.values)
}

// Values iterates the set in no particular order.
func (s *Set[T]) Values() iter.Seq[T] {
	return maps.Keys(s.values)
}
