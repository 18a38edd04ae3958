package container

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Set is a hash set. Membership follows Go's == on T.
type Set[T comparable] struct {
	mapset.Set[T]
}

func NewSet[T comparable](size int) *Set[T] {
	return &Set[T]{mapset.NewThreadUnsafeSetWithSize[T](size)}
}

// NewSetOf returns a set holding all of vals.
func NewSetOf[T comparable](vals []T) *Set[T] {
	s := NewSet[T](len(vals))
	for _, v := range vals {
		s.Set.Add(v)
	}
	return s
}

func (s *Set[T]) Contains(v T) bool {
	return s.ContainsOne(v)
}

func (s *Set[T]) Remove(v T) bool {
	if !s.ContainsOne(v) {
		return false
	}
	s.Set.Remove(v)
	return true
}

func (s *Set[T]) Len() int {
	return s.Cardinality()
}
