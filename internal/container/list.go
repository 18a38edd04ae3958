package container

import (
	"github.com/chen3feng/stl4go"
	"golang.org/x/exp/slices"
)

// List is a growable array kept in insertion order. Lookups are linear
// scans using the list's equality discipline.
type List[T any] struct {
	v  stl4go.Vector[T]
	eq Equality[T]
}

func NewList[T any](eq Equality[T], size int) *List[T] {
	return &List[T]{v: stl4go.MakeVectorCap[T](size), eq: eq}
}

// NewListOf returns a list holding a copy of vals.
func NewListOf[T any](eq Equality[T], vals []T) *List[T] {
	l := NewList(eq, len(vals))
	for _, v := range vals {
		l.v.PushBack(v)
	}
	return l
}

// Add appends v to the end of the list.
func (l *List[T]) Add(v T) {
	l.v.PushBack(v)
}

func (l *List[T]) index(v T) int {
	return slices.IndexFunc(l.v, func(x T) bool {
		return l.eq.Equal(x, v)
	})
}

func (l *List[T]) Contains(v T) bool {
	return l.index(v) >= 0
}

// Remove deletes the first element equal to v.
func (l *List[T]) Remove(v T) bool {
	i := l.index(v)
	if i < 0 {
		return false
	}
	l.v.Remove(i)
	return true
}

func (l *List[T]) Len() int {
	return l.v.Len()
}

func (l *List[T]) Index(i int) (v T, ok bool) {
	if i < 0 || i >= l.v.Len() {
		return
	}
	return l.v.At(i), true
}
