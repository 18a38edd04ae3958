package container

import (
	"github.com/zyedidia/generic/list"
)

// LinkedList is a doubly linked list. Lookups walk from the front.
type LinkedList[T any] struct {
	ll   *list.List[T]
	eq   Equality[T]
	size int
}

func NewLinkedList[T any](eq Equality[T]) *LinkedList[T] {
	return &LinkedList[T]{ll: list.New[T](), eq: eq}
}

// NewLinkedListOf returns a linked list holding vals in order.
func NewLinkedListOf[T any](eq Equality[T], vals []T) *LinkedList[T] {
	l := NewLinkedList(eq)
	for _, v := range vals {
		l.Add(v)
	}
	return l
}

func (l *LinkedList[T]) Add(v T) {
	l.ll.PushBack(v)
	l.size++
}

func (l *LinkedList[T]) find(v T) *list.Node[T] {
	for n := l.ll.Front; n != nil; n = n.Next {
		if l.eq.Equal(n.Value, v) {
			return n
		}
	}
	return nil
}

func (l *LinkedList[T]) Contains(v T) bool {
	return l.find(v) != nil
}

// Remove unlinks the first node equal to v.
func (l *LinkedList[T]) Remove(v T) bool {
	n := l.find(v)
	if n == nil {
		return false
	}
	l.ll.Remove(n)
	l.size--
	return true
}

func (l *LinkedList[T]) Len() int {
	return l.size
}
