package container

import "errors"

var (
	ErrDuplicateKey = errors.New("an entry with the same key already exists")
)

// Lookup is the capability shared by every container that can be probed
// and shrunk by element.
type Lookup[T any] interface {
	Contains(v T) bool
	Remove(v T) bool
	Len() int
}

var (
	_ Lookup[int] = (*Set[int])(nil)
	_ Lookup[int] = (*List[int])(nil)
	_ Lookup[int] = (*LinkedList[int])(nil)
)
