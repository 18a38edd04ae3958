package container

import (
	"fmt"

	"github.com/cockroachdb/swiss"
)

// Map is a swiss-table hash map. Keys follow Go's ==; ContainsValue uses
// the map's value equality discipline.
type Map[K comparable, V any] struct {
	m  *swiss.Map[K, V]
	eq Equality[V]
}

func NewMap[K comparable, V any](eq Equality[V], size int) *Map[K, V] {
	return &Map[K, V]{m: swiss.New[K, V](size), eq: eq}
}

// NewIdentityMap returns a map where every element of vals is keyed by
// itself.
func NewIdentityMap[T comparable](eq Equality[T], vals []T) *Map[T, T] {
	m := NewMap[T, T](eq, len(vals))
	for _, v := range vals {
		m.m.Put(v, v)
	}
	return m
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.m.Get(key)
}

// Insert adds a new entry and fails if key is already present.
func (m *Map[K, V]) Insert(key K, val V) error {
	if _, ok := m.m.Get(key); ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	m.m.Put(key, val)
	return nil
}

// Set adds or overwrites an entry and reports whether key was new.
func (m *Map[K, V]) Set(key K, val V) bool {
	_, ok := m.m.Get(key)
	m.m.Put(key, val)
	return !ok
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.m.Get(key)
	return ok
}

// ContainsValue scans every entry until one holds val.
func (m *Map[K, V]) ContainsValue(val V) (found bool) {
	m.m.All(func(_ K, v V) bool {
		found = m.eq.Equal(v, val)
		return !found
	})
	return
}

func (m *Map[K, V]) Remove(key K) bool {
	_, ok := m.m.Get(key)
	m.m.Delete(key)
	return ok
}

func (m *Map[K, V]) Len() int {
	return m.m.Len()
}

func (m *Map[K, V]) Scan(fn func(key K, val V)) {
	m.m.All(func(key K, val V) (next bool) {
		fn(key, val)
		return true
	})
}
