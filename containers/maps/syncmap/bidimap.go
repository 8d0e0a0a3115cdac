// Package syncmap provides mutually exclusive wrappers around the maps of this module.
//
// Every method takes the wrapper's lock for its whole duration, so the paired
// structures behind a map (forward and inverse maps, or entries and bubble list)
// are always updated inside one critical section. Iterators are not safe on their
// own: run the whole iteration inside WithLock.
package syncmap

import (
	"sync"

	"github.com/odysseythink/mcontainers/containers/maps"
)

// BidiMap is a bidirectional map guarded by a read/write lock.
// The map and its inverse share the lock.
type BidiMap[K comparable, V comparable] struct {
	mu      *sync.RWMutex
	m       maps.BidiMap[K, V]
	inverse *BidiMap[V, K]
}

// NewBidiMap wraps m. m must not be used directly afterwards.
func NewBidiMap[K comparable, V comparable](m maps.BidiMap[K, V]) *BidiMap[K, V] {
	mu := &sync.RWMutex{}
	s := &BidiMap[K, V]{mu: mu, m: m}
	s.inverse = &BidiMap[V, K]{mu: mu, m: m.Inverse(), inverse: s}
	return s
}

func (s *BidiMap[K, V]) Put(key K, value V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Put(key, value)
}

func (s *BidiMap[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(key)
}

func (s *BidiMap[K, V]) GetKey(value V) (K, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.GetKey(value)
}

func (s *BidiMap[K, V]) ContainsKey(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.ContainsKey(key)
}

func (s *BidiMap[K, V]) ContainsValue(value V) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.ContainsValue(value)
}

func (s *BidiMap[K, V]) Remove(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(key)
}

func (s *BidiMap[K, V]) RemoveValue(value V) (K, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.RemoveValue(value)
}

// Inverse returns the synchronized inverse view, guarded by the same lock.
func (s *BidiMap[K, V]) Inverse() *BidiMap[V, K] {
	return s.inverse
}

func (s *BidiMap[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Keys()
}

func (s *BidiMap[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Values()
}

func (s *BidiMap[K, V]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Size()
}

func (s *BidiMap[K, V]) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Empty()
}

func (s *BidiMap[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Clear()
}

func (s *BidiMap[K, V]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.String()
}

// WithLock calls fn with the wrapped map while holding the write lock.
// Iterators and views obtained inside fn must not be used after it returns.
func (s *BidiMap[K, V]) WithLock(fn func(m maps.BidiMap[K, V])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.m)
}
