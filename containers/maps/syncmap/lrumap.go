package syncmap

import (
	"sync"

	"github.com/odysseythink/mcontainers/containers/maps/lrumap"
)

// LRUMap is an LRU map guarded by a mutex. Get reorders the map, so reads take
// the same exclusive lock as writes.
type LRUMap[K comparable, V any] struct {
	mu sync.Mutex
	m  *lrumap.Map[K, V]
}

var _ lrumap.StatsSource = (*LRUMap[string, int])(nil)

// NewLRUMap wraps m. m must not be used directly afterwards.
func NewLRUMap[K comparable, V any](m *lrumap.Map[K, V]) *LRUMap[K, V] {
	return &LRUMap[K, V]{m: m}
}

// NewLRU constructs a synchronized LRU map of the given size.
func NewLRU[K comparable, V any](size int, options ...lrumap.Option[K, V]) (*LRUMap[K, V], error) {
	m, err := lrumap.New[K, V](size, options...)
	if err != nil {
		return nil, err
	}
	return NewLRUMap(m), nil
}

func (s *LRUMap[K, V]) Put(key K, value V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Put(key, value)
}

// Add adds a value and reports whether an eviction occurred.
func (s *LRUMap[K, V]) Add(key K, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Add(key, value)
}

func (s *LRUMap[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Get(key)
}

func (s *LRUMap[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Peek(key)
}

func (s *LRUMap[K, V]) ContainsKey(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.ContainsKey(key)
}

func (s *LRUMap[K, V]) Remove(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(key)
}

func (s *LRUMap[K, V]) RemoveLRU() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.RemoveLRU()
}

func (s *LRUMap[K, V]) GetLRU() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.GetLRU()
}

func (s *LRUMap[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Keys()
}

func (s *LRUMap[K, V]) Values() []V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Values()
}

func (s *LRUMap[K, V]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Size()
}

func (s *LRUMap[K, V]) Resize(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Resize(size)
}

func (s *LRUMap[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Clear()
}

// Stats does not take the lock, the counters are atomic.
func (s *LRUMap[K, V]) Stats() lrumap.Stats {
	return s.m.Stats()
}

// WithLock calls fn with the wrapped map while holding the lock.
func (s *LRUMap[K, V]) WithLock(fn func(m *lrumap.Map[K, V])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.m)
}
