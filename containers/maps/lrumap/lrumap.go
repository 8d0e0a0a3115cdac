// Package lrumap implements a fixed-size map that evicts its least recently used entry.
//
// Recency is tracked with a bubble list: every key owns one slot of an array of
// maximumSize slots and caches its slot index, and a hit swaps the key with its
// neighbour one step closer to the most recently used end. This approximates LRU
// order at O(1) cost per access; entries that are never touched drift toward the
// head of the list, where eviction happens.
//
// Structure is not thread safe, see the syncmap package.
package lrumap

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/odysseythink/mcontainers/containers"
	"github.com/odysseythink/mcontainers/containers/maps"
	"github.com/odysseythink/mcontainers/containers/maps/hashmap"
)

// Assert Map implementation
var _ maps.Map[string, int] = (*Map[string, int])(nil)

type entry[V any] struct {
	value V
	// position is the slot of the key in bubbleList.
	position int
}

// Map is a fixed-size map with least-recently-used eviction.
//
// bubbleList is used as a ring: the key at head is the least recently used one,
// and the key at logical position Size()-1 the most recently used one.
type Map[K comparable, V any] struct {
	maxSize    int
	items      *hashmap.Map[K, *entry[V]]
	bubbleList []K
	head       int
	opts       *Options[K, V]

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
	size      atomic.Int64
	capacity  atomic.Int64
}

// New constructs a Map holding at most maximumSize entries.
func New[K comparable, V any](maximumSize int, options ...Option[K, V]) (*Map[K, V], error) {
	if maximumSize <= 0 {
		return nil, errors.Wrapf(containers.ErrInvalidCapacity, "got %d", maximumSize)
	}
	m := &Map[K, V]{
		maxSize:    maximumSize,
		items:      hashmap.New[K, *entry[V]](),
		bubbleList: make([]K, maximumSize),
		opts:       loadOptions(options...),
	}
	m.capacity.Store(int64(maximumSize))
	return m, nil
}

// slot converts a logical position (0 = least recently used) to a bubbleList index.
func (m *Map[K, V]) slot(position int) int {
	return (m.head + position) % m.maxSize
}

// logical converts a bubbleList index to a logical position.
func (m *Map[K, V]) logical(slot int) int {
	return (slot - m.head + m.maxSize) % m.maxSize
}

// Get looks up a key's value and moves the key one step toward the most recently used end.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	e, found := m.items.Get(key)
	if !found {
		m.misses.Add(1)
		return
	}
	m.hits.Add(1)
	m.bubble(key, e)
	return e.value, true
}

// bubble swaps key with its neighbour on the most recently used side.
func (m *Map[K, V]) bubble(key K, e *entry[V]) {
	p := m.logical(e.position)
	if p >= m.items.Size()-1 {
		return
	}
	next := m.slot(p + 1)
	other := m.bubbleList[next]
	oe, _ := m.items.Get(other)

	m.bubbleList[e.position], m.bubbleList[next] = other, key
	oe.position = e.position
	e.position = next
}

// Put adds or updates a value and returns the value previously stored under key.
//
// Updating an existing key refreshes its recency like Get and does not use a new slot.
// Adding a key to a full map first evicts the least recently used entry.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	if e, found := m.items.Get(key); found {
		old = e.value
		e.value = value
		m.bubble(key, e)
		return old, true
	}
	var evicted []pair[K, V]
	if m.items.Size() >= m.maxSize {
		evicted = append(evicted, m.evict())
	}
	position := m.slot(m.items.Size())
	m.bubbleList[position] = key
	m.items.Put(key, &entry[V]{value: value, position: position})
	m.size.Store(int64(m.items.Size()))
	m.notifyEvicted(evicted)
	return old, false
}

// Add adds a value and reports whether an eviction occurred.
func (m *Map[K, V]) Add(key K, value V) (evicted bool) {
	evicted = m.Full() && !m.items.ContainsKey(key)
	m.Put(key, value)
	return evicted
}

type pair[K comparable, V any] struct {
	key   K
	value V
}

// evict drops the least recently used entry to make room. The caller reports
// it through notifyEvicted once the map is consistent again.
func (m *Map[K, V]) evict() pair[K, V] {
	key, value := m.removeAt(0)
	m.evictions.Add(1)
	m.opts.Logger.V(1).Info("evicted least recently used entry", "key", key, "maxSize", m.maxSize)
	return pair[K, V]{key: key, value: value}
}

// notifyEvicted runs the evict callback. The callback may use the map.
func (m *Map[K, V]) notifyEvicted(evicted []pair[K, V]) {
	if m.opts.OnEvict == nil {
		return
	}
	for _, p := range evicted {
		m.opts.OnEvict(p.key, p.value)
	}
}

// removeAt removes the key at a logical position. Keys after it move one slot
// toward the head so that positions stay dense.
func (m *Map[K, V]) removeAt(position int) (K, V) {
	var zero K
	s := m.slot(position)
	key := m.bubbleList[s]
	e, _ := m.items.Remove(key)
	n := m.items.Size()

	if position == 0 {
		m.bubbleList[s] = zero
		m.head = (m.head + 1) % m.maxSize
	} else {
		for i := position; i < n; i++ {
			from, to := m.slot(i+1), m.slot(i)
			moved := m.bubbleList[from]
			m.bubbleList[to] = moved
			me, _ := m.items.Get(moved)
			me.position = to
		}
		m.bubbleList[m.slot(n)] = zero
	}
	m.size.Store(int64(n))
	return key, e.value
}

// Peek returns the key's value without updating its recency.
func (m *Map[K, V]) Peek(key K) (value V, found bool) {
	e, found := m.items.Get(key)
	if !found {
		return
	}
	return e.value, true
}

// ContainsKey checks if a key is in the map, without updating its recency.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.items.ContainsKey(key)
}

// Remove removes the provided key and returns the value it held.
func (m *Map[K, V]) Remove(key K) (value V, found bool) {
	e, found := m.items.Get(key)
	if !found {
		return
	}
	_, value = m.removeAt(m.logical(e.position))
	return value, true
}

// RemoveLRU removes the least recently used entry.
func (m *Map[K, V]) RemoveLRU() (key K, value V, found bool) {
	if m.items.Empty() {
		return
	}
	key, value = m.removeAt(0)
	return key, value, true
}

// GetLRU returns the least recently used entry without touching it.
func (m *Map[K, V]) GetLRU() (key K, value V, found bool) {
	if m.items.Empty() {
		return
	}
	key = m.bubbleList[m.head]
	e, _ := m.items.Get(key)
	return key, e.value, true
}

// Keys returns the keys from least to most recently used.
func (m *Map[K, V]) Keys() []K {
	n := m.items.Size()
	keys := make([]K, n)
	for i := 0; i < n; i++ {
		keys[i] = m.bubbleList[m.slot(i)]
	}
	return keys
}

// Values returns the values from least to most recently used.
func (m *Map[K, V]) Values() []V {
	n := m.items.Size()
	values := make([]V, n)
	for i := 0; i < n; i++ {
		e, _ := m.items.Get(m.bubbleList[m.slot(i)])
		values[i] = e.value
	}
	return values
}

// Each calls fn for every entry from least to most recently used, without updating recency.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for i, n := 0, m.items.Size(); i < n; i++ {
		key := m.bubbleList[m.slot(i)]
		e, _ := m.items.Get(key)
		fn(key, e.value)
	}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.items.Size()
}

// Empty returns true if the map does not contain any elements.
func (m *Map[K, V]) Empty() bool {
	return m.items.Empty()
}

// Full returns true if the next Put of a new key evicts an entry.
func (m *Map[K, V]) Full() bool {
	return m.items.Size() == m.maxSize
}

// MaxSize returns the capacity of the map.
func (m *Map[K, V]) MaxSize() int {
	return m.maxSize
}

// Clear removes all entries without calling the evict callback.
func (m *Map[K, V]) Clear() {
	m.items.Clear()
	m.bubbleList = make([]K, m.maxSize)
	m.head = 0
	m.size.Store(0)
}

// Resize changes the capacity, evicting least recently used entries that no longer fit.
func (m *Map[K, V]) Resize(maximumSize int) (evicted int, err error) {
	if maximumSize <= 0 {
		return 0, errors.Wrapf(containers.ErrInvalidCapacity, "got %d", maximumSize)
	}
	var dropped []pair[K, V]
	for m.items.Size() > maximumSize {
		dropped = append(dropped, m.evict())
	}
	keys := m.Keys()
	m.bubbleList = make([]K, maximumSize)
	for i, key := range keys {
		m.bubbleList[i] = key
		e, _ := m.items.Get(key)
		e.position = i
	}
	m.head = 0
	m.maxSize = maximumSize
	m.capacity.Store(int64(maximumSize))
	m.notifyEvicted(dropped)
	return len(dropped), nil
}

// String returns a string representation of container
func (m *Map[K, V]) String() string {
	str := "LRUMap\n"
	items := []string{}
	m.Each(func(key K, value V) {
		items = append(items, fmt.Sprintf("%v:%v", key, value))
	})
	str += strings.Join(items, ", ")
	return str
}
