package hashbidimap

import (
	"fmt"
	"strings"

	"github.com/odysseythink/mcontainers/containers/sets/hashset"
)

// KeySet is a live view of the keys of a bidirectional map.
// Removing a key through the view also removes its value from the inverse map.
type KeySet[K comparable, V comparable] struct {
	m *Map[K, V]
}

// KeySet returns a view of the map's keys.
func (m *Map[K, V]) KeySet() *KeySet[K, V] {
	return &KeySet[K, V]{m: m}
}

// ValueSet returns a view of the map's values. It is the key set of the inverse
// map, so removing a value also removes the key that maps to it.
func (m *Map[K, V]) ValueSet() *KeySet[V, K] {
	return m.inverse.KeySet()
}

// Empty returns true if the map does not contain any elements.
func (s *KeySet[K, V]) Empty() bool {
	return s.m.Empty()
}

// Size returns number of keys.
func (s *KeySet[K, V]) Size() int {
	return s.m.Size()
}

// Contains reports whether key is mapped.
func (s *KeySet[K, V]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// Remove removes key and its value from the map.
func (s *KeySet[K, V]) Remove(key K) bool {
	_, found := s.m.Remove(key)
	return found
}

// RemoveAll removes every given key and reports whether the map changed.
func (s *KeySet[K, V]) RemoveAll(keys ...K) bool {
	if s.m.Empty() || len(keys) == 0 {
		return false
	}
	modified := false
	for _, key := range keys {
		if _, found := s.m.Remove(key); found {
			modified = true
		}
	}
	return modified
}

// RetainAll removes every key not among keys and reports whether the map changed.
// Called without keys it clears the map.
func (s *KeySet[K, V]) RetainAll(keys ...K) bool {
	if s.m.Empty() {
		return false
	}
	if len(keys) == 0 {
		s.m.Clear()
		return true
	}
	drop := hashset.New(s.m.Keys()...).Difference(hashset.New(keys...))
	for _, key := range drop.Values() {
		s.m.Remove(key)
	}
	return !drop.Empty()
}

// Clear removes all elements from the map.
func (s *KeySet[K, V]) Clear() {
	s.m.Clear()
}

// Values returns the keys (random order).
func (s *KeySet[K, V]) Values() []K {
	return s.m.Keys()
}

// Iterator returns a fail-fast iterator over the keys.
func (s *KeySet[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(s.m)
}

// String returns a string representation of the view
func (s *KeySet[K, V]) String() string {
	str := "KeySet\n"
	items := []string{}
	for _, k := range s.m.Keys() {
		items = append(items, fmt.Sprintf("%v", k))
	}
	str += strings.Join(items, ", ")
	return str
}

// EntrySet is a live view of the entries of a bidirectional map.
type EntrySet[K comparable, V comparable] struct {
	m *Map[K, V]
}

// EntrySet returns a view of the map's entries.
func (m *Map[K, V]) EntrySet() *EntrySet[K, V] {
	return &EntrySet[K, V]{m: m}
}

// Empty returns true if the map does not contain any elements.
func (s *EntrySet[K, V]) Empty() bool {
	return s.m.Empty()
}

// Size returns number of entries.
func (s *EntrySet[K, V]) Size() int {
	return s.m.Size()
}

// Contains reports whether key is mapped to value.
func (s *EntrySet[K, V]) Contains(key K, value V) bool {
	v, found := s.m.Get(key)
	return found && v == value
}

// Remove removes the entry if key is mapped to value.
func (s *EntrySet[K, V]) Remove(key K, value V) bool {
	if !s.Contains(key, value) {
		return false
	}
	s.m.Remove(key)
	return true
}

// RemoveAll removes every given entry and reports whether the map changed.
func (s *EntrySet[K, V]) RemoveAll(entries ...Pair[K, V]) bool {
	if s.m.Empty() || len(entries) == 0 {
		return false
	}
	modified := false
	for _, e := range entries {
		if s.Remove(e.Key, e.Value) {
			modified = true
		}
	}
	return modified
}

// RetainAll removes every entry not among entries and reports whether the map changed.
// Called without entries it clears the map.
func (s *EntrySet[K, V]) RetainAll(entries ...Pair[K, V]) bool {
	if s.m.Empty() {
		return false
	}
	if len(entries) == 0 {
		s.m.Clear()
		return true
	}
	drop := hashset.New(s.Values()...).Difference(hashset.New(entries...))
	for _, e := range drop.Values() {
		s.m.Remove(e.Key)
	}
	return !drop.Empty()
}

// Clear removes all elements from the map.
func (s *EntrySet[K, V]) Clear() {
	s.m.Clear()
}

// Values returns a snapshot of the entries (random order).
func (s *EntrySet[K, V]) Values() []Pair[K, V] {
	entries := make([]Pair[K, V], 0, s.m.Size())
	s.m.Each(func(key K, value V) {
		entries = append(entries, Pair[K, V]{Key: key, Value: value})
	})
	return entries
}

// Iterator returns a fail-fast iterator over the entries; use Iterator.Entry
// to update a value in place.
func (s *EntrySet[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(s.m)
}

// String returns a string representation of the view
func (s *EntrySet[K, V]) String() string {
	str := "EntrySet\n"
	items := []string{}
	s.m.Each(func(key K, value V) {
		items = append(items, fmt.Sprintf("%v=%v", key, value))
	})
	str += strings.Join(items, ", ")
	return str
}
