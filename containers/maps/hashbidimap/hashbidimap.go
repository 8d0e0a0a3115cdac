// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashbidimap implements a bidirectional map backed by two hashmaps.
//
// A bidirectional map, or hash bag, is an associative data structure in which the (key,value) pairs form a one-to-one correspondence.
// Thus the binary relation is functional in each direction: value can also act as a key to key.
// A pair (a,b) thus provides a unique coupling between 'a' and 'b' so that 'b' can be found when 'a' is used as a key and 'a' can be found when 'b' is used as a key.
//
// Elements are unordered in the map.
//
// Structure is not thread safe, see the syncmap package.
//
// Reference: https://en.wikipedia.org/wiki/Bidirectional_map
package hashbidimap

import (
	"fmt"

	"github.com/odysseythink/mcontainers/containers"
	"github.com/odysseythink/mcontainers/containers/maps"
	"github.com/odysseythink/mcontainers/containers/maps/hashmap"
)

// Assert Map implementation
var _ maps.BidiMap[string, int] = (*Map[string, int])(nil)
var _ containers.EnumerableWithKey[string, int] = (*Map[string, int])(nil)

// modCounts counts structural modifications of the two key sets of a dual map.
// n[0] belongs to the map returned by New, n[1] to its inverse.
type modCounts struct {
	n [2]int
}

// Map holds the elements in two hashmaps which are always mutual inverses.
//
// The inverse view is a *Map with the two hashmaps swapped; both share the
// same backing maps and modification counters.
type Map[K comparable, V comparable] struct {
	forwardMap *hashmap.Map[K, V]
	inverseMap *hashmap.Map[V, K]
	mods       *modCounts
	side       int
	inverse    *Map[V, K]
}

// New instantiates a bidirectional map.
func New[K comparable, V comparable]() *Map[K, V] {
	m := &Map[K, V]{}
	m.init()
	return m
}

// NewFrom instantiates a bidirectional map holding the entries of src.
// Entries are copied one at a time through Put, so if src maps several keys to
// one value only one of them survives.
func NewFrom[K comparable, V comparable](src map[K]V) *Map[K, V] {
	m := New[K, V]()
	for k, v := range src {
		m.Put(k, v)
	}
	return m
}

func (m *Map[K, V]) init() {
	m.forwardMap = hashmap.New[K, V]()
	m.inverseMap = hashmap.New[V, K]()
	m.mods = &modCounts{}
	m.side = 0
	m.inverse = &Map[V, K]{
		forwardMap: m.inverseMap,
		inverseMap: m.forwardMap,
		mods:       m.mods,
		side:       1,
		inverse:    m,
	}
}

func (m *Map[K, V]) keyMods() int {
	return m.mods.n[m.side]
}

func (m *Map[K, V]) touchKeys() {
	m.mods.n[m.side]++
}

func (m *Map[K, V]) touchValues() {
	m.mods.n[1-m.side]++
}

// Put inserts element into the map and returns the value previously held by key.
//
// If value is already held by another key, that other entry is removed, so a
// single Put may replace up to two existing entries.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	old, replaced = m.forwardMap.Get(key)
	if replaced && old == value {
		return old, true
	}
	valuePresent := m.inverseMap.ContainsKey(value)

	if replaced {
		m.inverseMap.Remove(old)
	}
	evicted := false
	if oldKey, found := m.inverseMap.Get(value); found {
		m.forwardMap.Remove(oldKey)
		evicted = true
	}
	m.forwardMap.Put(key, value)
	m.inverseMap.Put(value, key)

	if !replaced || evicted {
		m.touchKeys()
	}
	if replaced || !valuePresent {
		m.touchValues()
	}
	return old, replaced
}

// Get searches the element in the map by key and returns its value or the zero value if key is not found in map.
// Second return parameter is true if key was found, otherwise false.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	return m.forwardMap.Get(key)
}

// GetKey searches the element in the map by value and returns its key or the zero value if value is not found in map.
// Second return parameter is true if value was found, otherwise false.
func (m *Map[K, V]) GetKey(value V) (key K, found bool) {
	return m.inverseMap.Get(value)
}

// ContainsKey reports whether key is mapped.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.forwardMap.ContainsKey(key)
}

// ContainsValue reports whether value is mapped. It is a lookup in the inverse map, not a scan.
func (m *Map[K, V]) ContainsValue(value V) bool {
	return m.inverseMap.ContainsKey(value)
}

// Remove removes the element from the map by key.
func (m *Map[K, V]) Remove(key K) (value V, found bool) {
	value, found = m.forwardMap.Remove(key)
	if !found {
		return
	}
	m.inverseMap.Remove(value)
	m.touchKeys()
	m.touchValues()
	return value, true
}

// RemoveValue removes the element from the map by value.
func (m *Map[K, V]) RemoveValue(value V) (key K, found bool) {
	return m.inverse.Remove(value)
}

// Inverse returns the map with keys and values swapped.
// Changes made through either map are visible through the other, and
// Inverse().Inverse() returns m itself.
func (m *Map[K, V]) Inverse() maps.BidiMap[V, K] {
	return m.inverse
}

// Empty returns true if map does not contain any elements
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Size returns number of elements in the map.
func (m *Map[K, V]) Size() int {
	return m.forwardMap.Size()
}

// Keys returns all keys (random order).
func (m *Map[K, V]) Keys() []K {
	return m.forwardMap.Keys()
}

// Values returns all values (random order).
func (m *Map[K, V]) Values() []V {
	return m.inverseMap.Keys()
}

// Clear removes all elements from the map.
func (m *Map[K, V]) Clear() {
	if m.Empty() {
		return
	}
	m.forwardMap.Clear()
	m.inverseMap.Clear()
	m.touchKeys()
	m.touchValues()
}

// Iterator returns a fail-fast iterator over the entries of the map.
func (m *Map[K, V]) Iterator() maps.MapIterator[K, V] {
	return newIterator(m)
}

// String returns a string representation of container
func (m *Map[K, V]) String() string {
	elements := make(map[K]V, m.Size())
	m.Each(func(key K, value V) {
		elements[key] = value
	})
	str := "HashBidiMap\n"
	str += fmt.Sprintf("%v", elements)
	return str
}

// Each calls the given function once for each element, passing that element's key and value.
// fn must not modify the map, use an Iterator for that.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	m.forwardMap.Each(fn)
}

// Any passes each element of the map to the given function and
// returns true if the function ever returns true for any element.
func (m *Map[K, V]) Any(fn func(key K, value V) bool) bool {
	_, _, found := m.Find(fn)
	return found
}

// All passes each element of the map to the given function and
// returns true if the function returns true for all elements.
func (m *Map[K, V]) All(fn func(key K, value V) bool) bool {
	return !m.Any(func(key K, value V) bool {
		return !fn(key, value)
	})
}

// Find passes each element of the map to the given function and returns
// the first (key,value) for which the function is true.
func (m *Map[K, V]) Find(fn func(key K, value V) bool) (K, V, bool) {
	for _, k := range m.forwardMap.Keys() {
		v, _ := m.forwardMap.Get(k)
		if fn(k, v) {
			return k, v, true
		}
	}
	var (
		k K
		v V
	)
	return k, v, false
}
