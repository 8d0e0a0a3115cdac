// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashmap implements a map backed by a hash table.
//
// Elements are unordered in the map.
//
// Structure is not thread safe.
//
// Reference: http://en.wikipedia.org/wiki/Associative_array
package hashmap

import (
	"fmt"

	xmaps "golang.org/x/exp/maps"

	"github.com/odysseythink/mcontainers/containers/maps"
)

// Assert Map implementation
var _ maps.Map[string, int] = (*Map[string, int])(nil)

// Map holds the elements in go's native map
type Map[K comparable, V any] struct {
	m map[K]V
}

// New instantiates a hash map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// Put inserts element into the map and returns the value previously stored under key.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	old, replaced = m.m[key]
	m.m[key] = value
	return old, replaced
}

// Get searches the element in the map by key and returns its value or the zero value if key is not found in map.
// Second return parameter is true if key was found, otherwise false.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	value, found = m.m[key]
	return
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, found := m.m[key]
	return found
}

// Remove removes the element from the map by key and returns what it held.
func (m *Map[K, V]) Remove(key K) (value V, found bool) {
	value, found = m.m[key]
	if found {
		delete(m.m, key)
	}
	return
}

// Empty returns true if map does not contain any elements
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Size returns number of elements in the map.
func (m *Map[K, V]) Size() int {
	return len(m.m)
}

// Keys returns all keys (random order).
func (m *Map[K, V]) Keys() []K {
	return xmaps.Keys(m.m)
}

// Values returns all values (random order).
func (m *Map[K, V]) Values() []V {
	return xmaps.Values(m.m)
}

// Each calls fn once for each element. fn must not modify the map.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for k, v := range m.m {
		fn(k, v)
	}
}

// Clear removes all elements from the map.
func (m *Map[K, V]) Clear() {
	m.m = make(map[K]V)
}

// String returns a string representation of container
func (m *Map[K, V]) String() string {
	str := "HashMap\n"
	str += fmt.Sprintf("%v", m.m)
	return str
}
