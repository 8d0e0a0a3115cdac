// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashbidimap

import (
	"github.com/odysseythink/mcontainers/containers"
	"github.com/odysseythink/mcontainers/containers/maps"
)

// Assert Iterator implementation
var _ maps.MapIterator[string, int] = (*Iterator[string, int])(nil)

type iteratorState int

const (
	notStarted iteratorState = iota
	yielded
	removed
	exhausted
)

// Iterator walks the keys of a map in random order.
//
// Value and Entry read through to the map, so they reflect changes made by
// MapEntry.SetValue. Remove is valid once after each successful Next.
type Iterator[K comparable, V comparable] struct {
	m        *Map[K, V]
	keys     []K
	index    int
	state    iteratorState
	key      K
	expected int
	err      error
}

func newIterator[K comparable, V comparable](m *Map[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{m: m}
	it.Begin()
	return it
}

// Begin resets the iterator to its initial state (one-before-first) over the
// current contents of the map. Call Next() to fetch the first element if any.
func (it *Iterator[K, V]) Begin() {
	var zero K
	it.keys = it.m.forwardMap.Keys()
	it.index = -1
	it.state = notStarted
	it.key = zero
	it.expected = it.m.keyMods()
	it.err = nil
}

// Next moves the iterator to the next element and returns true if there was a next element in the map.
// It returns false if the map was structurally modified other than through this iterator, see Err.
func (it *Iterator[K, V]) Next() bool {
	if it.state == exhausted {
		return false
	}
	if it.m.keyMods() != it.expected {
		it.err = containers.ErrConcurrentModification
		it.state = exhausted
		return false
	}
	it.index++
	if it.index >= len(it.keys) {
		it.state = exhausted
		return false
	}
	it.key = it.keys[it.index]
	it.state = yielded
	return true
}

// Key returns the current element's key.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value currently mapped by the current element's key.
func (it *Iterator[K, V]) Value() V {
	value, _ := it.m.forwardMap.Get(it.key)
	return value
}

// Entry returns the current element as a writable entry.
func (it *Iterator[K, V]) Entry() *MapEntry[K, V] {
	return &MapEntry[K, V]{m: it.m, key: it.key}
}

// First moves the iterator to the first element and returns true if there was a first element in the map.
func (it *Iterator[K, V]) First() bool {
	it.Begin()
	return it.Next()
}

// NextTo moves the iterator to the next element from current position that satisfies the condition given by the
// passed function, and returns true if there was a next element in the map.
func (it *Iterator[K, V]) NextTo(fn func(key K, value V) bool) bool {
	for it.Next() {
		if fn(it.Key(), it.Value()) {
			return true
		}
	}
	return false
}

// Remove removes the element last returned by Next from the map, together with
// its inverse mapping.
func (it *Iterator[K, V]) Remove() error {
	if it.state != yielded {
		return containers.ErrIllegalState
	}
	if it.m.keyMods() != it.expected {
		it.err = containers.ErrConcurrentModification
		it.state = exhausted
		return it.err
	}
	// the value has to be read before the key is gone
	value, _ := it.m.forwardMap.Get(it.key)
	it.m.forwardMap.Remove(it.key)
	it.m.inverseMap.Remove(value)
	it.m.touchKeys()
	it.m.touchValues()
	it.expected = it.m.keyMods()
	it.state = removed
	return nil
}

// Err returns ErrConcurrentModification if iteration stopped because the map
// was modified behind the iterator's back, nil otherwise.
func (it *Iterator[K, V]) Err() error {
	return it.err
}
