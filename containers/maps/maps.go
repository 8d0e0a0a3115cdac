// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maps provides an abstract Map interface.
//
// In computer science, an associative array, map, symbol table, or dictionary is an abstract data type composed of a collection of (key, value) pairs, such that each possible key appears just once in the collection.
//
// Operations associated with this data type allow:
// - the addition of a pair to the collection
// - the removal of a pair from the collection
// - the modification of an existing pair
// - the lookup of a value associated with a particular key
//
// Reference: https://en.wikipedia.org/wiki/Associative_array
package maps

import "github.com/odysseythink/mcontainers/containers"

// Map interface that all maps implement
type Map[K comparable, V any] interface {
	// Put associates value with key and returns the value previously held by key, if any.
	Put(key K, value V) (old V, replaced bool)
	Get(key K) (value V, found bool)
	// Remove deletes key and returns the value it held, if any.
	Remove(key K) (value V, found bool)
	ContainsKey(key K) bool
	Keys() []K

	containers.Container[V]
	// Empty() bool
	// Size() int
	// Clear()
	// Values() []V
	// String() string
}

// MapIterator is a fail-fast, remove-capable iterator over the entries of a map.
type MapIterator[K comparable, V any] interface {
	containers.RemovableIteratorWithKey[K, V]
}

// BidiMap interface that all bidirectional maps implement (extends the Map interface)
//
// Values are unique: putting a value that is already mapped by another key evicts that other entry.
type BidiMap[K comparable, V comparable] interface {
	GetKey(value V) (key K, found bool)
	// RemoveValue deletes the entry holding value and returns its key, if any.
	RemoveValue(value V) (key K, found bool)
	ContainsValue(value V) bool
	// Inverse returns a view with keys and values swapped. Both views share storage.
	Inverse() BidiMap[V, K]
	Iterator() MapIterator[K, V]

	Map[K, V]
}
