package hashbidimap

import (
	"github.com/pkg/errors"

	"github.com/odysseythink/mcontainers/containers"
)

// Pair is a detached key/value pair.
type Pair[K comparable, V comparable] struct {
	Key   K
	Value V
}

// MapEntry is a live entry of a bidirectional map as returned by Iterator.Entry.
type MapEntry[K comparable, V comparable] struct {
	m   *Map[K, V]
	key K
}

// Key returns the entry's key.
func (e *MapEntry[K, V]) Key() K {
	return e.key
}

// Value returns the value currently mapped by the entry's key.
func (e *MapEntry[K, V]) Value() V {
	value, _ := e.m.forwardMap.Get(e.key)
	return value
}

// SetValue replaces the entry's value in both directions and returns the old value.
//
// It fails with ErrValueInUse if value is held by another key, and with
// ErrIllegalState if the entry has been removed from the map.
func (e *MapEntry[K, V]) SetValue(value V) (V, error) {
	old, found := e.m.forwardMap.Get(e.key)
	if !found {
		return old, errors.Wrapf(containers.ErrIllegalState, "key %v is no longer mapped", e.key)
	}
	if holder, found := e.m.inverseMap.Get(value); found && holder != e.key {
		return old, errors.Wrapf(containers.ErrValueInUse, "value %v is held by key %v", value, holder)
	}
	if old == value {
		return old, nil
	}
	e.m.inverseMap.Remove(old)
	e.m.forwardMap.Put(e.key, value)
	e.m.inverseMap.Put(value, e.key)
	e.m.touchValues()
	return old, nil
}
