// Package hashset implements a set backed by a native Go map.
//
// The bidirectional map views use it to compute which keys or entries a
// RetainAll call drops.
package hashset

import (
	"fmt"
	"strings"

	"github.com/odysseythink/mcontainers/containers/sets"
)

// Assert Set implementation
var _ sets.Set[int] = (*Set[int])(nil)

// Set holds its elements as the keys of a map.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New returns a set holding values.
func New[T comparable](values ...T) *Set[T] {
	set := &Set[T]{items: make(map[T]struct{}, len(values))}
	set.Add(values...)
	return set
}

// Add adds items to the set.
func (set *Set[T]) Add(items ...T) {
	for _, item := range items {
		set.items[item] = struct{}{}
	}
}

// Remove removes items from the set; missing items are ignored.
func (set *Set[T]) Remove(items ...T) {
	for _, item := range items {
		delete(set.items, item)
	}
}

// Contains reports whether every item is in the set. It is true for no items.
func (set *Set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if _, found := set.items[item]; !found {
			return false
		}
	}
	return true
}

// Empty returns true if set does not contain any elements.
func (set *Set[T]) Empty() bool {
	return len(set.items) == 0
}

// Size returns number of elements within the set.
func (set *Set[T]) Size() int {
	return len(set.items)
}

// Clear removes every element.
func (set *Set[T]) Clear() {
	clear(set.items)
}

// Values returns the elements in random order.
func (set *Set[T]) Values() []T {
	values := make([]T, 0, len(set.items))
	for item := range set.items {
		values = append(values, item)
	}
	return values
}

// String returns a string representation of container
func (set *Set[T]) String() string {
	items := make([]string, 0, len(set.items))
	for item := range set.items {
		items = append(items, fmt.Sprintf("%v", item))
	}
	return "HashSet\n" + strings.Join(items, ", ")
}

// Difference returns a new set with the elements of set that are not in other.
func (set *Set[T]) Difference(other *Set[T]) *Set[T] {
	result := New[T]()
	for item := range set.items {
		if _, found := other.items[item]; !found {
			result.items[item] = struct{}{}
		}
	}
	return result
}
