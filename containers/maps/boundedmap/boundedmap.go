// Package boundedmap decorates a map with a maximum size. Unlike lrumap it never
// evicts: a new key that does not fit is rejected with containers.ErrCapacityExceeded.
package boundedmap

import (
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/odysseythink/mcontainers/containers"
	"github.com/odysseythink/mcontainers/containers/maps"
)

// Option represents the optional function.
type Option func(m *boundedOptions)

type boundedOptions struct {
	logger logr.Logger
}

// WithLogger sets the logger rejected puts are reported to at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(opts *boundedOptions) {
		opts.logger = logger
	}
}

// Map is a size-limited view of a backing map. All mutations should go through
// the Map so the limit holds.
type Map[K comparable, V any] struct {
	m       maps.Map[K, V]
	maxSize int
	logger  logr.Logger
}

// New decorates m. A backing map that already holds more than maxSize entries
// is accepted as is; it only refuses new keys until it shrinks below the limit.
func New[K comparable, V any](m maps.Map[K, V], maxSize int, options ...Option) (*Map[K, V], error) {
	if maxSize <= 0 {
		return nil, errors.Wrapf(containers.ErrInvalidCapacity, "got %d", maxSize)
	}
	opts := &boundedOptions{logger: logr.Discard()}
	for _, option := range options {
		option(opts)
	}
	return &Map[K, V]{m: m, maxSize: maxSize, logger: opts.logger}, nil
}

// Put stores value under key. Replacing the value of an existing key always succeeds.
func (b *Map[K, V]) Put(key K, value V) (old V, replaced bool, err error) {
	if !b.m.ContainsKey(key) && b.m.Size() >= b.maxSize {
		b.logger.V(1).Info("rejected put on full map", "key", key, "maxSize", b.maxSize)
		return old, false, errors.Wrapf(containers.ErrCapacityExceeded, "map is full at %d entries", b.maxSize)
	}
	old, replaced = b.m.Put(key, value)
	return old, replaced, nil
}

// Get returns the value stored under key.
func (b *Map[K, V]) Get(key K) (V, bool) {
	return b.m.Get(key)
}

// Remove removes key and returns its value.
func (b *Map[K, V]) Remove(key K) (V, bool) {
	return b.m.Remove(key)
}

// ContainsKey reports whether key is present.
func (b *Map[K, V]) ContainsKey(key K) bool {
	return b.m.ContainsKey(key)
}

// Keys returns the keys of the backing map.
func (b *Map[K, V]) Keys() []K {
	return b.m.Keys()
}

// Values returns the values of the backing map.
func (b *Map[K, V]) Values() []V {
	return b.m.Values()
}

// Size returns the number of entries.
func (b *Map[K, V]) Size() int {
	return b.m.Size()
}

// Empty returns true if the map does not contain any elements.
func (b *Map[K, V]) Empty() bool {
	return b.m.Empty()
}

// Full returns true if a new key would be rejected.
func (b *Map[K, V]) Full() bool {
	return b.m.Size() >= b.maxSize
}

// MaxSize returns the limit.
func (b *Map[K, V]) MaxSize() int {
	return b.maxSize
}

// Clear removes all entries.
func (b *Map[K, V]) Clear() {
	b.m.Clear()
}

// String returns a string representation of container
func (b *Map[K, V]) String() string {
	return "BoundedMap\n" + b.m.String()
}
