package lrumap

import "github.com/go-logr/logr"

// EvictCallback is used to get a callback when an entry is dropped to make room,
// either by Put on a full map or by Resize.
type EvictCallback[K comparable, V any] func(key K, value V)

// Option represents the optional function.
type Option[K comparable, V any] func(opts *Options[K, V])

func loadOptions[K comparable, V any](options ...Option[K, V]) *Options[K, V] {
	opts := &Options[K, V]{Logger: logr.Discard()}
	for _, option := range options {
		option(opts)
	}
	return opts
}

// Options contains all options which will be applied when instantiating a Map.
type Options[K comparable, V any] struct {
	// OnEvict is called synchronously for every evicted entry once the Put or
	// Resize that evicted it has finished updating the map, so it may use the map.
	// Behind a syncmap wrapper it runs under the wrapper's lock: use the
	// wrapped *Map, not the wrapper, from inside it.
	OnEvict EvictCallback[K, V]

	// Logger receives eviction events at V(1).
	Logger logr.Logger
}

// WithOptions accepts the whole options config.
func WithOptions[K comparable, V any](options Options[K, V]) Option[K, V] {
	return func(opts *Options[K, V]) {
		*opts = options
	}
}

// WithEvictCallback sets the function called for evicted entries.
func WithEvictCallback[K comparable, V any](onEvict EvictCallback[K, V]) Option[K, V] {
	return func(opts *Options[K, V]) {
		opts.OnEvict = onEvict
	}
}

// WithLogger sets the logger.
func WithLogger[K comparable, V any](logger logr.Logger) Option[K, V] {
	return func(opts *Options[K, V]) {
		opts.Logger = logger
	}
}
