package containers

import "github.com/pkg/errors"

var (
	// ErrIllegalState is returned when Remove is called on an iterator that is not
	// positioned on an element: before the first Next, twice after one Next, or after exhaustion.
	ErrIllegalState = errors.New("iterator is not positioned on an element")

	// ErrConcurrentModification is reported by a fail-fast iterator whose container
	// was structurally modified behind its back.
	ErrConcurrentModification = errors.New("container modified outside of the iterator")

	// ErrCapacityExceeded is returned by bounded, non-evicting containers when a new
	// element does not fit.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidCapacity is returned when a fixed-size container is created with a non-positive size.
	ErrInvalidCapacity = errors.New("must provide a positive size")

	// ErrValueInUse is returned when setting a value through a bidirectional map entry
	// would make two keys share one value.
	ErrValueInUse = errors.New("value is already mapped by another key")

	// ErrNotBijective is returned when decoding a bidirectional map whose input maps two keys to one value.
	ErrNotBijective = errors.New("map not bijective")
)
