package containers

// Container is base interface that all data structures implement.
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Values() []T
	String() string
}

// JSONSerializer provides JSON serialization
type JSONSerializer interface {
	// ToJSON outputs the JSON representation of containers's elements.
	ToJSON() ([]byte, error)
	// MarshalJSON @implements json.Marshaler
	MarshalJSON() ([]byte, error)
}

// JSONDeserializer provides JSON deserialization
type JSONDeserializer interface {
	// FromJSON populates containers's elements from the input JSON representation.
	FromJSON([]byte) error
	// UnmarshalJSON @implements json.Unmarshaler
	UnmarshalJSON([]byte) error
}

// YAMLSerializer provides YAML serialization
type YAMLSerializer interface {
	ToYAML() ([]byte, error)
}

// YAMLDeserializer provides YAML deserialization
type YAMLDeserializer interface {
	FromYAML([]byte) error
}

// EnumerableWithKey provides functions for containers whose elements are key/value pairs.
type EnumerableWithKey[K any, V any] interface {
	// Each calls the given function once for each element, passing that element's key and value.
	Each(func(key K, value V))

	// Any passes each element of the container to the given function and
	// returns true if the function ever returns true for any element.
	Any(func(key K, value V) bool) bool

	// All passes each element of the container to the given function and
	// returns true if the function returns true for all elements.
	All(func(key K, value V) bool) bool

	// Find passes each element of the container to the given function and returns
	// the first (key,value) for which the function is true or zero values and false otherwise
	// if no element matches the criteria.
	Find(func(key K, value V) bool) (K, V, bool)
}

// IteratorWithKey is a stateful iterator for containers whose elements are key value pairs.
type IteratorWithKey[K any, V any] interface {
	// Next moves the iterator to the next element and returns true if there was a next element in the container.
	// If Next() returns true, then next element's key and value can be retrieved by Key() and Value().
	// If Next() was called for the first time, then it will point the iterator to the first element if it exists.
	// Modifies the state of the iterator.
	Next() bool

	// Value returns the current element's value.
	// Does not modify the state of the iterator.
	Value() V

	// Key returns the current element's key.
	// Does not modify the state of the iterator.
	Key() K

	// Begin resets the iterator to its initial state (one-before-first)
	// Call Next() to fetch the first element if any.
	Begin()

	// First moves the iterator to the first element and returns true if there was a first element in the container.
	// If First() returns true, then first element's key and value can be retrieved by Key() and Value().
	// Modifies the state of the iterator.
	First() bool

	// NextTo moves the iterator to the next element from current position that satisfies the condition given by the
	// passed function, and returns true if there was a next element in the container.
	// If NextTo() returns true, then next element's key and value can be retrieved by Key() and Value().
	// Modifies the state of the iterator.
	NextTo(func(key K, value V) bool) bool
}

// RemovableIteratorWithKey is an IteratorWithKey over a live container.
//
// Remove deletes the element last returned by Next from the underlying container.
// It is only valid once per successful call to Next; any other call returns ErrIllegalState.
//
// The iterator is fail-fast: if the container is structurally modified by anything other
// than the iterator itself, Next returns false and Err returns ErrConcurrentModification.
type RemovableIteratorWithKey[K any, V any] interface {
	Remove() error
	Err() error

	IteratorWithKey[K, V]
}
