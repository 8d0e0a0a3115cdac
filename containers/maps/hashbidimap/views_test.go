package hashbidimap

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odysseythink/mcontainers/containers"
)

func newABC() *Map[string, int] {
	return NewFrom(map[string]int{"a": 1, "b": 2, "c": 3})
}

func TestKeySetRemovePropagates(t *testing.T) {
	m := newABC()
	keys := m.KeySet()

	assert.True(t, keys.Contains("b"))
	assert.True(t, keys.Remove("b"))
	assert.False(t, keys.Remove("b"))
	_, found := m.GetKey(2)
	assert.False(t, found)
	assert.Equal(t, 2, keys.Size())
	checkInverse(t, m)
}

func TestKeySetRemoveAll(t *testing.T) {
	m := newABC()
	keys := m.KeySet()

	assert.False(t, keys.RemoveAll())
	assert.False(t, keys.RemoveAll("x", "y"))
	assert.True(t, keys.RemoveAll("a", "x", "c"))
	assert.Equal(t, []string{"b"}, keys.Values())
	assert.False(t, m.ContainsValue(1))
	assert.False(t, m.ContainsValue(3))

	empty := New[string, int]().KeySet()
	assert.False(t, empty.RemoveAll("a"))
	checkInverse(t, m)
}

func TestKeySetRetainAll(t *testing.T) {
	m := newABC()
	keys := m.KeySet()

	assert.False(t, keys.RetainAll("a", "b", "c", "d"))
	assert.True(t, keys.RetainAll("a", "c"))
	got := keys.Values()
	sort.Strings(got)
	if diff := cmp.Diff([]string{"a", "c"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, m.ContainsValue(2))
	checkInverse(t, m)

	// no keys to retain clears the map
	assert.True(t, keys.RetainAll())
	assert.True(t, m.Empty())
	assert.False(t, keys.RetainAll())
	checkInverse(t, m)
}

func TestRetainAllLargeMap(t *testing.T) {
	m := New[int, int]()
	var even []int
	var evenEntries []Pair[int, int]
	for i := 0; i < 200; i++ {
		m.Put(i, -i)
		if i%2 == 0 {
			even = append(even, i)
			evenEntries = append(evenEntries, Pair[int, int]{Key: i, Value: -i})
		}
	}

	assert.True(t, m.KeySet().RetainAll(append(even, 1000)...))
	assert.Equal(t, 100, m.Size())
	assert.False(t, m.ContainsValue(-1))
	checkInverse(t, m)

	// entries must match on both key and value
	evenEntries[0].Value = 7
	assert.True(t, m.EntrySet().RetainAll(evenEntries...))
	assert.Equal(t, 99, m.Size())
	assert.False(t, m.ContainsKey(0))
	assert.False(t, m.EntrySet().RetainAll(evenEntries...))
	checkInverse(t, m)
}

func TestValueSet(t *testing.T) {
	m := newABC()
	values := m.ValueSet()

	assert.Equal(t, 3, values.Size())
	assert.True(t, values.Contains(2))
	assert.True(t, values.Remove(2))
	assert.False(t, m.ContainsKey("b"))

	assert.True(t, values.RetainAll(3))
	assert.Equal(t, []string{"c"}, m.Keys())

	it := values.Iterator()
	require.True(t, it.Next())
	assert.Equal(t, 3, it.Key())
	assert.Equal(t, "c", it.Value())
	require.NoError(t, it.Remove())
	assert.True(t, m.Empty())
	checkInverse(t, m)
}

func TestKeySetIteratorRemove(t *testing.T) {
	m := newABC()
	it := m.KeySet().Iterator()

	assert.ErrorIs(t, it.Remove(), containers.ErrIllegalState)

	seen := 0
	for it.Next() {
		seen++
		value := it.Value()
		if it.Key() == "b" {
			require.NoError(t, it.Remove())
			assert.ErrorIs(t, it.Remove(), containers.ErrIllegalState)
			_, found := m.GetKey(value)
			assert.False(t, found)
		}
	}
	assert.NoError(t, it.Err())
	assert.Equal(t, 3, seen)
	assert.Equal(t, 2, m.Size())
	assert.ErrorIs(t, it.Remove(), containers.ErrIllegalState)
	checkInverse(t, m)
}

func TestIteratorRemoveEverything(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 100; i++ {
		m.Put(i, i*10)
	}
	it := m.Iterator()
	for it.Next() {
		require.NoError(t, it.Remove())
	}
	require.NoError(t, it.Err())
	assert.True(t, m.Empty())
	assert.Empty(t, m.Inverse().Keys())
}

func TestIteratorFailFast(t *testing.T) {
	m := newABC()
	it := m.KeySet().Iterator()
	require.True(t, it.Next())

	m.Put("d", 4)
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), containers.ErrConcurrentModification)
	assert.False(t, it.Next())

	// a fresh pass sees the new state
	it.Begin()
	assert.NoError(t, it.Err())
	n := 0
	for it.Next() {
		n++
	}
	assert.Equal(t, 4, n)
}

func TestIteratorFailFastRemove(t *testing.T) {
	m := newABC()
	it := m.Iterator()
	require.True(t, it.Next())
	m.RemoveValue(3)
	assert.ErrorIs(t, it.Remove(), containers.ErrConcurrentModification)
	assert.ErrorIs(t, it.Err(), containers.ErrConcurrentModification)
	checkInverse(t, m)
}

func TestIteratorValueChangeIsNotStructural(t *testing.T) {
	m := newABC()
	it := m.Iterator()
	require.True(t, it.Next())
	m.Put(it.Key(), 100)
	assert.True(t, it.Next())
	assert.NoError(t, it.Err())

	// the inverse's key set did change
	inv := m.ValueSet().Iterator()
	require.True(t, inv.Next())
	m.Put("a", 200)
	assert.False(t, inv.Next())
	assert.ErrorIs(t, inv.Err(), containers.ErrConcurrentModification)
}

func TestIteratorFirstAndNextTo(t *testing.T) {
	m := newABC()
	it := m.Iterator()

	require.True(t, it.First())
	assert.True(t, m.ContainsKey(it.Key()))
	require.NoError(t, it.Remove())
	require.True(t, it.First())
	assert.NoError(t, it.Err())
	assert.Equal(t, 2, m.Size())

	assert.False(t, New[string, int]().Iterator().First())

	m = newABC()
	it = m.Iterator()
	require.True(t, it.NextTo(func(key string, value int) bool { return value == 3 }))
	assert.Equal(t, "c", it.Key())
	it.Begin()
	assert.False(t, it.NextTo(func(key string, value int) bool { return value == 4 }))
}

func TestEntrySetValue(t *testing.T) {
	m := newABC()
	it := m.EntrySet().Iterator()
	for it.Next() {
		entry := it.Entry()
		if entry.Key() != "a" {
			continue
		}
		old, err := entry.SetValue(10)
		require.NoError(t, err)
		assert.Equal(t, 1, old)
		assert.Equal(t, 10, entry.Value())
	}
	require.NoError(t, it.Err())

	v, _ := m.Get("a")
	assert.Equal(t, 10, v)
	k, found := m.GetKey(10)
	assert.True(t, found)
	assert.Equal(t, "a", k)
	_, found = m.GetKey(1)
	assert.False(t, found)
	checkInverse(t, m)
}

func TestEntrySetValueInUse(t *testing.T) {
	m := newABC()
	it := m.EntrySet().Iterator()
	require.True(t, it.NextTo(func(key string, value int) bool { return key == "a" }))
	entry := it.Entry()

	old, err := entry.SetValue(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, containers.ErrValueInUse))
	assert.Equal(t, 1, old)
	v, _ := m.Get("b")
	assert.Equal(t, 2, v)

	// setting the same value is a no-op
	old, err = entry.SetValue(1)
	require.NoError(t, err)
	assert.Equal(t, 1, old)

	require.NoError(t, it.Remove())
	_, err = entry.SetValue(42)
	assert.True(t, errors.Is(err, containers.ErrIllegalState))
	assert.False(t, m.ContainsValue(42))
	checkInverse(t, m)
}

func TestEntrySet(t *testing.T) {
	m := newABC()
	entries := m.EntrySet()

	assert.Equal(t, 3, entries.Size())
	assert.True(t, entries.Contains("a", 1))
	assert.False(t, entries.Contains("a", 2))
	assert.False(t, entries.Remove("a", 2))
	assert.True(t, entries.Remove("a", 1))
	assert.False(t, m.ContainsValue(1))

	assert.False(t, entries.RemoveAll())
	assert.True(t, entries.RemoveAll(Pair[string, int]{"b", 2}, Pair[string, int]{"c", 4}))
	assert.Equal(t, []Pair[string, int]{{"c", 3}}, entries.Values())

	m.Put("d", 4)
	assert.True(t, entries.RetainAll(Pair[string, int]{"d", 4}, Pair[string, int]{"c", 0}))
	assert.Equal(t, []Pair[string, int]{{"d", 4}}, entries.Values())
	assert.Equal(t, "EntrySet\nd=4", entries.String())

	assert.True(t, entries.RetainAll())
	assert.True(t, entries.Empty())
	assert.False(t, entries.RemoveAll(Pair[string, int]{"d", 4}))
	checkInverse(t, m)
}

func TestViewsShareState(t *testing.T) {
	m := newABC()
	keys := m.KeySet()
	values := m.ValueSet()
	entries := m.EntrySet()

	keys.Remove("a")
	assert.False(t, values.Contains(1))
	assert.False(t, entries.Contains("a", 1))

	values.Remove(2)
	assert.False(t, keys.Contains("b"))

	m.Inverse().Put(5, "e")
	assert.True(t, keys.Contains("e"))
	assert.True(t, values.Contains(5))
}

func TestKeySetString(t *testing.T) {
	m := New[int, string]()
	m.Put(5, "e")
	assert.Equal(t, "KeySet\n5", m.KeySet().String())
	assert.Equal(t, "KeySet\ne", m.ValueSet().String())
}
