package boundedmap

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odysseythink/mcontainers/containers"
	"github.com/odysseythink/mcontainers/containers/maps/hashbidimap"
	"github.com/odysseythink/mcontainers/containers/maps/hashmap"
)

func TestPutRejectsWhenFull(t *testing.T) {
	m, err := New[string, int](hashmap.New[string, int](), 2, WithLogger(testr.New(t)))
	require.NoError(t, err)

	_, _, err = m.Put("a", 1)
	require.NoError(t, err)
	_, _, err = m.Put("b", 2)
	require.NoError(t, err)
	assert.True(t, m.Full())

	_, _, err = m.Put("c", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, containers.ErrCapacityExceeded))
	assert.False(t, m.ContainsKey("c"))
	assert.Equal(t, 2, m.Size())

	old, replaced, err := m.Put("a", 10)
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, 1, old)

	m.Remove("b")
	_, _, err = m.Put("c", 3)
	assert.NoError(t, err)
}

func TestBoundedBidiMap(t *testing.T) {
	bidi := hashbidimap.New[string, int]()
	m, err := New[string, int](bidi, 2)
	require.NoError(t, err)

	_, _, err = m.Put("a", 1)
	require.NoError(t, err)
	_, _, err = m.Put("b", 2)
	require.NoError(t, err)

	_, _, err = m.Put("c", 1)
	assert.ErrorIs(t, err, containers.ErrCapacityExceeded)
	k, _ := bidi.GetKey(1)
	assert.Equal(t, "a", k)
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New[string, int](hashmap.New[string, int](), 0)
	assert.ErrorIs(t, err, containers.ErrInvalidCapacity)
}
