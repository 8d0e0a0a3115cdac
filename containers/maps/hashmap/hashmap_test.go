// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPut(t *testing.T) {
	m := New[int, string]()
	m.Put(5, "e")
	m.Put(6, "f")
	m.Put(7, "g")
	m.Put(3, "c")
	m.Put(4, "d")
	m.Put(1, "x")
	m.Put(2, "b")
	old, replaced := m.Put(1, "a") //overwrite

	if !replaced || old != "x" {
		t.Errorf("Got %v expected %v", old, "x")
	}
	if actualValue := m.Size(); actualValue != 7 {
		t.Errorf("Got %v expected %v", actualValue, 7)
	}
	keys := m.Keys()
	sort.Ints(keys)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keys)
	values := m.Values()
	sort.Strings(values)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, values)

	v, found := m.Get(8)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestMapRemove(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "a")
	m.Put(2, "b")

	v, found := m.Remove(1)
	assert.True(t, found)
	assert.Equal(t, "a", v)
	_, found = m.Remove(1)
	assert.False(t, found)
	assert.False(t, m.ContainsKey(1))
	assert.True(t, m.ContainsKey(2))

	m.Clear()
	assert.True(t, m.Empty())
	assert.Equal(t, "HashMap\nmap[]", m.String())
}

func TestMapSerialization(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":2}`, string(data))

	y, err := m.ToYAML()
	require.NoError(t, err)

	decoded := New[string, int]()
	require.NoError(t, decoded.FromYAML(y))
	assert.Equal(t, 2, decoded.Size())
	v, _ := decoded.Get("b")
	assert.Equal(t, 2, v)

	require.NoError(t, decoded.UnmarshalJSON([]byte(`{"z":26}`)))
	assert.Equal(t, []string{"z"}, decoded.Keys())
}
