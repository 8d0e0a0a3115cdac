// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashbidimap

import (
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/odysseythink/mcontainers/containers"
	"github.com/odysseythink/mcontainers/containers/maps/hashmap"
)

// Assert Serialization implementation
var _ containers.JSONSerializer = (*Map[string, int])(nil)
var _ containers.JSONDeserializer = (*Map[string, int])(nil)
var _ containers.YAMLSerializer = (*Map[string, int])(nil)
var _ containers.YAMLDeserializer = (*Map[string, int])(nil)

// ToJSON outputs the JSON representation of the map.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	if m.forwardMap == nil {
		return []byte("{}"), nil
	}
	return m.forwardMap.ToJSON()
}

// FromJSON replaces the map's elements with the input JSON representation.
// The input must map distinct keys to distinct values, otherwise ErrNotBijective
// is returned and the map is left untouched.
func (m *Map[K, V]) FromJSON(data []byte) error {
	forward := hashmap.New[K, V]()
	if err := forward.FromJSON(data); err != nil {
		return err
	}
	inverse := hashmap.New[V, K]()
	var dup error
	forward.Each(func(key K, value V) {
		if other, found := inverse.Put(value, key); found && dup == nil {
			dup = errors.Wrapf(containers.ErrNotBijective, "keys %v and %v share value %v", other, key, value)
		}
	})
	if dup != nil {
		return dup
	}

	if m.forwardMap == nil {
		m.init()
	}
	m.Clear()
	forward.Each(func(key K, value V) {
		m.Put(key, value)
	})
	return nil
}

// ToYAML outputs the YAML representation of the map.
func (m *Map[K, V]) ToYAML() ([]byte, error) {
	data, err := m.ToJSON()
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(data)
}

// FromYAML replaces the map's elements with the input YAML representation.
func (m *Map[K, V]) FromYAML(data []byte) error {
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return err
	}
	return m.FromJSON(js)
}

// UnmarshalJSON @implements json.Unmarshaler
func (m *Map[K, V]) UnmarshalJSON(bytes []byte) error {
	return m.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}
