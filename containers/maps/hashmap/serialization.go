// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"encoding/json"

	"sigs.k8s.io/yaml"

	"github.com/odysseythink/mcontainers/containers"
)

// Assert Serialization implementation
var _ containers.JSONSerializer = (*Map[string, int])(nil)
var _ containers.JSONDeserializer = (*Map[string, int])(nil)
var _ containers.YAMLSerializer = (*Map[string, int])(nil)
var _ containers.YAMLDeserializer = (*Map[string, int])(nil)

// ToJSON outputs the JSON representation of the map.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	return json.Marshal(m.m)
}

// FromJSON replaces the map's elements with the input JSON representation.
func (m *Map[K, V]) FromJSON(data []byte) error {
	elements := make(map[K]V)
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	m.m = elements
	return nil
}

// ToYAML outputs the YAML representation of the map.
func (m *Map[K, V]) ToYAML() ([]byte, error) {
	return yaml.Marshal(m.m)
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
