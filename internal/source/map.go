// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"maps"
	"slices"
)

// Map is an insertion-ordered string-keyed mapping. Setting an existing key
// replaces its value but keeps its position.
//
// The zero value is ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// MapOf copies m into a new Map with keys in sorted order.
func MapOf(m map[string]any) *Map {
	out := &Map{
		keys:   slices.Sorted(maps.Keys(m)),
		values: make(map[string]any, len(m)),
	}
	maps.Copy(out.values, m)

	return out
}

// Set stores value under key.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// Update sets every entry of other on m, in other's order.
func (m *Map) Update(other *Map) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		m.Set(key, other.values[key])
	}
}

// ToMap returns a plain copy of the entries.
func (m *Map) ToMap() map[string]any {
	return maps.Clone(m.values)
}
