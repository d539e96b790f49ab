// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import "context"

// Static serves a fixed, caller-supplied mapping.
type Static struct {
	name   string
	values *Map
}

// NewStatic returns a provider serving values with keys in sorted order.
func NewStatic(name string, values map[string]any) *Static {
	return &Static{name: name, values: MapOf(values)}
}

// NewStaticMap returns a provider serving m as is.
func NewStaticMap(name string, m *Map) *Static {
	return &Static{name: name, values: m}
}

func (s *Static) Name() string {
	return s.name
}

func (s *Static) Load(_ context.Context) (*Map, error) {
	return s.values, nil
}
