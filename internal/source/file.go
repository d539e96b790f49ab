// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File provides the top-level entries of a JSON, YAML or TOML document.
// Nested objects become map[string]any values.
//
// YAML and TOML keys keep document order; JSON keys are sorted.
type File struct {
	Path string
}

// NewFile returns a File provider for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Name() string {
	return "file:" + f.Path
}

func (f *File) Load(_ context.Context) (*Map, error) {
	path, err := expandHome(f.Path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	var m *Map
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		m, err = parseJSONDocument(data)
	case ".yaml", ".yml":
		m, err = parseYAMLDocument(data)
	case ".toml":
		m, err = parseTOMLDocument(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding settings file %s: %w", path, err)
	}

	return m, nil
}

func parseJSONDocument(data []byte) (*Map, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}

	return MapOf(obj), nil
}

func parseYAMLDocument(data []byte) (*Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := NewMap()
	if len(doc.Content) == 0 {
		return out, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		var value any
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, err
		}
		out.Set(root.Content[i].Value, normalizeYAML(value))
	}

	return out, nil
}

// normalizeYAML converts mappings with non-string keys to map[string]any.
func normalizeYAML(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = normalizeYAML(item)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range v {
			v[i] = normalizeYAML(item)
		}
		return v
	default:
		return v
	}
}

func parseTOMLDocument(data []byte) (*Map, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}

	out := NewMap()
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		if value, ok := doc[key[0]]; ok {
			out.Set(key[0], value)
		}
	}
	// keys only reachable through dotted paths
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		if _, ok := out.Get(key); !ok {
			out.Set(key, doc[key])
		}
	}

	return out, nil
}
