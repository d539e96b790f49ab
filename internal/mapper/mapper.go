// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"github.com/MKhiriev/go-settings/internal/logger"
	"github.com/MKhiriev/go-settings/models"
)

// Source is a read-only, ordered key-value mapping. Keys returns the keys in
// the source's native iteration order; the order decides which key wins when
// keys collide after case folding.
type Source interface {
	Keys() []string
	Get(key string) (any, bool)
}

// Mapper resolves field values out of one [Source].
//
// The key index is built once in [New]; the source must not change
// afterwards. A Mapper is safe for concurrent use by multiple goroutines.
type Mapper struct {
	source        Source
	caseSensitive bool
	delimiter     string
	decoder       Decoder
	logger        *logger.Logger

	index keyIndex
}

// New creates a Mapper over src and builds its key index.
func New(src Source, opts ...Option) *Mapper {
	m := &Mapper{
		source:  src,
		decoder: DecodeJSON,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.index = newKeyIndex(src, m.caseSensitive, m.logger)

	return m
}

// Map resolves every field in fields and returns a fresh mapping from field
// alias to resolved value. Fields without a match are absent from the
// result. Any fatal decoding error aborts the call and no result is
// returned.
func (m *Mapper) Map(fields []models.Field) (map[string]any, error) {
	result := make(map[string]any)
	for _, field := range fields {
		if err := m.resolveField(field, result, ""); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Lookup returns the value stored under the source key matching name after
// normalization.
func (m *Mapper) Lookup(name string) (any, bool) {
	key, ok := m.index.lookup(name)
	if !ok {
		return nil, false
	}

	return m.source.Get(key)
}

func (m *Mapper) resolveField(field models.Field, result map[string]any, prefix string) error {
	names := field.LookupNames(prefix)

	value, found, err := m.fieldValue(names, field)
	if err != nil {
		return err
	}

	if found {
		if fragment, ok := value.(map[string]any); ok {
			existing, ok := result[field.Alias].(map[string]any)
			if !ok {
				existing = make(map[string]any, len(fragment))
				result[field.Alias] = existing
			}
			mergeInto(existing, fragment)
		} else {
			result[field.Alias] = value
		}
	}

	if !field.Type.Model || m.delimiter == "" || len(names) == 0 {
		return nil
	}

	return m.resolveNested(field, names, result)
}

// resolveNested resolves the sub-fields of a model field under every
// "<name><delimiter>" prefix. The sub-mapping is attached to result only
// when something resolved; a scalar already stored for the field is kept.
func (m *Mapper) resolveNested(field models.Field, names []string, result map[string]any) error {
	nested, ok := result[field.Alias].(map[string]any)
	if !ok {
		if _, exists := result[field.Alias]; exists {
			return nil
		}
		nested = make(map[string]any)
	}

	for _, name := range names {
		prefix := name + m.delimiter
		for _, sub := range field.Fields {
			if err := m.resolveField(sub, nested, prefix); err != nil {
				return err
			}
		}
	}

	if len(nested) > 0 {
		result[field.Alias] = nested
	}

	return nil
}

// fieldValue searches names in order. The first scalar found is returned
// straight away; structured fragments from all names are merged, later
// fragments overwriting colliding keys of earlier ones.
func (m *Mapper) fieldValue(names []string, field models.Field) (any, bool, error) {
	var acc map[string]any

	isComplex, allowParseFailure := classify(field.Type)

	for _, name := range names {
		value, ok := m.Lookup(name)
		if !ok || value == nil {
			continue
		}

		if _, isMap := value.(map[string]any); isComplex && !isMap {
			outcome, err := decode(m.decoder, field.Name, value, allowParseFailure)
			if err != nil {
				return nil, false, &ParseError{Key: name, Err: err}
			}
			if outcome.Kind == OutcomeFallback {
				m.logger.Debug().
					Str("field", field.Name).
					Str("key", name).
					Msg("value is not structured, keeping raw value")
			}
			value = outcome.Value
		}

		fragment, ok := value.(map[string]any)
		if !ok {
			return value, true, nil
		}

		if acc == nil {
			acc = make(map[string]any, len(fragment))
		}
		mergeInto(acc, fragment)
	}

	if len(acc) == 0 {
		return nil, false, nil
	}

	return acc, true, nil
}

// mergeInto copies the entries of src into dst, overwriting existing keys.
// Nested maps and slices are copied so the result never shares memory with
// the source.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		mergeInto(out, v)
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
