// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-settings/models"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// FieldsOf derives descriptors from the exported fields of the struct v
// (or pointer to struct).
//
// The field name is taken from the json tag, falling back to the Go name;
// `json:"-"` skips a field. An `env:"A,B"` tag sets explicit lookup names.
// Nested structs become models and embedded structs without a json name are
// flattened. Maps, slices and arrays are complex, interfaces are unions of a
// scalar and a complex branch, and types implementing
// encoding.TextUnmarshaler are scalars.
func (c Config) FieldsOf(v any) ([]models.Field, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %T", ErrNotStruct, v)
	}

	return c.structFields(t, c.EnvPrefix, map[reflect.Type]bool{t: true})
}

func (c Config) structFields(t reflect.Type, envPrefix string, visiting map[reflect.Type]bool) ([]models.Field, error) {
	var fields []models.Field
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, skip := jsonName(sf)
		if skip {
			continue
		}

		ft := indirect(sf.Type)
		if sf.Anonymous && name == "" && ft.Kind() == reflect.Struct {
			embedded, err := c.descend(ft, envPrefix, visiting)
			if err != nil {
				return nil, err
			}
			fields = append(fields, embedded...)
			continue
		}
		if name == "" {
			name = sf.Name
		}

		field := models.Field{
			Name:  name,
			Alias: name,
			Type:  classifyType(ft),
		}
		if env, ok := sf.Tag.Lookup("env"); ok {
			field.ExplicitEnvNames = c.foldNames(strings.Split(env, ","))
		} else {
			field.EnvNames = c.foldNames([]string{envPrefix + name})
		}

		if field.Type.Model {
			sub, err := c.descend(ft, "", visiting)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			field.Fields = sub
		}

		fields = append(fields, field)
	}

	return fields, nil
}

func (c Config) descend(t reflect.Type, envPrefix string, visiting map[reflect.Type]bool) ([]models.Field, error) {
	if visiting[t] {
		return nil, fmt.Errorf("%w: %s", ErrRecursiveModel, t)
	}
	visiting[t] = true
	defer delete(visiting, t)

	return c.structFields(t, envPrefix, visiting)
}

func jsonName(sf reflect.StructField) (name string, skip bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")

	return name, false
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

func classifyType(t reflect.Type) models.Type {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return models.Scalar
	}

	switch t.Kind() {
	case reflect.Struct:
		return models.Model
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return models.Scalar
		}
		return models.Complex
	case reflect.Map, reflect.Array:
		return models.Complex
	case reflect.Interface:
		return models.Union(models.Scalar, models.Complex)
	default:
		return models.Scalar
	}
}
