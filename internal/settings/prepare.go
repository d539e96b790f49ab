// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-settings/models"
	"gopkg.in/yaml.v3"
)

// Field type names accepted in a [FieldSpec].
const (
	TypeScalar  = "scalar"
	TypeComplex = "complex"
	TypeModel   = "model"
	TypeUnion   = "union"
)

// Spec is the document read by [LoadSpec].
type Spec struct {
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec declares one settings field.
type FieldSpec struct {
	// Name identifies the field; the derived lookup name is EnvPrefix+Name.
	Name string `yaml:"name"`
	// Alias is the result key. Defaults to Name.
	Alias string `yaml:"alias,omitempty"`
	// Env lists explicit lookup names. A single string is accepted too.
	Env EnvNames `yaml:"env,omitempty"`
	// Type is one of scalar (default), complex, model or union.
	Type string `yaml:"type,omitempty"`
	// Fields declares the sub-fields of a model.
	Fields []FieldSpec `yaml:"fields,omitempty"`
}

// EnvNames is a list of lookup names that also unmarshals from a single
// YAML scalar.
type EnvNames []string

func (e *EnvNames) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*e = EnvNames{node.Value}
		return nil
	}

	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	*e = names

	return nil
}

// LoadSpec reads field specs from a YAML or JSON document with a top-level
// "fields" list.
func LoadSpec(path string) ([]FieldSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading field spec: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("error decoding field spec %s: %w", path, err)
	}

	return spec.Fields, nil
}

// Prepare turns field specs into descriptors. Top-level fields without
// explicit names are looked up as EnvPrefix+Name, sub-fields of models as
// Name. In case-insensitive mode lookup names are lower-cased.
func (c Config) Prepare(specs []FieldSpec) ([]models.Field, error) {
	return c.prepareFields(specs, c.EnvPrefix)
}

func (c Config) prepareFields(specs []FieldSpec, envPrefix string) ([]models.Field, error) {
	fields := make([]models.Field, 0, len(specs))
	for _, spec := range specs {
		field, err := c.prepareField(spec, envPrefix)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

func (c Config) prepareField(spec FieldSpec, envPrefix string) (models.Field, error) {
	if spec.Name == "" {
		return models.Field{}, ErrEmptyFieldName
	}

	typ, err := parseType(spec.Type)
	if err != nil {
		return models.Field{}, fmt.Errorf("field %q: %w", spec.Name, err)
	}

	field := models.Field{
		Name:  spec.Name,
		Alias: spec.Alias,
		Type:  typ,
	}
	if field.Alias == "" {
		field.Alias = spec.Name
	}

	if spec.Env != nil {
		field.ExplicitEnvNames = c.foldNames(spec.Env)
	} else {
		field.EnvNames = c.foldNames([]string{envPrefix + spec.Name})
	}

	if typ.Model {
		field.Fields, err = c.prepareFields(spec.Fields, "")
		if err != nil {
			return models.Field{}, fmt.Errorf("field %q: %w", spec.Name, err)
		}
	}

	return field, nil
}

func (c Config) foldNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !c.CaseSensitive {
			name = strings.ToLower(name)
		}
		out = append(out, name)
	}

	return out
}

func parseType(name string) (models.Type, error) {
	switch name {
	case "", TypeScalar:
		return models.Scalar, nil
	case TypeComplex:
		return models.Complex, nil
	case TypeModel:
		return models.Model, nil
	case TypeUnion:
		return models.Union(models.Scalar, models.Complex), nil
	default:
		return models.Type{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, name)
	}
}
