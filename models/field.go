// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field describes one configuration field as seen by the source mapper.
// It is a plain data holder decoupled from whatever model framework produced
// it; adapters in internal/settings build it from declarative specs or Go
// structs.
type Field struct {
	// Name is the internal identifier of the field.
	Name string `json:"name" yaml:"name"`

	// Alias is the key under which the resolved value is stored in the
	// result mapping.
	Alias string `json:"alias" yaml:"alias"`

	// EnvNames lists the candidate lookup names derived from the field name.
	// They are prefixed when the field is resolved inside a nested model.
	EnvNames []string `json:"env_names,omitempty" yaml:"env_names,omitempty"`

	// ExplicitEnvNames is the explicitly configured list of lookup names.
	// When non-nil it replaces EnvNames and is used verbatim: explicit names
	// are absolute and never receive a nesting prefix. An empty non-nil list
	// disables lookups for the field.
	//
	// JSON keeps nil (null) and empty ([]) apart. YAML does not: nil is
	// omitted and an empty list reads back as nil, so descriptors with an
	// empty explicit list should not go through YAML.
	ExplicitEnvNames []string `json:"explicit_env_names" yaml:"explicit_env_names,omitempty"`

	// Type is the structural classification of the declared type.
	Type Type `json:"type" yaml:"type"`

	// Fields holds the sub-field descriptors when Type.Model is set.
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Type classifies a declared field type.
type Type struct {
	// Complex reports that the type is structurally complex (a mapping,
	// sequence or nested model) and its raw values need decoding.
	Complex bool `json:"complex" yaml:"complex"`

	// Model reports that the type is itself a nested configuration model
	// whose sub-fields are listed in Field.Fields.
	Model bool `json:"model" yaml:"model"`

	// Union holds the branch classifications when the type is a union.
	Union []Type `json:"union,omitempty" yaml:"union,omitempty"`
}

// HasExplicitEnv reports whether lookup names were configured explicitly.
func (f Field) HasExplicitEnv() bool {
	return f.ExplicitEnvNames != nil
}

// LookupNames returns the candidate names for the field under prefix.
// Explicit names are returned as is; derived names get prefix prepended.
func (f Field) LookupNames(prefix string) []string {
	if f.HasExplicitEnv() {
		return f.ExplicitEnvNames
	}

	names := make([]string, 0, len(f.EnvNames))
	for _, name := range f.EnvNames {
		names = append(names, prefix+name)
	}

	return names
}

// IsUnion reports whether the type has union branches.
func (t Type) IsUnion() bool {
	return len(t.Union) > 0
}

// Scalar is the classification of a plain, non-complex type.
var Scalar = Type{}

// Complex is the classification of a structured, non-model type such as a
// list or a mapping.
var Complex = Type{Complex: true}

// Model is the classification of a nested configuration model.
var Model = Type{Complex: true, Model: true}

// Union returns the classification of a union of the given branches.
func Union(branches ...Type) Type {
	return Type{Union: branches}
}
