// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapper resolves configuration field values out of a single
// loosely-typed source.
//
// A [Mapper] wraps one [Source] together with a normalized key index built
// at construction time. [Mapper.Map] walks the given field descriptors, looks
// up each field's candidate names in order, decodes structured values when the
// field type is complex, and reassembles nested model fields from flattened
// keys joined with the nesting delimiter.
//
// The result maps field aliases to raw values: scalars as found in the
// source, structured values as map[string]any. Typed construction and
// validation are left to the caller.
package mapper
