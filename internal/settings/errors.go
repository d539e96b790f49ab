// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

var (
	// ErrUnknownFieldType is returned by [Config.Prepare] for a field type
	// other than scalar, complex, model or union.
	ErrUnknownFieldType = errors.New("unknown field type")
	// ErrEmptyFieldName is returned by [Config.Prepare] for a field without
	// a name.
	ErrEmptyFieldName = errors.New("field name is empty")
	// ErrNotStruct is returned by [Config.FieldsOf] for non-struct values.
	ErrNotStruct = errors.New("settings model must be a struct")
	// ErrRecursiveModel is returned by [Config.FieldsOf] when a struct type
	// contains itself.
	ErrRecursiveModel = errors.New("settings model is recursive")
	// ErrNilProvider is returned by [Builder.Build] when a nil provider was
	// added.
	ErrNilProvider = errors.New("source provider is nil")
)
