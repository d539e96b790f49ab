// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingFields indicates that no field declaration file was given.
	ErrMissingFields = errors.New("field declaration file is required")
	// ErrInvalidStorageConfigs indicates invalid settings table options
	// (for example, a DSN with an unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote source settings
	// (for example, a negative request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
)
