// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import "errors"

// Sentinel errors returned by providers. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrSecretsNotDir is returned when a configured secrets location exists
	// but is not a directory.
	ErrSecretsNotDir = errors.New("secrets_dir must reference a directory")

	// ErrUnknownEncoding is returned when the dotenv file encoding name is
	// not recognised.
	ErrUnknownEncoding = errors.New("unknown dotenv file encoding")

	// ErrUnsupportedFormat is returned by [File] for extensions other than
	// .json, .yaml, .yml and .toml.
	ErrUnsupportedFormat = errors.New("unsupported settings file format")

	// ErrNotMapping is returned when a document's top level is not a
	// key-value mapping.
	ErrNotMapping = errors.New("settings document is not a mapping")

	// ErrUnsupportedDriver is returned by [OpenDB] for unknown SQL drivers.
	ErrUnsupportedDriver = errors.New("unsupported sql driver")

	// ErrTableNotFound is returned by [SQL] when the settings table does not
	// exist.
	ErrTableNotFound = errors.New("settings table not found")

	// ErrRemoteStatus is returned by [Remote] for non-2xx responses.
	ErrRemoteStatus = errors.New("unexpected remote settings status")
)
