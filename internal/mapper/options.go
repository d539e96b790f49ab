// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import "github.com/MKhiriev/go-settings/internal/logger"

// Option configures a [Mapper].
type Option func(*Mapper)

// WithCaseSensitive switches key matching to case-sensitive mode.
// Keys are matched case-insensitively by default.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(m *Mapper) {
		m.caseSensitive = caseSensitive
	}
}

// WithNestingDelimiter enables resolving nested model fields from flattened
// keys such as DB__HOST. An empty delimiter disables it, which is the
// default.
func WithNestingDelimiter(delimiter string) Option {
	return func(m *Mapper) {
		m.delimiter = delimiter
	}
}

// WithDecoder replaces the default JSON decoder for complex values.
func WithDecoder(dec Decoder) Option {
	return func(m *Mapper) {
		if dec != nil {
			m.decoder = dec
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(m *Mapper) {
		if log != nil {
			m.logger = log
		}
	}
}
