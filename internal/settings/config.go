// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"github.com/MKhiriev/go-settings/internal/logger"
	"github.com/MKhiriev/go-settings/internal/mapper"
)

// Config controls how field descriptors are prepared and how sources are
// matched against them.
type Config struct {
	// EnvPrefix is prepended to the derived lookup names of top-level
	// fields. Explicit names are never prefixed.
	EnvPrefix string
	// CaseSensitive switches to case-sensitive key matching.
	CaseSensitive bool
	// NestingDelimiter joins parent and sub-field names in flattened keys
	// (e.g. "__" for DB__HOST). Empty disables nested lookups.
	NestingDelimiter string
	// Decoder decodes complex values. Nil means JSON.
	Decoder mapper.Decoder
}

func (c Config) mapperOptions(log *logger.Logger) []mapper.Option {
	return []mapper.Option{
		mapper.WithCaseSensitive(c.CaseSensitive),
		mapper.WithNestingDelimiter(c.NestingDelimiter),
		mapper.WithDecoder(c.Decoder),
		mapper.WithLogger(log),
	}
}
