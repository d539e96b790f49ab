// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-settings/internal/source"
)

// validate checks that the final merged [StructuredConfig] can drive a
// settings build.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Mapping.FieldsPath == "" {
		return ErrMissingFields
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case "pgx", "postgres", "sqlite3", "sqlite":
		default:
			return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Migrate {
		return fmt.Errorf("%w: migrate requires a DSN", ErrInvalidStorageConfigs)
	}

	// migrations only create the default table
	if cfg.Storage.DB.Migrate && cfg.Storage.DB.Table != "" && cfg.Storage.DB.Table != source.DefaultTable {
		return fmt.Errorf("%w: migrate creates table %q, not %q",
			ErrInvalidStorageConfigs, source.DefaultTable, cfg.Storage.DB.Table)
	}

	if cfg.Remote.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidRemoteConfigs)
	}

	return nil
}
