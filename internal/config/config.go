// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable read by the
// command itself, keeping them apart from the variables being resolved.
const EnvPrefix = "GOSETTINGS_"

// StructuredConfig is the top-level configuration container for the
// settings command. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Mapping controls how fields are matched against sources.
	Mapping Mapping `envPrefix:"MAPPING_"`

	// Sources lists the local sources to read.
	Sources Sources `envPrefix:"SOURCES_"`

	// Storage holds the settings table connection.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the remote settings document endpoint.
	Remote Remote `envPrefix:"REMOTE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: GOSETTINGS_CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// Mapping holds the field matching settings.
type Mapping struct {
	// FieldsPath is the YAML or JSON file declaring the fields to resolve.
	// Env: GOSETTINGS_MAPPING_FIELDS
	FieldsPath string `env:"FIELDS"`

	// EnvPrefix is prepended to derived lookup names of top-level fields.
	// Env: GOSETTINGS_MAPPING_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// CaseSensitive switches to case-sensitive key matching.
	// Env: GOSETTINGS_MAPPING_CASE_SENSITIVE
	CaseSensitive bool `env:"CASE_SENSITIVE"`

	// NestingDelimiter joins nested field names in flattened keys (e.g. "__").
	// Env: GOSETTINGS_MAPPING_NESTING_DELIMITER
	NestingDelimiter string `env:"NESTING_DELIMITER"`
}

// Sources lists the file-based sources, in precedence order after the
// process environment.
type Sources struct {
	// EnvFiles lists dotenv files overlaid under the process environment.
	// Env: GOSETTINGS_SOURCES_ENV_FILES (comma separated)
	EnvFiles []string `env:"ENV_FILES" envSeparator:","`

	// EnvFileEncoding names the dotenv file encoding (default utf-8).
	// Env: GOSETTINGS_SOURCES_ENV_FILE_ENCODING
	EnvFileEncoding string `env:"ENV_FILE_ENCODING"`

	// SecretsDirs lists directories of secret files.
	// Env: GOSETTINGS_SOURCES_SECRETS_DIRS (comma separated)
	SecretsDirs []string `env:"SECRETS_DIRS" envSeparator:","`

	// Files lists JSON, YAML or TOML settings files.
	// Env: GOSETTINGS_SOURCES_FILES (comma separated)
	Files []string `env:"FILES" envSeparator:","`
}

// Storage groups the database settings source configuration.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the settings table.
type DB struct {
	// Driver is "pgx" or "sqlite3".
	// Env: GOSETTINGS_STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name; an empty DSN disables the SQL source.
	// Env: GOSETTINGS_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Table is the settings table name (default "settings").
	// Env: GOSETTINGS_STORAGE_DB_TABLE
	Table string `env:"TABLE"`

	// KeyPrefix limits the rows read to names starting with it.
	// Env: GOSETTINGS_STORAGE_DB_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`

	// Migrate creates the settings table before reading it.
	// Env: GOSETTINGS_STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Remote holds the settings of the remote JSON source.
type Remote struct {
	// URL of the JSON document; empty disables the remote source.
	// Env: GOSETTINGS_REMOTE_URL
	URL string `env:"URL"`

	// Token is sent as a bearer token when set.
	// Env: GOSETTINGS_REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds the request (e.g. "5s").
	// Env: GOSETTINGS_REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the command
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
