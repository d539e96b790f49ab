// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"regexp"

	"github.com/rs/zerolog"
)

const redacted = "***"

var dsnPasswordPattern = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)

// MarshalZerologObject logs the config with credentials masked: the remote
// token is replaced and the DSN loses its password.
func (cfg *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Dict("mapping", zerolog.Dict().
		Str("fields", cfg.Mapping.FieldsPath).
		Str("env_prefix", cfg.Mapping.EnvPrefix).
		Bool("case_sensitive", cfg.Mapping.CaseSensitive).
		Str("nesting_delimiter", cfg.Mapping.NestingDelimiter))

	e.Dict("sources", zerolog.Dict().
		Strs("env_files", cfg.Sources.EnvFiles).
		Str("env_file_encoding", cfg.Sources.EnvFileEncoding).
		Strs("secrets_dirs", cfg.Sources.SecretsDirs).
		Strs("files", cfg.Sources.Files))

	e.Dict("db", zerolog.Dict().
		Str("driver", cfg.Storage.DB.Driver).
		Str("dsn", RedactDSN(cfg.Storage.DB.DSN)).
		Str("table", cfg.Storage.DB.Table).
		Str("key_prefix", cfg.Storage.DB.KeyPrefix).
		Bool("migrate", cfg.Storage.DB.Migrate))

	token := ""
	if cfg.Remote.Token != "" {
		token = redacted
	}
	e.Dict("remote", zerolog.Dict().
		Str("url", cfg.Remote.URL).
		Str("token", token).
		Dur("request_timeout", cfg.Remote.RequestTimeout))

	e.Str("config", cfg.JSONFilePath)
}

// RedactDSN strips the user info from URL DSNs and masks password=
// entries of key/value DSNs. Other DSNs are returned unchanged.
func RedactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		u.User = nil
		return u.String()
	}

	return dsnPasswordPattern.ReplaceAllString(dsn, "${1}"+redacted)
}
