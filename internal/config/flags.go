// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"strings"
	"time"
)

// StringList collects the values of a repeatable flag.
// It implements the flag.Value interface; each occurrence of the flag
// appends one value, and a comma separated value appends several.
type StringList []string

// ParseFlags parses all configuration flags from args (typically
// os.Args[1:]).
//
// Flags:
//
//	-fields field declaration file (YAML or JSON)
//	-prefix env prefix of top-level fields
//	-case-sensitive case-sensitive key matching
//	-delimiter nesting delimiter (e.g. "__")
//	-env-file dotenv file, repeatable
//	-env-file-encoding dotenv file encoding (e.g. "utf-8", "latin1")
//	-secrets-dir secrets directory, repeatable
//	-file JSON/YAML/TOML settings file, repeatable
//	-db-driver database driver ("pgx" or "sqlite3")
//	-d database DSN
//	-db-table settings table name
//	-db-key-prefix settings row name prefix
//	-migrate create the settings table before reading it
//	-remote-url remote JSON settings URL
//	-remote-token remote bearer token
//	-request-timeout remote request timeout (e.g., "5s", "1m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)

	var fieldsPath, envPrefix, delimiter string
	var caseSensitive bool
	var envFiles, secretsDirs, files StringList
	var envFileEncoding string
	var dbDriver, databaseDSN, dbTable, dbKeyPrefix string
	var migrate bool
	var remoteURL, remoteToken string
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs.StringVar(&fieldsPath, "fields", "", "Field declaration file")
	fs.StringVar(&envPrefix, "prefix", "", "Env prefix of top-level fields")
	fs.BoolVar(&caseSensitive, "case-sensitive", false, "Case-sensitive key matching")
	fs.StringVar(&delimiter, "delimiter", "", "Nesting delimiter")
	fs.Var(&envFiles, "env-file", "Dotenv file (repeatable)")
	fs.StringVar(&envFileEncoding, "env-file-encoding", "", "Dotenv file encoding")
	fs.Var(&secretsDirs, "secrets-dir", "Secrets directory (repeatable)")
	fs.Var(&files, "file", "JSON, YAML or TOML settings file (repeatable)")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&dbTable, "db-table", "", "Settings table name")
	fs.StringVar(&dbKeyPrefix, "db-key-prefix", "", "Settings row name prefix")
	fs.BoolVar(&migrate, "migrate", false, "Create the settings table before reading it")
	fs.StringVar(&remoteURL, "remote-url", "", "Remote JSON settings URL")
	fs.StringVar(&remoteToken, "remote-token", "", "Remote bearer token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 5s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Mapping: Mapping{
			FieldsPath:       fieldsPath,
			EnvPrefix:        envPrefix,
			CaseSensitive:    caseSensitive,
			NestingDelimiter: delimiter,
		},
		Sources: Sources{
			EnvFiles:        envFiles,
			EnvFileEncoding: envFileEncoding,
			SecretsDirs:     secretsDirs,
			Files:           files,
		},
		Storage: Storage{
			DB: DB{
				Driver:    dbDriver,
				DSN:       databaseDSN,
				Table:     dbTable,
				KeyPrefix: dbKeyPrefix,
				Migrate:   migrate,
			},
		},
		Remote: Remote{
			URL:            remoteURL,
			Token:          remoteToken,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the collected values joined by commas.
func (l *StringList) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}

// Set appends the comma separated values of s. Empty items are rejected.
func (l *StringList) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return errors.New("empty value in list")
		}
		*l = append(*l, item)
	}

	return nil
}
