// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	Mapping struct {
		FieldsPath       string `json:"fields"`
		EnvPrefix        string `json:"env_prefix"`
		CaseSensitive    bool   `json:"case_sensitive"`
		NestingDelimiter string `json:"nesting_delimiter"`
	} `json:"mapping,omitempty"`

	Sources struct {
		EnvFiles        []string `json:"env_files"`
		EnvFileEncoding string   `json:"env_file_encoding"`
		SecretsDirs     []string `json:"secrets_dirs"`
		Files           []string `json:"files"`
	} `json:"sources,omitempty"`

	Storage struct {
		DB struct {
			Driver    string `json:"driver"`
			DSN       string `json:"dsn"`
			Table     string `json:"table"`
			KeyPrefix string `json:"key_prefix"`
			Migrate   bool   `json:"migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		URL            string   `json:"url"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Mapping: Mapping{
			FieldsPath:       jsonCfg.Mapping.FieldsPath,
			EnvPrefix:        jsonCfg.Mapping.EnvPrefix,
			CaseSensitive:    jsonCfg.Mapping.CaseSensitive,
			NestingDelimiter: jsonCfg.Mapping.NestingDelimiter,
		},
		Sources: Sources{
			EnvFiles:        jsonCfg.Sources.EnvFiles,
			EnvFileEncoding: jsonCfg.Sources.EnvFileEncoding,
			SecretsDirs:     jsonCfg.Sources.SecretsDirs,
			Files:           jsonCfg.Sources.Files,
		},
		Storage: Storage{
			DB: DB{
				Driver:    jsonCfg.Storage.DB.Driver,
				DSN:       jsonCfg.Storage.DB.DSN,
				Table:     jsonCfg.Storage.DB.Table,
				KeyPrefix: jsonCfg.Storage.DB.KeyPrefix,
				Migrate:   jsonCfg.Storage.DB.Migrate,
			},
		},
		Remote: Remote{
			URL:            jsonCfg.Remote.URL,
			Token:          jsonCfg.Remote.Token,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
