// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-settings/internal/config"
	"github.com/MKhiriev/go-settings/internal/logger"
	"github.com/MKhiriev/go-settings/internal/settings"
	"github.com/MKhiriev/go-settings/internal/source"
	"github.com/MKhiriev/go-settings/migrations"
	"github.com/MKhiriev/go-settings/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-settings")
	log.Info().
		Str("version", buildInfo().BuildVersion()).
		Str("date", buildInfo().BuildDate()).
		Str("commit", buildInfo().BuildCommit()).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("error resolving settings")
	}
}

// run resolves the declared fields against every configured source and
// writes the result to out as indented JSON.
func run(ctx context.Context, args []string, out io.Writer, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log.Debug().Object("config", cfg).Msg("received configs")

	settingsCfg := settings.Config{
		EnvPrefix:        cfg.Mapping.EnvPrefix,
		CaseSensitive:    cfg.Mapping.CaseSensitive,
		NestingDelimiter: cfg.Mapping.NestingDelimiter,
	}

	specs, err := settings.LoadSpec(cfg.Mapping.FieldsPath)
	if err != nil {
		return err
	}
	fields, err := settingsCfg.Prepare(specs)
	if err != nil {
		return err
	}

	builder := settings.NewBuilder(settingsCfg, log).
		WithEnv(cfg.Sources.EnvFiles, cfg.Sources.EnvFileEncoding).
		WithSecrets(cfg.Sources.SecretsDirs...)
	for _, path := range cfg.Sources.Files {
		builder.WithFile(path)
	}

	if cfg.Storage.DB.DSN != "" {
		db, driver, err := source.OpenDB(ctx, cfg.Storage.DB.Driver, cfg.Storage.DB.DSN, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.Storage.DB.Migrate {
			if err = migrations.Migrate(db, driver); err != nil {
				return err
			}
		}
		builder.WithProvider(source.NewSQL(db, driver, cfg.Storage.DB.Table, cfg.Storage.DB.KeyPrefix))
	}

	if cfg.Remote.URL != "" {
		var headers map[string]string
		if cfg.Remote.Token != "" {
			headers = map[string]string{"Authorization": "Bearer " + cfg.Remote.Token}
		}
		builder.WithProvider(source.NewRemote(cfg.Remote.URL, cfg.Remote.RequestTimeout, headers))
	}

	resolved, err := builder.Build(ctx, fields)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(resolved)
}

func buildInfo() models.AppBuildInfo {
	version, date, commit := buildVersion, buildDate, buildCommit
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	return models.NewAppBuildInfo(version, date, commit)
}
