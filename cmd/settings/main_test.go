// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-settings/internal/config"
	"github.com/MKhiriev/go-settings/internal/logger"
	"github.com/MKhiriev/go-settings/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

const fieldsYAML = `
fields:
  - name: name
  - name: port
  - name: token
    env: API_TOKEN
  - name: db
    type: model
    fields:
      - name: host
      - name: user
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_ResolvesAllSources(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	fieldsPath := writeFile(t, dir, "fields.yaml", fieldsYAML)
	envFile := writeFile(t, dir, ".env", "APP_DB__USER=admin\nAPP_NAME=from-dotenv\n")

	dbPath := filepath.Join(dir, "settings.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	require.NoError(t, migrations.Migrate(db, "sqlite3"))
	_, err = db.Exec(`INSERT INTO settings (name, value) VALUES ('app_port', '8080'), ('app_name', 'from-db')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"api_token": "remote-token", "app_port": "9090"}`))
	}))
	defer srv.Close()

	t.Setenv("APP_NAME", "from-env")
	t.Setenv("APP_DB__HOST", "localhost")

	args := []string{
		"-fields", fieldsPath,
		"-prefix", "APP_",
		"-delimiter", "__",
		"-env-file", envFile,
		"-db-driver", "sqlite3",
		"-d", dbPath,
		"-migrate",
		"-remote-url", srv.URL,
		"-remote-token", "secret",
	}
	var out bytes.Buffer

	// Act
	err = run(context.Background(), args, &out, logger.Nop())

	// Assert
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "from-env",
		"port": "8080",
		"token": "remote-token",
		"db": {"host": "localhost", "user": "admin"}
	}`, out.String())
}

func TestRun_ConfigError(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"-unknown"}, &out, logger.Nop())

	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRun_MissingFieldsFile(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-fields", filepath.Join(t.TempDir(), "missing.yaml")}

	err := run(context.Background(), args, &out, logger.Nop())

	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestBuildInfo_Defaults(t *testing.T) {
	info := buildInfo()

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestRun_DoesNotLogCredentials(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	fieldsPath := writeFile(t, dir, "fields.yaml", fieldsYAML)
	var out, logs bytes.Buffer
	args := []string{
		"-fields", fieldsPath,
		"-remote-url", "http://127.0.0.1:1/",
		"-remote-token", "s3cr3t-token",
		"-request-timeout", "1s",
	}

	// Act
	_ = run(context.Background(), args, &out, logger.NewLoggerWithOutput(&logs, "test"))

	// Assert
	assert.Contains(t, logs.String(), "received configs")
	assert.NotContains(t, logs.String(), "s3cr3t-token")
}

func TestRun_MigrateRejectsCustomTable(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	fieldsPath := writeFile(t, dir, "fields.yaml", fieldsYAML)
	args := []string{
		"-fields", fieldsPath,
		"-db-driver", "sqlite3",
		"-d", filepath.Join(dir, "settings.db"),
		"-migrate",
		"-db-table", "app_settings",
	}
	var out bytes.Buffer

	// Act
	err := run(context.Background(), args, &out, logger.Nop())

	// Assert
	require.ErrorIs(t, err, config.ErrInvalidStorageConfigs)
	assert.Empty(t, out.String())
	_, statErr := os.Stat(filepath.Join(dir, "settings.db"))
	assert.True(t, os.IsNotExist(statErr))
}
