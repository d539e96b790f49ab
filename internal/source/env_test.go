// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func staticEnviron(pairs ...string) func() []string {
	return func() []string { return pairs }
}

func TestEnv_EnvironOnly(t *testing.T) {
	e := &Env{Environ: staticEnviron("APP_NAME=demo", "EMPTY=", "BROKEN", "=C:=C:\\", "URL=a=b")}

	m, err := e.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"APP_NAME", "EMPTY", "URL"}, m.Keys())
	assert.Equal(t, map[string]any{"APP_NAME": "demo", "EMPTY": "", "URL": "a=b"}, m.ToMap())
}

func TestEnv_ProcessEnvironmentOverridesDotenv(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.env", []byte("HOST=file-host\nPORT=1\n"))
	second := writeFile(t, dir, ".env", []byte("PORT=2\nDEBUG=true\n"))

	e := &Env{
		Files:   []string{first, filepath.Join(dir, "missing.env"), second},
		Environ: staticEnviron("HOST=env-host", "USER=me"),
	}

	m, err := e.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"HOST":  "env-host",
		"PORT":  "2",
		"DEBUG": "true",
		"USER":  "me",
	}, m.ToMap())
	assert.Equal(t, []string{"HOST", "PORT", "DEBUG", "USER"}, m.Keys())
}

func TestNewEnv_UsesProcessEnvironment(t *testing.T) {
	t.Setenv("GO_SETTINGS_TEST_VALUE", "from-process")

	m, err := NewEnv(nil, "").Load(context.Background())

	require.NoError(t, err)
	v, ok := m.Get("GO_SETTINGS_TEST_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "from-process", v)
}

func TestLoadDotenv_Encoding(t *testing.T) {
	dir := t.TempDir()
	// "café" in ISO-8859-1
	path := writeFile(t, dir, "latin.env", []byte("NAME=caf\xe9\n"))

	m, err := LoadDotenv(context.Background(), []string{path}, "latin1")

	require.NoError(t, err)
	v, _ := m.Get("NAME")
	assert.Equal(t, "café", v)
}

func TestLoadDotenv_UnknownEncoding(t *testing.T) {
	_, err := LoadDotenv(context.Background(), []string{"whatever.env"}, "no-such-encoding")

	require.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestLoadDotenv_DirectoryIsSkipped(t *testing.T) {
	dir := t.TempDir()

	m, err := LoadDotenv(context.Background(), []string{dir}, "")

	require.NoError(t, err)
	assert.Zero(t, m.Len())
}

func TestLoadDotenv_QuotedAndExported(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", []byte("export TOKEN=\"abc def\"\n# comment\nDB='{\"host\": \"x\"}'\n"))

	m, err := LoadDotenv(context.Background(), []string{path}, "utf8")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"TOKEN": "abc def", "DB": `{"host": "x"}`}, m.ToMap())
}
