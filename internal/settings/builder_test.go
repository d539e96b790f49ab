// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-settings/internal/logger"
	"github.com/MKhiriev/go-settings/internal/mapper"
	"github.com/MKhiriev/go-settings/internal/mock"
	"github.com/MKhiriev/go-settings/internal/source"
	"github.com/MKhiriev/go-settings/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testFields() []models.Field {
	return []models.Field{
		{Name: "name", Alias: "name", EnvNames: []string{"app_name"}},
		{Name: "token", Alias: "token", EnvNames: []string{"app_token"}},
		{
			Name:     "db",
			Alias:    "db",
			EnvNames: []string{"app_db"},
			Type:     models.Model,
			Fields: []models.Field{
				{Name: "host", Alias: "host", EnvNames: []string{"host"}},
				{Name: "port", Alias: "port", EnvNames: []string{"port"}},
			},
		},
	}
}

func newMockProvider(ctrl *gomock.Controller, name string, values *source.Map, err error) *mock.MockProvider {
	p := mock.NewMockProvider(ctrl)
	p.EXPECT().Name().Return(name).AnyTimes()
	p.EXPECT().Load(gomock.Any()).Return(values, err)
	return p
}

func mapOf(pairs ...any) *source.Map {
	m := source.NewMap()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1])
	}
	return m
}

func TestBuilder_Precedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := Config{NestingDelimiter: "__"}

	high := newMockProvider(ctrl, "high", mapOf(
		"APP_NAME", "from-high",
		"APP_DB__HOST", "high-host",
	), nil)
	low := newMockProvider(ctrl, "low", mapOf(
		"APP_NAME", "from-low",
		"APP_TOKEN", "low-token",
		"APP_DB", `{"host": "low-host", "port": 5432}`,
	), nil)

	result, err := NewBuilder(cfg, logger.Nop()).
		WithProvider(high).
		WithProvider(low).
		Build(context.Background(), testFields())

	require.NoError(t, err)
	want := map[string]any{
		"name":  "from-high",
		"token": "low-token",
		"db": map[string]any{
			"host": "high-host",
			"port": 5432.0,
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_InitValuesWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newMockProvider(ctrl, "env", mapOf("APP_NAME", "env", "APP_DB__PORT", "1"), nil)
	init := map[string]any{
		"name": "init",
		"db":   map[string]any{"host": "init-host"},
	}

	result, err := NewBuilder(Config{NestingDelimiter: "__"}, nil).
		WithInit(init).
		WithProvider(p).
		Build(context.Background(), testFields())

	require.NoError(t, err)
	assert.Equal(t, "init", result["name"])
	assert.Equal(t, map[string]any{"host": "init-host", "port": "1"}, result["db"])
	assert.Equal(t, map[string]any{"host": "init-host"}, init["db"])
}

func TestBuilder_LoadErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	errDown := errors.New("down")
	ok := newMockProvider(ctrl, "ok", mapOf("APP_NAME", "x"), nil)
	broken := newMockProvider(ctrl, "broken", nil, errDown)

	result, err := NewBuilder(Config{}, nil).
		WithProvider(ok).
		WithProvider(broken).
		Build(context.Background(), testFields())

	require.ErrorIs(t, err, errDown)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "broken")
}

func TestBuilder_ParseErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newMockProvider(ctrl, "env", mapOf("APP_DB", "{oops"), nil)

	result, err := NewBuilder(Config{}, nil).
		WithProvider(p).
		Build(context.Background(), testFields())

	require.ErrorIs(t, err, mapper.ErrParse)
	assert.Nil(t, result)
}

func TestBuilder_NilProvider(t *testing.T) {
	_, err := NewBuilder(Config{}, nil).
		WithProvider(nil).
		Build(context.Background(), testFields())

	require.ErrorIs(t, err, ErrNilProvider)
}

func TestBuilder_CustomDecoder(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newMockProvider(ctrl, "env", mapOf("APP_DB", "host=h"), nil)
	cfg := Config{Decoder: func(_, raw string) (any, error) {
		return map[string]any{"dsn": raw}, nil
	}}

	result, err := NewBuilder(cfg, nil).WithProvider(p).Build(context.Background(), testFields())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"dsn": "host=h"}, result["db"])
}

func TestDefaults_EnvOverSecrets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app_token"), []byte("file-token\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app_name"), []byte("file-name\n"), 0o600))
	t.Setenv("APP_NAME", "env-name")

	result, err := Defaults(Config{}, logger.Nop(), nil, dir).
		Build(context.Background(), testFields())

	require.NoError(t, err)
	assert.Equal(t, "env-name", result["name"])
	assert.Equal(t, "file-token", result["token"])
}

func TestBuilder_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_db:\n  host: yaml-host\napp_name: yaml\n"), 0o600))

	result, err := NewBuilder(Config{}, nil).WithFile(path).Build(context.Background(), testFields())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name": "yaml",
		"db":   map[string]any{"host": "yaml-host"},
	}, result)
}

func TestDeepUpdate(t *testing.T) {
	high := map[string]any{"a": "high", "nested": map[string]any{"x": 1}}
	low := map[string]any{"a": "low", "b": "low", "nested": map[string]any{"x": 0, "y": 2}}

	merged, err := deepUpdate([]map[string]any{high, low})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a":      "high",
		"b":      "low",
		"nested": map[string]any{"x": 1, "y": 2},
	}, merged)
	assert.Equal(t, map[string]any{"x": 0, "y": 2}, low["nested"])
}
