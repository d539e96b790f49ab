// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-settings/internal/logger"
	"github.com/joho/godotenv"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is used for dotenv files when no encoding is configured.
const DefaultEncoding = "utf-8"

// Env provides the process environment overlaid on values read from dotenv
// files.
//
// Dotenv files are applied in order, later files overriding earlier ones.
// The process environment overrides them all. Missing files are skipped.
type Env struct {
	// Files lists dotenv file paths. A leading "~" is expanded.
	Files []string
	// Encoding names the dotenv file text encoding (WHATWG label, e.g.
	// "utf-8", "latin1"). Empty means DefaultEncoding.
	Encoding string
	// Environ returns the process environment as "KEY=value" pairs.
	// Defaults to os.Environ.
	Environ func() []string
}

// NewEnv returns an Env provider reading the given dotenv files.
func NewEnv(files []string, encodingName string) *Env {
	return &Env{
		Files:    files,
		Encoding: encodingName,
		Environ:  os.Environ,
	}
}

func (e *Env) Name() string {
	return "env"
}

// Load returns dotenv entries first, in file order, followed by process
// environment variables not defined in any dotenv file.
func (e *Env) Load(ctx context.Context) (*Map, error) {
	out := NewMap()

	if len(e.Files) > 0 {
		dotenv, err := LoadDotenv(ctx, e.Files, e.Encoding)
		if err != nil {
			return nil, err
		}
		out.Update(dotenv)
	}

	environ := e.Environ
	if environ == nil {
		environ = os.Environ
	}
	for _, pair := range environ() {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		out.Set(key, value)
	}

	return out, nil
}

// LoadDotenv reads the dotenv files in order, later files overriding earlier
// ones. Paths that are not regular files are skipped. Keys of one file are
// added in sorted order.
func LoadDotenv(ctx context.Context, files []string, encodingName string) (*Map, error) {
	log := logger.FromContext(ctx)

	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	out := NewMap()
	for _, file := range files {
		path, err := expandHome(file)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			log.Debug().Str("path", path).Msg("dotenv file not found, skipping")
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading dotenv file %s: %w", path, err)
		}

		text, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("error decoding dotenv file %s: %w", path, err)
		}

		values, err := godotenv.UnmarshalBytes(text)
		if err != nil {
			return nil, fmt.Errorf("error parsing dotenv file %s: %w", path, err)
		}

		for _, key := range slices.Sorted(maps.Keys(values)) {
			out.Set(key, values[key])
		}
	}

	return out, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	return enc, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error expanding %s: %w", path, err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
