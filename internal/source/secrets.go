// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-settings/internal/logger"
)

// Secrets provides one entry per regular file found directly inside the
// configured directories: the file name maps to its trimmed content.
//
// For duplicate file names the first directory wins. Directories that do not
// exist are skipped with a warning; a path that exists but is not a
// directory fails with [ErrSecretsNotDir]. Subdirectories are ignored.
type Secrets struct {
	Dirs []string
}

// NewSecrets returns a Secrets provider over dirs.
func NewSecrets(dirs ...string) *Secrets {
	return &Secrets{Dirs: dirs}
}

func (s *Secrets) Name() string {
	return "secrets"
}

func (s *Secrets) Load(ctx context.Context) (*Map, error) {
	log := logger.FromContext(ctx)

	out := NewMap()
	for _, dir := range s.Dirs {
		path, err := expandHome(dir)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("secrets directory does not exist")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error reading secrets directory %s: %w", path, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w, not a %s: %s", ErrSecretsNotDir, pathType(info.Mode()), path)
		}

		if err := readSecretsDir(path, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func readSecretsDir(dir string, out *Map) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error listing secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if _, ok := out.Get(name); ok {
			continue
		}

		full := filepath.Join(dir, name)
		info, err := os.Stat(full)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		data, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("error reading secret %s: %w", full, err)
		}
		out.Set(name, strings.TrimSpace(string(data)))
	}

	return nil
}

func pathType(mode fs.FileMode) string {
	switch {
	case mode.IsRegular():
		return "file"
	case mode.IsDir():
		return "directory"
	case mode&fs.ModeSymlink != 0:
		return "symlink"
	case mode&fs.ModeSocket != 0:
		return "socket"
	case mode&fs.ModeNamedPipe != 0:
		return "FIFO"
	case mode&fs.ModeCharDevice != 0:
		return "char device"
	case mode&fs.ModeDevice != 0:
		return "block device"
	default:
		return "unknown"
	}
}
