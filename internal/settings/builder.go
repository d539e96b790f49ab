// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-settings/internal/logger"
	"github.com/MKhiriev/go-settings/internal/mapper"
	"github.com/MKhiriev/go-settings/internal/source"
	"github.com/MKhiriev/go-settings/models"
	"github.com/google/uuid"
)

// Builder collects settings sources and resolves fields against them.
type Builder struct {
	cfg       Config
	logger    *logger.Logger
	init      map[string]any
	providers []source.Provider
	err       error
}

// NewBuilder returns an empty Builder. A nil log discards diagnostics.
func NewBuilder(cfg Config, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}

	return &Builder{
		cfg:       cfg,
		logger:    log,
		providers: make([]source.Provider, 0, 4),
	}
}

// Defaults returns a Builder reading the process environment (overlaid on
// envFiles) and then the secrets directories, the same precedence the
// environment has over secrets.
func Defaults(cfg Config, log *logger.Logger, envFiles []string, secretsDirs ...string) *Builder {
	return NewBuilder(cfg, log).
		WithEnv(envFiles, "").
		WithSecrets(secretsDirs...)
}

// WithInit sets values that take precedence over every source. They are
// keyed by field alias and used as they are.
func (b *Builder) WithInit(values map[string]any) *Builder {
	b.init = values
	return b
}

// WithEnv adds the process environment overlaid on dotenv files.
func (b *Builder) WithEnv(files []string, encoding string) *Builder {
	return b.WithProvider(source.NewEnv(files, encoding))
}

// WithSecrets adds the secrets directories. It is a no-op without dirs.
func (b *Builder) WithSecrets(dirs ...string) *Builder {
	if len(dirs) == 0 {
		return b
	}

	return b.WithProvider(source.NewSecrets(dirs...))
}

// WithFile adds a JSON, YAML or TOML settings file.
func (b *Builder) WithFile(path string) *Builder {
	return b.WithProvider(source.NewFile(path))
}

// WithProvider adds p with lower precedence than the providers added
// before it.
func (b *Builder) WithProvider(p source.Provider) *Builder {
	if p == nil {
		b.err = errors.Join(b.err, ErrNilProvider)
		return b
	}

	b.providers = append(b.providers, p)
	return b
}

// Build loads every provider, resolves fields against each of them and
// merges the results. Nested mappings are merged key by key; for any other
// value the source with the highest precedence wins. Nothing is returned if
// any provider fails to load or resolve.
func (b *Builder) Build(ctx context.Context, fields []models.Field) (map[string]any, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	log := &logger.Logger{Logger: b.logger.With().Str("build_id", uuid.NewString()).Logger()}
	ctx = log.WithContext(ctx)

	results := make([]map[string]any, 0, len(b.providers)+1)
	if b.init != nil {
		results = append(results, b.init)
	}

	var errs error
	for _, p := range b.providers {
		src, err := p.Load(ctx)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("error loading %s source: %w", p.Name(), err))
			continue
		}

		result, err := mapper.New(src, b.cfg.mapperOptions(log)...).Map(fields)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("error mapping %s source: %w", p.Name(), err))
			continue
		}

		log.Debug().Str("source", p.Name()).Int("fields", len(result)).Msg("source resolved")
		results = append(results, result)
	}
	if errs != nil {
		return nil, errs
	}

	return deepUpdate(results)
}

// deepUpdate merges results, the first one having the highest precedence.
func deepUpdate(results []map[string]any) (map[string]any, error) {
	merged := make(map[string]any)
	for i := len(results) - 1; i >= 0; i-- {
		if err := mergo.Merge(&merged, cloneTree(results[i]), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return merged, nil
}

// cloneTree copies nested maps so merging never writes into a source's or
// a caller's maps.
func cloneTree(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = cloneTree(nested)
		}
		out[k] = v
	}

	return out
}
