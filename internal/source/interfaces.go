// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/source_provider_mock.go -package=mock

// Provider loads one raw configuration source.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Load returns the provider's key-value mapping.
	Load(ctx context.Context) (*Map, error)
}
