// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultRemoteTimeout bounds a [Remote] request when no timeout is set.
const DefaultRemoteTimeout = 10 * time.Second

// Remote provides the top-level entries of a JSON object fetched with an
// HTTP GET. Keys are sorted.
type Remote struct {
	url     string
	headers map[string]string
	client  *resty.Client
}

// NewRemote returns a provider fetching url. headers are sent with every
// request.
func NewRemote(url string, timeout time.Duration, headers map[string]string) *Remote {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}

	return &Remote{
		url:     url,
		headers: headers,
		client:  resty.New().SetTimeout(timeout),
	}
}

func (r *Remote) Name() string {
	return "remote:" + r.url
}

func (r *Remote) Load(ctx context.Context) (*Map, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeaders(r.headers).
		Get(r.url)
	if err != nil {
		return nil, fmt.Errorf("remote settings request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %s returned %d", ErrRemoteStatus, r.url, resp.StatusCode())
	}

	m, err := parseJSONDocument(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("error decoding remote settings: %w", err)
	}

	return m, nil
}
