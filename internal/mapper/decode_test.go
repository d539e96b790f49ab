// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		value        any
		allowFailure bool
		want         Outcome
		wantErr      bool
	}{
		{
			name:  "json object",
			value: `{"a": "b"}`,
			want:  Outcome{Kind: OutcomeParsed, Value: map[string]any{"a": "b"}},
		},
		{
			name:  "json bytes",
			value: []byte(`[1, 2]`),
			want:  Outcome{Kind: OutcomeParsed, Value: []any{1.0, 2.0}},
		},
		{
			name:  "already structured",
			value: []any{"x"},
			want:  Outcome{Kind: OutcomeParsed, Value: []any{"x"}},
		},
		{
			name:  "non text scalar",
			value: 42,
			want:  Outcome{Kind: OutcomeParsed, Value: 42},
		},
		{
			name:         "invalid tolerated",
			value:        "not-json",
			allowFailure: true,
			want:         Outcome{Kind: OutcomeFallback, Value: "not-json"},
		},
		{
			name:    "invalid fatal",
			value:   "not-json",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode(DecodeJSON, "field", tt.value, tt.allowFailure)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_PassesFieldName(t *testing.T) {
	errBoom := errors.New("boom")
	var got string
	dec := func(fieldName, _ string) (any, error) {
		got = fieldName
		return nil, errBoom
	}

	_, err := decode(dec, "servers", "x", false)

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, "servers", got)
}
