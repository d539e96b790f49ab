// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"encoding/json"
)

// Decoder turns the raw text of a complex field into a structured value.
// fieldName is the identifier of the field being resolved.
type Decoder func(fieldName, raw string) (any, error)

// DecodeJSON is the default [Decoder]. Objects decode to map[string]any,
// arrays to []any and numbers to float64.
func DecodeJSON(_ string, raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}

	return v, nil
}

// OutcomeKind tells a decoded value apart from a raw fallback.
type OutcomeKind int

const (
	// OutcomeParsed means Value is the decoded value.
	OutcomeParsed OutcomeKind = iota
	// OutcomeFallback means decoding failed and Value is the raw value.
	OutcomeFallback
)

// Outcome is the result of decoding a value for a complex field.
type Outcome struct {
	Kind  OutcomeKind
	Value any
}

// decode runs the decoder over raw values that still need it. Values that
// are neither string nor []byte are already structured and count as parsed.
// A decoding failure is returned as an error unless allowFailure is set, in
// which case the raw value comes back as [OutcomeFallback].
func decode(dec Decoder, fieldName string, value any, allowFailure bool) (Outcome, error) {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return Outcome{Kind: OutcomeParsed, Value: value}, nil
	}

	parsed, err := dec(fieldName, raw)
	if err != nil {
		if allowFailure {
			return Outcome{Kind: OutcomeFallback, Value: value}, nil
		}
		return Outcome{}, err
	}

	return Outcome{Kind: OutcomeParsed, Value: parsed}, nil
}
