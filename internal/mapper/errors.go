// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every [ParseError] via [errors.Is].
var ErrParse = errors.New("error parsing structured value")

// ParseError is returned when a value for a complex field cannot be decoded
// and the field type does not tolerate falling back to the raw value.
type ParseError struct {
	// Key is the candidate name the value was found under.
	Key string
	// Err is the decoder error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing value for key %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
