// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import "github.com/MKhiriev/go-settings/models"

// classify reports whether values of t need structured decoding and, if so,
// whether a decoding failure may fall back to the raw value.
//
// A complex type never tolerates failure. A union with at least one complex
// branch does: the raw value is kept for a scalar branch to pick up.
func classify(t models.Type) (isComplex, allowParseFailure bool) {
	if t.Complex {
		return true, false
	}

	for _, branch := range t.Union {
		if branch.Complex {
			return true, true
		}
	}

	return false, false
}
