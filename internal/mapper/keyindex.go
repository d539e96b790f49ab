// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"strings"

	"github.com/MKhiriev/go-settings/internal/logger"
)

// keyIndex maps normalized source keys to the original keys.
//
// When several source keys normalize to the same value the first one in the
// source's iteration order is kept and the rest are dropped.
type keyIndex struct {
	caseSensitive bool
	keys          map[string]string
}

func newKeyIndex(src Source, caseSensitive bool, log *logger.Logger) keyIndex {
	keys := src.Keys()
	idx := keyIndex{
		caseSensitive: caseSensitive,
		keys:          make(map[string]string, len(keys)),
	}

	for _, key := range keys {
		normalized := idx.normalize(key)
		if kept, ok := idx.keys[normalized]; ok {
			log.Debug().
				Str("kept", kept).
				Str("dropped", key).
				Msg("source keys collide after normalization")
			continue
		}
		idx.keys[normalized] = key
	}

	return idx
}

func (idx keyIndex) normalize(key string) string {
	if idx.caseSensitive {
		return key
	}

	return strings.ToLower(key)
}

func (idx keyIndex) lookup(name string) (string, bool) {
	key, ok := idx.keys[idx.normalize(name)]
	return key, ok
}
