// Package settings assembles a resolved settings mapping out of several
// sources.
//
// Field descriptors are prepared from a declarative [FieldSpec] list (see
// [LoadSpec]) or from a Go struct ([Config.FieldsOf]). A [Builder] loads every
// configured provider, resolves the fields against each one with its own
// mapper and deep-merges the per-source results. Init values take precedence
// over providers; providers take precedence in the order they were added.
package settings
