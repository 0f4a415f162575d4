// Package schema holds the in-memory model of extracted node
// declarations.
//
// It is pure data, produced by the extractor and consumed by the
// classifier and the emitter.
//
// Key types:
//   - Decl: one named node declaration (record or union)
//   - Field / Variant: record fields and union variants
//   - Features: a merged conditional-feature predicate
//   - Lookup: the name-ordered declaration table
package schema
