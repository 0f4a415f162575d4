// Package syntax provides the minimal parsing surface the generated
// traversals are demonstrated against: positions and joinable spans,
// a rune tokenizer, a token cursor, parenthesized group parsing, and
// the ParseError type diagnostics are built from.
package syntax
