// Package diagnostic provides structured, span-anchored messages for
// everything the generator and its demo surface report to users.
//
// Key capabilities:
//   - Severity-tagged diagnostics with source spans
//   - Secondary notes anchored at related spans
//   - Accumulation across a run with error short-circuiting
//   - Colored terminal rendering
package diagnostic
