// Package emit turns classified declarations into Go source
// fragments.
//
// Generate is called once per declaration, in sorted name order, and
// appends to the shared emission state: node type definitions with
// union conformance glue, visitor hook fields and walk functions, and
// the mutate, transform and span equivalents. The artifact package
// assembles the fragments into whole documents.
package emit
