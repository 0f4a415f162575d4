// Package artifact assembles emitted fragments into whole generated
// documents and writes them out.
//
// Five documents make up one run: the node definitions and the four
// traversals. Each carries a generated-code banner, the package
// clause, and its own boilerplate (hook structs, the lift helpers,
// the feature guard, the span aggregator). Rendered source is passed
// through go/format before it leaves the package.
package artifact
