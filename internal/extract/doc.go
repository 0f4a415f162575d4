// Package extract reads schema declaration files and populates the
// declaration lookup table.
//
// Schema files are ordinary Go source parsed with go/parser (syntax
// only, never type-checked). The extractor recognizes three
// declaration forms by directive:
//
//   - //astgen:node on a struct type: a record
//   - //astgen:union on an interface type: a tagged union whose
//     methods are the variants
//   - //astgen:sum on an interface type: a tagged union whose variants
//     may inline a fresh record as an anonymous struct payload
//
// //astgen:include directives load sibling files, folding their listed
// feature names into the predicate passed down. Everything else in a
// schema file is ignored.
package extract
