// Package classify resolves field and payload type expressions to
// traversal strategies.
//
// Resolution tries the cheapest shape first and falls through: a plain
// reference to a known declaration, then a pointer, then a slice or
// delimited sequence, then an optional. Whatever remains is
// unresolved and traversal leaves it alone.
package classify
