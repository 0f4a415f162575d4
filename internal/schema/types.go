package schema

import (
	"go/ast"
	"strings"
)

//go:generate go tool stringer -type=ShapeKind -output=shapekind_string.go

// ShapeKind distinguishes the two declaration shapes.
type ShapeKind int

const (
	KindRecord ShapeKind = iota
	KindUnion
)

// Decl describes one node declaration extracted from a schema file.
type Decl struct {
	// Name keys the lookup table.
	Name string
	// Kind of the declaration shape.
	Kind ShapeKind
	// Fields of a record, in declared order. Empty for unions.
	Fields []Field
	// Variants of a union, in declared order. Empty for records.
	Variants []Variant
	// Features is the merged conditional predicate from all enclosing
	// declaration scopes.
	Features Features
	// ExtendedOnly marks declarations that are only meaningful when the
	// extended feature set is enabled.
	ExtendedOnly bool
	// Sum marks unions declared in the union-of-records form. Their
	// variants dispatch on the payload record itself instead of a
	// minted wrapper type.
	Sum bool
}

// IsTerminal reports whether the declaration is an opaque leaf: a
// record with no fields.
func (d *Decl) IsTerminal() bool {
	return d.Kind == KindRecord && len(d.Fields) == 0
}

// Field is one record field.
type Field struct {
	// Name of the field. Empty for positional (embedded) fields.
	Name string
	// Type is the field's declared type expression.
	Type ast.Expr
}

// Named reports whether the field carries an explicit name.
func (f Field) Named() bool {
	return f.Name != ""
}

// Variant is one union variant.
type Variant struct {
	// Name of the variant.
	Name string
	// Payloads holds the variant's payload type expressions, in
	// positional order. Empty for unit variants.
	Payloads []ast.Expr
	// NamedFields is true when the variant declared named payload
	// fields. The shape is unsupported and fails generation.
	NamedFields bool
}

// IsUnit reports whether the variant carries no payload.
func (v Variant) IsUnit() bool {
	return len(v.Payloads) == 0
}

// Features is an ordered conjunction of feature names. The zero value
// means "always".
type Features []string

// With returns a copy of f extended by the given feature names.
// Duplicates are dropped so nesting the same annotation does not grow
// the predicate.
func (f Features) With(names ...string) Features {
	out := make(Features, 0, len(f)+len(names))
	out = append(out, f...)

	for _, name := range names {
		seen := false
		for _, have := range out {
			if have == name {
				seen = true
				break
			}
		}

		if !seen {
			out = append(out, name)
		}
	}

	return out
}

// IsEmpty reports whether the predicate places no condition.
func (f Features) IsEmpty() bool {
	return len(f) == 0
}

// String renders the predicate as a conjunction, e.g. "full && extra".
func (f Features) String() string {
	return strings.Join(f, " && ")
}
