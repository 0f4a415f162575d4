package classify

import (
	"go/ast"

	"walker-generator/internal/schema"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind names the container shape a strategy traverses.
type Kind int

const (
	KindUnresolved Kind = iota
	KindDirect
	KindIndirect
	KindSequence
	KindDelimited
	KindOptional
)

// Strategy describes how generated code reaches the nodes inside one
// field or payload type.
type Strategy struct {
	Kind Kind

	// Target is the referenced declaration name. Set for KindDirect
	// only.
	Target string

	// Elem is the strategy for the wrapped element. Set for every
	// container kind.
	Elem *Strategy

	// ExtendedOnly reports that the reached declaration only exists
	// under the full feature, so traversal of this value must be
	// guarded.
	ExtendedOnly bool
}

// Classify resolves a type expression against the lookup. It never
// fails: shapes it does not recognize come back as KindUnresolved.
func Classify(lookup *schema.Lookup, expr ast.Expr) Strategy {
	if s, ok := classifyDirect(lookup, expr); ok {
		return s
	}
	if s, ok := classifyIndirect(lookup, expr); ok {
		return s
	}
	if s, ok := classifySequence(lookup, expr); ok {
		return s
	}
	if s, ok := classifyOptional(lookup, expr); ok {
		return s
	}
	return Strategy{Kind: KindUnresolved}
}

func classifyDirect(lookup *schema.Lookup, expr ast.Expr) (Strategy, bool) {
	id, ok := expr.(*ast.Ident)
	if !ok {
		return Strategy{}, false
	}
	decl, ok := lookup.Get(id.Name)
	if !ok {
		return Strategy{}, false
	}
	return Strategy{
		Kind:         KindDirect,
		Target:       decl.Name,
		ExtendedOnly: decl.ExtendedOnly,
	}, true
}

func classifyIndirect(lookup *schema.Lookup, expr ast.Expr) (Strategy, bool) {
	star, ok := expr.(*ast.StarExpr)
	if !ok {
		return Strategy{}, false
	}
	elem := Classify(lookup, star.X)
	if elem.Kind == KindUnresolved {
		return Strategy{}, false
	}
	return Strategy{
		Kind:         KindIndirect,
		Elem:         &elem,
		ExtendedOnly: elem.ExtendedOnly,
	}, true
}

func classifySequence(lookup *schema.Lookup, expr ast.Expr) (Strategy, bool) {
	switch t := expr.(type) {
	case *ast.ArrayType:
		if t.Len != nil {
			return Strategy{}, false
		}
		elem := Classify(lookup, t.Elt)
		if elem.Kind == KindUnresolved {
			return Strategy{}, false
		}
		return Strategy{
			Kind:         KindSequence,
			Elem:         &elem,
			ExtendedOnly: elem.ExtendedOnly,
		}, true

	case *ast.IndexListExpr:
		// Delimited[T, S]: the separator takes no part in traversal.
		id, ok := t.X.(*ast.Ident)
		if !ok || id.Name != "Delimited" || len(t.Indices) != 2 {
			return Strategy{}, false
		}
		elem := Classify(lookup, t.Indices[0])
		if elem.Kind == KindUnresolved {
			return Strategy{}, false
		}
		return Strategy{
			Kind:         KindDelimited,
			Elem:         &elem,
			ExtendedOnly: elem.ExtendedOnly,
		}, true
	}
	return Strategy{}, false
}

func classifyOptional(lookup *schema.Lookup, expr ast.Expr) (Strategy, bool) {
	idx, ok := expr.(*ast.IndexExpr)
	if !ok {
		return Strategy{}, false
	}
	id, ok := idx.X.(*ast.Ident)
	if !ok || id.Name != "Option" {
		return Strategy{}, false
	}
	elem := Classify(lookup, idx.Index)
	if elem.Kind == KindUnresolved {
		return Strategy{}, false
	}
	return Strategy{
		Kind:         KindOptional,
		Elem:         &elem,
		ExtendedOnly: elem.ExtendedOnly,
	}, true
}
