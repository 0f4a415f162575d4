package emit

import (
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"

	"walker-generator/internal/classify"
	"walker-generator/internal/schema"
)

// Generate appends every fragment for one declaration to the state.
// It fails on shapes the traversals cannot express, most notably
// union variants with named payload fields.
func Generate(st *State, lookup *schema.Lookup, decl *schema.Decl) error {
	switch decl.Kind {
	case schema.KindRecord:
		if err := generateRecord(st, lookup, decl); err != nil {
			return err
		}
	case schema.KindUnion:
		if err := generateUnion(st, lookup, decl); err != nil {
			return err
		}
	}

	if decl.Name != "Span" {
		generateSpan(st, decl)
	}
	return nil
}

// requires renders the merged feature predicate as a doc comment
// line, or nothing when the declaration is unconditional.
func requires(decl *schema.Decl) string {
	if decl.Features.IsEmpty() {
		return ""
	}
	return "// Requires: " + decl.Features.String() + "\n"
}

// guard opens a function body with the extended-set assertion when
// the declaration only exists under the full feature.
func guard(decl *schema.Decl) string {
	if !decl.ExtendedOnly {
		return ""
	}
	return "\tfull(" + fmt.Sprintf("%q", decl.Name) + ")\n"
}

// nodeArg renders the walk parameter for a declaration: records
// travel by pointer, unions by interface value.
func nodeArg(decl *schema.Decl) string {
	if decl.Kind == schema.KindRecord {
		return "*" + decl.Name
	}
	return decl.Name
}

// hooks emits the three hook fields for a declaration.
func hooks(st *State, decl *schema.Decl) {
	arg := nodeArg(decl)
	fmt.Fprintf(&st.VisitHooks, "\t%s func(v *Visitor, node %s)\n", decl.Name, arg)
	fmt.Fprintf(&st.MutateHooks, "\t%s func(m *Mutator, node %s)\n", decl.Name, arg)
	fmt.Fprintf(&st.TransformHooks, "\t%s func(t *Transformer, node %s) %s\n", decl.Name, decl.Name, decl.Name)
}

// dispatch emits the hook-or-default methods for a declaration.
func dispatch(st *State, decl *schema.Decl) {
	arg := nodeArg(decl)
	req := requires(decl)

	fmt.Fprintf(&st.VisitBody, "%sfunc (v *Visitor) Visit%s(node %s) {\n", req, decl.Name, arg)
	fmt.Fprintf(&st.VisitBody, "\tif v.%s != nil {\n\t\tv.%s(v, node)\n\t\treturn\n\t}\n", decl.Name, decl.Name)
	fmt.Fprintf(&st.VisitBody, "\tVisit%s(v, node)\n}\n\n", decl.Name)

	fmt.Fprintf(&st.MutateBody, "%sfunc (m *Mutator) Mutate%s(node %s) {\n", req, decl.Name, arg)
	fmt.Fprintf(&st.MutateBody, "\tif m.%s != nil {\n\t\tm.%s(m, node)\n\t\treturn\n\t}\n", decl.Name, decl.Name)
	fmt.Fprintf(&st.MutateBody, "\tMutate%s(m, node)\n}\n\n", decl.Name)

	ret := decl.Name
	fmt.Fprintf(&st.TransformBody, "%sfunc (t *Transformer) Transform%s(node %s) %s {\n", req, decl.Name, ret, ret)
	fmt.Fprintf(&st.TransformBody, "\tif t.%s != nil {\n\t\treturn t.%s(t, node)\n\t}\n", decl.Name, decl.Name)
	fmt.Fprintf(&st.TransformBody, "\treturn Transform%s(t, node)\n}\n\n", decl.Name)
}

// generateSpan emits the span accessor for a declaration. The
// aggregator rides the visitor's Span hook, so the accessor works for
// any node the visitor can reach.
func generateSpan(st *State, decl *schema.Decl) {
	arg := nodeArg(decl)
	fmt.Fprintf(&st.SpanBody, "// Span%s reports the source extent covered by node. The second\n", decl.Name)
	st.SpanBody.WriteString("// result is false when nothing under node carries a span.\n")
	st.SpanBody.WriteString(requires(decl))
	fmt.Fprintf(&st.SpanBody, "func Span%s(node %s) (Span, bool) {\n", decl.Name, arg)
	st.SpanBody.WriteString("\tagg := spanAggregator{}\n")
	st.SpanBody.WriteString("\tv := &Visitor{Span: agg.visit}\n")
	fmt.Fprintf(&st.SpanBody, "\tv.Visit%s(node)\n", decl.Name)
	st.SpanBody.WriteString("\treturn agg.span, agg.seen\n}\n\n")
}

// typeString prints a schema type expression as Go source.
func typeString(expr ast.Expr) string {
	var b strings.Builder
	printer.Fprint(&b, token.NewFileSet(), expr)
	return b.String()
}

// fieldName resolves a record field's accessor: its name, or for an
// embedded field the base name of its type.
func fieldName(f schema.Field) (string, error) {
	if f.Named() {
		return f.Name, nil
	}
	switch t := f.Type.(type) {
	case *ast.Ident:
		return t.Name, nil
	case *ast.StarExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return id.Name, nil
		}
	}
	return "", fmt.Errorf("embedded field %s does not name a type", typeString(f.Type))
}

// targetKind reports the shape of a direct strategy's target.
func targetKind(lookup *schema.Lookup, s classify.Strategy) schema.ShapeKind {
	decl, ok := lookup.Get(s.Target)
	if !ok {
		return schema.KindRecord
	}
	return decl.Kind
}
