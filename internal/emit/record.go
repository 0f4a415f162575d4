package emit

import (
	"fmt"

	"walker-generator/internal/classify"
	"walker-generator/internal/schema"
)

func generateRecord(st *State, lookup *schema.Lookup, decl *schema.Decl) error {
	// Terminals are owned by the support file; only their traversal
	// surface is generated.
	if !decl.IsTerminal() {
		fmt.Fprintf(&st.Nodes, "type %s struct {\n", decl.Name)
		for _, f := range decl.Fields {
			if f.Named() {
				fmt.Fprintf(&st.Nodes, "\t%s %s\n", f.Name, typeString(f.Type))
			} else {
				fmt.Fprintf(&st.Nodes, "\t%s\n", typeString(f.Type))
			}
		}
		st.Nodes.WriteString("}\n\n")
	}

	hooks(st, decl)
	dispatch(st, decl)

	names := make([]string, len(decl.Fields))
	strategies := make([]classify.Strategy, len(decl.Fields))
	for i, f := range decl.Fields {
		name, err := fieldName(f)
		if err != nil {
			return fmt.Errorf("record %s: %w", decl.Name, err)
		}
		names[i] = name
		strategies[i] = classify.Classify(lookup, f.Type)
	}

	req := requires(decl)

	fmt.Fprintf(&st.VisitBody, "// Visit%s walks the children of node in declaration order.\n", decl.Name)
	st.VisitBody.WriteString(req)
	fmt.Fprintf(&st.VisitBody, "func Visit%s(v *Visitor, node *%s) {\n", decl.Name, decl.Name)
	st.VisitBody.WriteString(guard(decl))
	for i := range decl.Fields {
		visitWalker.emitWalk(&st.VisitBody, lookup, strategies[i], "node."+names[i], "\t", 0)
	}
	st.VisitBody.WriteString("}\n\n")

	fmt.Fprintf(&st.MutateBody, "// Mutate%s walks node's children, letting hooks rewrite records in place.\n", decl.Name)
	st.MutateBody.WriteString(req)
	fmt.Fprintf(&st.MutateBody, "func Mutate%s(m *Mutator, node *%s) {\n", decl.Name, decl.Name)
	st.MutateBody.WriteString(guard(decl))
	for i := range decl.Fields {
		mutateWalker.emitWalk(&st.MutateBody, lookup, strategies[i], "node."+names[i], "\t", 0)
	}
	st.MutateBody.WriteString("}\n\n")

	fmt.Fprintf(&st.TransformBody, "// Transform%s rebuilds node bottom-up.\n", decl.Name)
	st.TransformBody.WriteString(req)
	fmt.Fprintf(&st.TransformBody, "func Transform%s(t *Transformer, node %s) %s {\n", decl.Name, decl.Name, decl.Name)
	st.TransformBody.WriteString(guard(decl))
	if len(decl.Fields) == 0 {
		st.TransformBody.WriteString("\treturn node\n}\n\n")
		return nil
	}
	fmt.Fprintf(&st.TransformBody, "\treturn %s{\n", decl.Name)
	for i, f := range decl.Fields {
		expr := transformExpr(lookup, strategies[i], f.Type, "node."+names[i], "\t\t", 0)
		fmt.Fprintf(&st.TransformBody, "\t\t%s: %s,\n", names[i], expr)
	}
	st.TransformBody.WriteString("\t}\n}\n\n")
	return nil
}
