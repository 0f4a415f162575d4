package emit

import (
	"fmt"
	"go/ast"
	"strings"

	"walker-generator/internal/classify"
	"walker-generator/internal/common"
	"walker-generator/internal/schema"
)

// variantCase is one resolved arm of a union's dispatch switch.
type variantCase struct {
	variant schema.Variant

	// caseType is the dynamic type the switch matches, pointer form.
	caseType string

	// record is the payload declaration walked directly. Set for
	// union-of-records variants only.
	record string

	// minted is the wrapper type emitted for this variant. Set when
	// record is empty.
	minted string

	strategies []classify.Strategy
}

func generateUnion(st *State, lookup *schema.Lookup, decl *schema.Decl) error {
	cases := make([]variantCase, 0, len(decl.Variants))
	for _, v := range decl.Variants {
		if v.NamedFields {
			return fmt.Errorf("union %s: variant %s has named payload fields; unsupported", decl.Name, v.Name)
		}
		c := variantCase{variant: v}
		if decl.Sum {
			record, err := sumPayload(lookup, decl, v)
			if err != nil {
				return err
			}
			c.record = record
			c.caseType = "*" + record
		} else {
			c.minted = decl.Name + v.Name
			c.caseType = "*" + c.minted
			for _, p := range v.Payloads {
				c.strategies = append(c.strategies, classify.Classify(lookup, p))
			}
		}
		cases = append(cases, c)
	}

	marker := "is" + decl.Name

	fmt.Fprintf(&st.Nodes, "type %s interface {\n\t%s()\n}\n\n", decl.Name, marker)
	for _, c := range cases {
		if c.minted != "" {
			fmt.Fprintf(&st.Nodes, "// %s is the %s variant of %s.\n", c.minted, c.variant.Name, decl.Name)
			if common.IsEmpty(c.variant.Payloads) {
				fmt.Fprintf(&st.Nodes, "type %s struct{}\n\n", c.minted)
			} else {
				fmt.Fprintf(&st.Nodes, "type %s struct {\n", c.minted)
				for i, p := range c.variant.Payloads {
					fmt.Fprintf(&st.Nodes, "\tF%d %s\n", i, typeString(p))
				}
				st.Nodes.WriteString("}\n\n")
			}
		}
		fmt.Fprintf(&st.Nodes, "func (%s) %s() {}\n\n", c.caseType, marker)
	}

	hooks(st, decl)
	dispatch(st, decl)

	req := requires(decl)

	emitSwitchWalk(lookup, decl, cases, req, visitWalker, &st.VisitBody)
	emitSwitchWalk(lookup, decl, cases, req, mutateWalker, &st.MutateBody)
	emitTransformSwitch(st, lookup, decl, cases, req)
	return nil
}

// sumPayload resolves a union-of-records variant to its payload
// record.
func sumPayload(lookup *schema.Lookup, decl *schema.Decl, v schema.Variant) (string, error) {
	if !common.IsSingle(v.Payloads) {
		return "", fmt.Errorf("union %s: variant %s must carry exactly one payload", decl.Name, v.Name)
	}
	payload, _ := common.First(v.Payloads)
	id, ok := payload.(*ast.Ident)
	if !ok {
		return "", fmt.Errorf("union %s: variant %s payload must name a record", decl.Name, v.Name)
	}
	target, ok := lookup.Get(id.Name)
	if !ok || target.Kind != schema.KindRecord {
		return "", fmt.Errorf("union %s: variant %s payload %s is not a record", decl.Name, v.Name, id.Name)
	}
	return target.Name, nil
}

func emitSwitchWalk(lookup *schema.Lookup, decl *schema.Decl, cases []variantCase, req string, w walker, b *strings.Builder) {
	if w.verb == "Visit" {
		fmt.Fprintf(b, "// %s%s dispatches on the variant's dynamic type.\n", w.verb, decl.Name)
	} else {
		fmt.Fprintf(b, "// %s%s dispatches on the variant's dynamic type, letting hooks rewrite records in place.\n", w.verb, decl.Name)
	}
	b.WriteString(req)
	fmt.Fprintf(b, "func %s%s(%s *%s, node %s) {\n", w.verb, decl.Name, w.recv, w.recvType, decl.Name)
	b.WriteString(guard(decl))

	bind := false
	for _, c := range cases {
		if c.record != "" {
			bind = true
		}
		for _, s := range c.strategies {
			if s.Kind != classify.KindUnresolved {
				bind = true
			}
		}
	}

	if bind {
		fmt.Fprintf(b, "\tswitch n := node.(type) {\n")
	} else {
		fmt.Fprintf(b, "\tswitch node.(type) {\n")
	}
	for _, c := range cases {
		fmt.Fprintf(b, "\tcase %s:\n", c.caseType)
		if c.record != "" {
			fmt.Fprintf(b, "\t\t%s.%s%s(n)\n", w.recv, w.verb, c.record)
			continue
		}
		for i, s := range c.strategies {
			w.emitWalk(b, lookup, s, fmt.Sprintf("n.F%d", i), "\t\t", 0)
		}
	}
	b.WriteString("\t}\n}\n\n")
}

func emitTransformSwitch(st *State, lookup *schema.Lookup, decl *schema.Decl, cases []variantCase, req string) {
	b := &st.TransformBody
	fmt.Fprintf(b, "// Transform%s rebuilds node, preserving its variant.\n", decl.Name)
	b.WriteString(req)
	fmt.Fprintf(b, "func Transform%s(t *Transformer, node %s) %s {\n", decl.Name, decl.Name, decl.Name)
	b.WriteString(guard(decl))

	bind := false
	for _, c := range cases {
		if c.record != "" || !common.IsEmpty(c.variant.Payloads) {
			bind = true
		}
	}

	if bind {
		b.WriteString("\tswitch n := node.(type) {\n")
	} else {
		b.WriteString("\tswitch node.(type) {\n")
	}
	for _, c := range cases {
		fmt.Fprintf(b, "\tcase %s:\n", c.caseType)
		switch {
		case c.record != "":
			fmt.Fprintf(b, "\t\tx := t.Transform%s(*n)\n\t\treturn &x\n", c.record)
		case !bind:
			b.WriteString("\t\treturn node\n")
		case common.IsEmpty(c.variant.Payloads):
			b.WriteString("\t\treturn n\n")
		default:
			fmt.Fprintf(b, "\t\treturn &%s{\n", c.minted)
			for i, s := range c.strategies {
				expr := transformExpr(lookup, s, c.variant.Payloads[i], fmt.Sprintf("n.F%d", i), "\t\t\t", 0)
				fmt.Fprintf(b, "\t\t\tF%d: %s,\n", i, expr)
			}
			b.WriteString("\t\t}\n")
		}
	}
	b.WriteString("\t}\n\treturn node\n}\n\n")
}
