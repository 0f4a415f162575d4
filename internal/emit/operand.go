package emit

import (
	"fmt"
	"go/ast"
	"strings"

	"walker-generator/internal/classify"
	"walker-generator/internal/schema"
)

// walker parameterizes the two read-style traversals: visit and
// mutate share their reachability code and differ only in receiver
// and verb.
type walker struct {
	recv     string // "v" or "m"
	recvType string // "Visitor" or "Mutator"
	verb     string // "Visit" or "Mutate"
}

var (
	visitWalker  = walker{recv: "v", recvType: "Visitor", verb: "Visit"}
	mutateWalker = walker{recv: "m", recvType: "Mutator", verb: "Mutate"}
)

// call renders one traversal call for a value we hold directly. val
// must be addressable.
func (w walker) call(lookup *schema.Lookup, s classify.Strategy, val string) string {
	if targetKind(lookup, s) == schema.KindRecord {
		return fmt.Sprintf("%s.%s%s(&%s)", w.recv, w.verb, s.Target, val)
	}
	return fmt.Sprintf("%s.%s%s(%s)", w.recv, w.verb, s.Target, val)
}

// callPtr renders one traversal call for a pointer we hold.
func (w walker) callPtr(lookup *schema.Lookup, s classify.Strategy, ptr string) string {
	if targetKind(lookup, s) == schema.KindRecord {
		return fmt.Sprintf("%s.%s%s(%s)", w.recv, w.verb, s.Target, ptr)
	}
	return fmt.Sprintf("%s.%s%s(*%s)", w.recv, w.verb, s.Target, ptr)
}

// emitWalk writes the statements that reach every node inside one
// operand. val is an addressable value expression; depth numbers the
// loop and binding variables so nested containers do not collide.
func (w walker) emitWalk(b *strings.Builder, lookup *schema.Lookup, s classify.Strategy, val, indent string, depth int) {
	switch s.Kind {
	case classify.KindDirect:
		fmt.Fprintf(b, "%s%s\n", indent, w.call(lookup, s, val))

	case classify.KindIndirect:
		fmt.Fprintf(b, "%sif %s != nil {\n", indent, val)
		if s.Elem.Kind == classify.KindDirect {
			fmt.Fprintf(b, "%s\t%s\n", indent, w.callPtr(lookup, *s.Elem, val))
		} else {
			w.emitWalk(b, lookup, *s.Elem, "(*"+val+")", indent+"\t", depth+1)
		}
		fmt.Fprintf(b, "%s}\n", indent)

	case classify.KindSequence:
		idx := indexVar(depth)
		fmt.Fprintf(b, "%sfor %s := range %s {\n", indent, idx, val)
		w.emitWalk(b, lookup, *s.Elem, val+"["+idx+"]", indent+"\t", depth+1)
		fmt.Fprintf(b, "%s}\n", indent)

	case classify.KindDelimited:
		idx := indexVar(depth)
		fmt.Fprintf(b, "%sfor %s := 0; %s < %s.Len(); %s++ {\n", indent, idx, idx, val, idx)
		if s.Elem.Kind == classify.KindDirect {
			fmt.Fprintf(b, "%s\t%s\n", indent, w.callPtr(lookup, *s.Elem, val+".Item("+idx+")"))
		} else {
			w.emitWalk(b, lookup, *s.Elem, "(*"+val+".Item("+idx+"))", indent+"\t", depth+1)
		}
		fmt.Fprintf(b, "%s}\n", indent)

	case classify.KindOptional:
		ptr := ptrVar(depth)
		fmt.Fprintf(b, "%sif %s := %s.Ptr(); %s != nil {\n", indent, ptr, val, ptr)
		if s.Elem.Kind == classify.KindDirect {
			fmt.Fprintf(b, "%s\t%s\n", indent, w.callPtr(lookup, *s.Elem, ptr))
		} else {
			w.emitWalk(b, lookup, *s.Elem, "(*"+ptr+")", indent+"\t", depth+1)
		}
		fmt.Fprintf(b, "%s}\n", indent)

	case classify.KindUnresolved:
		fmt.Fprintf(b, "%s// %s has no schema type; skipped.\n", indent, val)
	}
}

// transformExpr renders the expression that rebuilds one operand.
// typ is unwrapped in lockstep with the strategy so element types can
// be named in closures and lift calls.
func transformExpr(lookup *schema.Lookup, s classify.Strategy, typ ast.Expr, val, indent string, depth int) string {
	switch s.Kind {
	case classify.KindDirect:
		return fmt.Sprintf("t.Transform%s(%s)", s.Target, val)

	case classify.KindIndirect:
		star := typ.(*ast.StarExpr)
		elem := typeString(star.X)
		inner := transformExpr(lookup, *s.Elem, star.X, "*"+val, indent+"\t", depth+1)
		var b strings.Builder
		fmt.Fprintf(&b, "func() *%s {\n", elem)
		fmt.Fprintf(&b, "%s\tif %s == nil {\n%s\t\treturn nil\n%s\t}\n", indent, val, indent, indent)
		fmt.Fprintf(&b, "%s\t%s := %s\n", indent, tmpVar(depth), inner)
		fmt.Fprintf(&b, "%s\treturn &%s\n%s}()", indent, tmpVar(depth), indent)
		return b.String()

	case classify.KindSequence:
		arr := typ.(*ast.ArrayType)
		elem := typeString(arr.Elt)
		x := tmpVar(depth)
		inner := transformExpr(lookup, *s.Elem, arr.Elt, x, indent, depth+1)
		return fmt.Sprintf("liftSlice(%s, func(%s %s) %s { return %s })", val, x, elem, elem, inner)

	case classify.KindDelimited:
		list := typ.(*ast.IndexListExpr)
		elem := typeString(list.Indices[0])
		x := tmpVar(depth)
		inner := transformExpr(lookup, *s.Elem, list.Indices[0], x, indent, depth+1)
		return fmt.Sprintf("liftDelimited(%s, func(%s %s) %s { return %s })", val, x, elem, elem, inner)

	case classify.KindOptional:
		idx := typ.(*ast.IndexExpr)
		elem := typeString(idx.Index)
		x := tmpVar(depth)
		inner := transformExpr(lookup, *s.Elem, idx.Index, x, indent, depth+1)
		return fmt.Sprintf("%s.Map(func(%s %s) %s { return %s })", val, x, elem, elem, inner)
	}

	return val
}

func indexVar(depth int) string {
	if depth == 0 {
		return "i"
	}
	return fmt.Sprintf("i%d", depth+1)
}

func ptrVar(depth int) string {
	if depth == 0 {
		return "p"
	}
	return fmt.Sprintf("p%d", depth+1)
}

func tmpVar(depth int) string {
	if depth == 0 {
		return "x"
	}
	return fmt.Sprintf("x%d", depth+1)
}
