package extract

import (
	"go/ast"
	"strings"
)

const directivePrefix = "//astgen:"

// directive is one //astgen: line split into its name and arguments.
type directive struct {
	Name string
	Args []string
}

// directives collects every //astgen: line from a comment group.
func directives(cg *ast.CommentGroup) []directive {
	if cg == nil {
		return nil
	}

	var out []directive
	for _, c := range cg.List {
		text, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		out = append(out, directive{Name: fields[0], Args: fields[1:]})
	}
	return out
}

// find returns the first directive with the given name, if any.
func find(ds []directive, name string) (directive, bool) {
	for _, d := range ds {
		if d.Name == name {
			return d, true
		}
	}
	return directive{}, false
}
