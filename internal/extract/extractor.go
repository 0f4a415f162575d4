package extract

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"

	"walker-generator/internal/common"
	"walker-generator/internal/schema"
)

// Include names that refer to hand-written traversal scaffolding
// rather than schema declarations. They are skipped without error.
var ignoredIncludes = map[string]bool{
	"visit":     true,
	"transform": true,
}

// Extract parses the schema file at root plus every transitively
// included sibling and returns the populated lookup along with the
// package name of the root file.
//
// Terminal leaves (Ident, Span) are seeded as zero-field records so
// that classification can resolve references to them.
func Extract(root string) (*schema.Lookup, string, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, root, nil, parser.ParseComments)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", root, err)
	}

	lookup := schema.NewLookup()

	ex := extractor{fset: fset, lookup: lookup, dir: filepath.Dir(root)}
	if err := ex.file(file, root, nil); err != nil {
		return nil, "", err
	}

	for _, terminal := range []string{"Ident", "Span"} {
		lookup.Insert(&schema.Decl{Name: terminal, Kind: schema.KindRecord})
	}

	return lookup, file.Name.Name, nil
}

type extractor struct {
	fset   *token.FileSet
	lookup *schema.Lookup
	dir    string
}

// file walks one parsed schema file. features is the predicate folded
// from the include chain that led here; declarations in this file
// start from it.
func (ex *extractor) file(f *ast.File, path string, features schema.Features) error {
	declDocs := make(map[*ast.CommentGroup]bool)
	for _, decl := range f.Decls {
		if gd, ok := decl.(*ast.GenDecl); ok && gd.Doc != nil {
			declDocs[gd.Doc] = true
		}
	}

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := ts.Doc
			if doc == nil {
				doc = gd.Doc
			}
			if err := ex.typeDecl(ts, doc, path, features); err != nil {
				return err
			}
		}
	}

	// Includes live in free-standing comment groups, typically next to
	// the package clause. Doc comments already consumed above are not
	// rescanned so that a record cannot double as an include site.
	for _, cg := range f.Comments {
		if declDocs[cg] {
			continue
		}
		for _, d := range directives(cg) {
			if d.Name != "include" {
				continue
			}
			if err := ex.include(d, path, features); err != nil {
				return err
			}
		}
	}

	return nil
}

func (ex *extractor) include(d directive, from string, features schema.Features) error {
	if common.IsEmpty(d.Args) {
		return fmt.Errorf("%s: include directive needs a file name", from)
	}

	name := d.Args[0]
	if ignoredIncludes[name] {
		return nil
	}

	folded := features
	for _, feat := range d.Args[1:] {
		folded = folded.With(feat)
	}

	path := filepath.Join(ex.dir, name+".go")

	file, err := parser.ParseFile(ex.fset, path, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse included %s: %w", path, err)
	}

	return ex.file(file, path, folded)
}

func (ex *extractor) typeDecl(ts *ast.TypeSpec, doc *ast.CommentGroup, path string, features schema.Features) error {
	ds := directives(doc)
	if len(ds) == 0 {
		return nil
	}

	extended := false
	if _, ok := find(ds, "extended"); ok {
		extended = true
		features = features.With("full")
	}
	if feat, ok := find(ds, "feature"); ok {
		for _, f := range feat.Args {
			features = features.With(f)
		}
	}

	name := ts.Name.Name

	switch {
	case hasForm(ds, "node"):
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return fmt.Errorf("%s: %s is marked astgen:node but is not a struct", path, name)
		}
		ex.lookup.Insert(&schema.Decl{
			Name:         name,
			Kind:         schema.KindRecord,
			Fields:       recordFields(st),
			Features:     features,
			ExtendedOnly: extended,
		})

	case hasForm(ds, "union"), hasForm(ds, "sum"):
		it, ok := ts.Type.(*ast.InterfaceType)
		if !ok {
			return fmt.Errorf("%s: %s is marked astgen:%s but is not an interface", path, name, formName(ds))
		}
		sum := hasForm(ds, "sum")
		variants, err := ex.unionVariants(it, name, sum, path, features)
		if err != nil {
			return err
		}
		ex.lookup.Insert(&schema.Decl{
			Name:         name,
			Kind:         schema.KindUnion,
			Variants:     variants,
			Features:     features,
			ExtendedOnly: extended,
			Sum:          sum,
		})
	}

	return nil
}

func hasForm(ds []directive, form string) bool {
	_, ok := find(ds, form)
	return ok
}

func formName(ds []directive) string {
	if hasForm(ds, "union") {
		return "union"
	}
	return "sum"
}

// recordFields flattens a struct type into schema fields. Embedded
// fields become positional members with empty names.
func recordFields(st *ast.StructType) []schema.Field {
	var fields []schema.Field
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			fields = append(fields, schema.Field{Type: f.Type})
			continue
		}
		for _, n := range f.Names {
			fields = append(fields, schema.Field{Name: n.Name, Type: f.Type})
		}
	}
	return fields
}

// unionVariants turns interface methods into union variants. In the
// sum form a variant carrying a single anonymous struct payload mints
// a standalone record named <union><variant> and the payload is
// rewritten to reference it.
func (ex *extractor) unionVariants(it *ast.InterfaceType, union string, sum bool, path string, features schema.Features) ([]schema.Variant, error) {
	var variants []schema.Variant
	for _, m := range it.Methods.List {
		if len(m.Names) == 0 {
			return nil, fmt.Errorf("%s: %s embeds a type; variants must be methods", path, union)
		}
		ft, ok := m.Type.(*ast.FuncType)
		if !ok {
			return nil, fmt.Errorf("%s: %s.%s is not a method", path, union, m.Names[0].Name)
		}
		vname := m.Names[0].Name
		if ft.Results != nil && len(ft.Results.List) > 0 {
			return nil, fmt.Errorf("%s: variant %s.%s must not declare results", path, union, vname)
		}

		var (
			payloads    []ast.Expr
			namedFields bool
		)
		if ft.Params != nil {
			for _, p := range ft.Params.List {
				if len(p.Names) > 0 {
					namedFields = true
				}
				n := max(len(p.Names), 1)
				for i := 0; i < n; i++ {
					payloads = append(payloads, p.Type)
				}
			}
		}

		if sum {
			if !common.IsSingle(payloads) {
				return nil, fmt.Errorf("%s: sum variant %s.%s must carry exactly one payload", path, union, vname)
			}
			if st, inline := payloads[0].(*ast.StructType); inline {
				vfeatures := features
				vextended := false
				vds := directives(m.Doc)
				if _, ok := find(vds, "extended"); ok {
					vextended = true
					vfeatures = vfeatures.With("full")
				}
				if feat, ok := find(vds, "feature"); ok {
					for _, f := range feat.Args {
						vfeatures = vfeatures.With(f)
					}
				}
				record := union + vname
				ex.lookup.Insert(&schema.Decl{
					Name:         record,
					Kind:         schema.KindRecord,
					Fields:       recordFields(st),
					Features:     vfeatures,
					ExtendedOnly: vextended,
				})
				payloads[0] = ast.NewIdent(record)
				namedFields = false
			}
		} else {
			if _, inline := payloadStruct(payloads); inline {
				return nil, fmt.Errorf("%s: %s.%s inlines a struct; only the sum form may do that", path, union, vname)
			}
		}

		variants = append(variants, schema.Variant{
			Name:        vname,
			Payloads:    payloads,
			NamedFields: namedFields,
		})
	}
	return variants, nil
}

func payloadStruct(payloads []ast.Expr) (*ast.StructType, bool) {
	for _, p := range payloads {
		if st, ok := p.(*ast.StructType); ok {
			return st, true
		}
	}
	return nil, false
}
