package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walker-generator/internal/schema"
)

func writeSchema(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestExtractRecord(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:node
type Lit struct {
	Value string
	Span  Span
}
`)

	lookup, pkg, err := Extract(root)
	require.NoError(t, err)
	assert.Equal(t, "ast", pkg)

	lit, ok := lookup.Get("Lit")
	require.True(t, ok)
	assert.Equal(t, schema.KindRecord, lit.Kind)
	require.Len(t, lit.Fields, 2)
	assert.Equal(t, "Value", lit.Fields[0].Name)
	assert.Equal(t, "Span", lit.Fields[1].Name)
}

func TestExtractSeedsTerminals(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", "package ast\n")

	lookup, _, err := Extract(root)
	require.NoError(t, err)

	for _, terminal := range []string{"Ident", "Span"} {
		decl, ok := lookup.Get(terminal)
		require.True(t, ok, terminal)
		assert.Equal(t, schema.KindRecord, decl.Kind)
		assert.True(t, decl.IsTerminal())
	}
}

func TestExtractUnion(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:union
type BinOp interface {
	Add()
	Sub()
	Custom(Ident, Span)
}
`)

	lookup, _, err := Extract(root)
	require.NoError(t, err)

	op, ok := lookup.Get("BinOp")
	require.True(t, ok)
	assert.Equal(t, schema.KindUnion, op.Kind)
	require.Len(t, op.Variants, 3)
	assert.True(t, op.Variants[0].IsUnit())
	assert.True(t, op.Variants[1].IsUnit())
	assert.Len(t, op.Variants[2].Payloads, 2)
	assert.False(t, op.Variants[2].NamedFields)
}

func TestExtractSumInlinesRecord(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:sum
type Expr interface {
	Binary(struct {
		Left  *Expr
		Op    BinOp
		Right *Expr
	})
	Lit(Lit)
}
`)

	lookup, _, err := Extract(root)
	require.NoError(t, err)

	expr, ok := lookup.Get("Expr")
	require.True(t, ok)
	require.Len(t, expr.Variants, 2)

	binary, ok := lookup.Get("ExprBinary")
	require.True(t, ok)
	assert.Equal(t, schema.KindRecord, binary.Kind)
	require.Len(t, binary.Fields, 3)
	assert.Equal(t, "Op", binary.Fields[1].Name)

	// The variant payload now points at the minted record.
	require.Len(t, expr.Variants[0].Payloads, 1)
}

func TestExtractIncludeFoldsFeatures(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "expr.go", `package ast

//astgen:node
type ExprCall struct {
	Func Ident
}
`)
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:include expr full
`)

	lookup, _, err := Extract(root)
	require.NoError(t, err)

	call, ok := lookup.Get("ExprCall")
	require.True(t, ok)
	assert.Equal(t, "full", call.Features.String())
}

func TestExtractCombinedFeaturePredicate(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "derive.go", `package ast

//astgen:node
//astgen:feature derive
type DeriveInput struct {
	Ident Ident
}
`)
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:include derive full
`)

	lookup, _, err := Extract(root)
	require.NoError(t, err)

	// The include's predicate conjoins with the declaration's own.
	input, ok := lookup.Get("DeriveInput")
	require.True(t, ok)
	assert.Equal(t, "full && derive", input.Features.String())
}

func TestExtractIgnoredInclude(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:include visit
//astgen:include transform
`)

	_, _, err := Extract(root)
	assert.NoError(t, err)
}

func TestExtractMissingInclude(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:include missing
`)

	_, _, err := Extract(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.go")
}

func TestExtractExtendedImpliesFull(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:node
//astgen:extended
type ItemStatic struct {
	Name Ident
}
`)

	lookup, _, err := Extract(root)
	require.NoError(t, err)

	item, ok := lookup.Get("ItemStatic")
	require.True(t, ok)
	assert.True(t, item.ExtendedOnly)
	assert.Equal(t, "full", item.Features.String())
}

func TestExtractRejectsInlineStructInUnion(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:union
type Op interface {
	Weird(struct{ X Ident })
}
`)

	_, _, err := Extract(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum form")
}

func TestExtractRejectsNonStructNode(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:node
type Bad interface{}
`)

	_, _, err := Extract(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a struct")
}

func TestExtractNamedPayloadFields(t *testing.T) {
	dir := t.TempDir()
	root := writeSchema(t, dir, "ast.go", `package ast

//astgen:union
type Op interface {
	Custom(name Ident)
}
`)

	lookup, _, err := Extract(root)
	require.NoError(t, err)

	op, ok := lookup.Get("Op")
	require.True(t, ok)
	assert.True(t, op.Variants[0].NamedFields)
}
