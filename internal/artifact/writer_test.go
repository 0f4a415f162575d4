package artifact

import (
	"go/parser"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walker-generator/internal/emit"
	"walker-generator/internal/schema"
)

func renderState(t *testing.T) *emit.State {
	t.Helper()

	spanType, err := parser.ParseExpr("Span")
	require.NoError(t, err)

	lookup := schema.NewLookup()
	lookup.Insert(&schema.Decl{Name: "Ident", Kind: schema.KindRecord})
	lookup.Insert(&schema.Decl{Name: "Span", Kind: schema.KindRecord})
	lookup.Insert(&schema.Decl{Name: "Lit", Kind: schema.KindRecord, Fields: []schema.Field{
		{Name: "Span", Type: spanType},
	}})

	st := emit.NewState("ast")
	for _, name := range lookup.Names() {
		decl, _ := lookup.Get(name)
		require.NoError(t, emit.Generate(st, lookup, decl))
	}
	return st
}

func TestRender(t *testing.T) {
	docs, err := Render(renderState(t), DefaultNames())
	require.NoError(t, err)
	require.Len(t, docs, 5)

	byName := map[string]string{}
	for _, d := range docs {
		byName[d.Name] = string(d.Content)
	}

	for name, content := range byName {
		assert.Contains(t, content, "// Code generated by walker-generator. DO NOT EDIT.", name)
		assert.Contains(t, content, "package ast", name)
	}

	assert.Contains(t, byName["visit.go"], "type Visitor struct {")
	assert.Contains(t, byName["transform.go"], "func liftSlice[T any]")
	assert.Contains(t, byName["transform.go"], "func liftDelimited[T, S any]")
	assert.Contains(t, byName["transform.go"], `panic("ast: " + node + " requires the full feature set")`)
	assert.Contains(t, byName["span.go"], "type spanAggregator struct {")
	assert.Contains(t, byName["span.go"], "func SpanLit(node *Lit) (Span, bool) {")
}

func TestRenderDeterministic(t *testing.T) {
	first, err := Render(renderState(t), DefaultNames())
	require.NoError(t, err)
	second, err := Render(renderState(t), DefaultNames())
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, string(first[i].Content), string(second[i].Content))
	}
}

func TestWriteFiles(t *testing.T) {
	docs, err := Render(renderState(t), DefaultNames())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteFiles(dir, docs))

	for _, doc := range docs {
		content, err := os.ReadFile(filepath.Join(dir, doc.Name))
		require.NoError(t, err)
		assert.Equal(t, string(doc.Content), string(content))
	}
}
