package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"walker-generator/internal/artifact"
	"walker-generator/internal/config"
)

func exampleConfig() config.Config {
	cfg := config.Default()
	cfg.Root = filepath.Join("..", "..", "examples", "ast", "schema", "ast.go")
	cfg.Package = "ast"
	return cfg
}

func TestRunOverExampleSchema(t *testing.T) {
	docs, err := run(zap.NewNop(), exampleConfig(), false)
	require.NoError(t, err)
	require.Len(t, docs, 5)

	byName := map[string]string{}
	for _, d := range docs {
		byName[d.Name] = string(d.Content)
	}

	assert.Contains(t, byName["nodes.go"], "type Expr interface {")
	assert.Contains(t, byName["nodes.go"], "type ExprBinary struct {")
	assert.Contains(t, byName["visit.go"], "func VisitBlock(v *Visitor, node *Block) {")
	assert.Contains(t, byName["mutate.go"], "func MutateExprCall(m *Mutator, node *ExprCall) {")
	assert.Contains(t, byName["transform.go"], "full(\"ItemStatic\")")
	assert.Contains(t, byName["span.go"], "func SpanExprBinary(node *ExprBinary) (Span, bool) {")
}

func TestRunDeterministic(t *testing.T) {
	first, err := run(zap.NewNop(), exampleConfig(), false)
	require.NoError(t, err)
	second, err := run(zap.NewNop(), exampleConfig(), false)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, string(first[i].Content), string(second[i].Content))
	}
}

func TestRunWritesArtifacts(t *testing.T) {
	cfg := exampleConfig()
	cfg.Out = t.TempDir()

	docs, err := run(zap.NewNop(), cfg, false)
	require.NoError(t, err)
	require.NoError(t, artifact.WriteFiles(cfg.Out, docs))
}
