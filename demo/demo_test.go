package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walker-generator/internal/diagnostic"
)

func TestEvalMatchingArity(t *testing.T) {
	out, d := Eval("(a, b) = (c, d)")
	require.Nil(t, d)
	assert.Equal(t, "2 element(s)", out)
}

func TestEvalArityMismatch(t *testing.T) {
	_, d := Eval("(a, b) = (x, y, z)")
	require.NotNil(t, d)

	assert.Equal(t, diagnostic.SeverityError, d.Severity)
	assert.Equal(t, "expected 2 element(s), got 3", d.Message)

	// Anchored at the second group.
	assert.Equal(t, 9, d.Span.Start.Offset)
	assert.Equal(t, 18, d.Span.End.Offset)

	require.Len(t, d.Notes, 1)
	assert.Equal(t, "because of this", d.Notes[0].Message)
	// The note points back at the first group.
	assert.Equal(t, 0, d.Notes[0].Span.Start.Offset)
	assert.Equal(t, 6, d.Notes[0].Span.End.Offset)
}

func TestEvalParseFailure(t *testing.T) {
	for _, input := range []string{"", "a = (b)", "(a) (b)", "(a) = b"} {
		_, d := Eval(input)
		require.NotNil(t, d, input)
		assert.Equal(t, "failed to parse", d.Message, input)
	}
}

func TestEvalRejectsTrailingInput(t *testing.T) {
	_, d := Eval("(a) = (b) junk")
	require.NotNil(t, d)

	assert.Equal(t, diagnostic.SeverityError, d.Severity)
	assert.Equal(t, `unexpected token "junk"`, d.Message)
	assert.Equal(t, 10, d.Span.Start.Offset)
	assert.Equal(t, 14, d.Span.End.Offset)
}

func TestEvalUnclosedGroup(t *testing.T) {
	_, d := Eval("(a, b")
	require.NotNil(t, d)
	assert.Equal(t, "unclosed group", d.Message)
}
