package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tokens := Scan("(a, b2) = 42")

	kinds := make([]TokenKind, len(tokens))
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
		texts[i] = tok.Text
	}

	assert.Equal(t, []string{"(", "a", ",", "b2", ")", "=", "42"}, texts)
	assert.Equal(t, []TokenKind{TokenPunct, TokenIdent, TokenPunct, TokenIdent, TokenPunct, TokenPunct, TokenNumber}, kinds)
}

func TestScanPositions(t *testing.T) {
	tokens := Scan("a\n bc")
	require.Len(t, tokens, 2)

	assert.Equal(t, Pos{Offset: 0, Line: 1, Column: 1}, tokens[0].Span.Start)
	assert.Equal(t, Pos{Offset: 3, Line: 2, Column: 2}, tokens[1].Span.Start)
	assert.Equal(t, Pos{Offset: 5, Line: 2, Column: 4}, tokens[1].Span.End)
}

func TestSpanJoin(t *testing.T) {
	a := Span{Start: Pos{Offset: 2, Line: 1, Column: 3}, End: Pos{Offset: 4, Line: 1, Column: 5}}
	b := Span{Start: Pos{Offset: 8, Line: 1, Column: 9}, End: Pos{Offset: 9, Line: 1, Column: 10}}

	joined := a.Join(b)
	assert.Equal(t, a.Start, joined.Start)
	assert.Equal(t, b.End, joined.End)

	assert.Equal(t, a, a.Join(Span{}))
	assert.Equal(t, a, Span{}.Join(a))
}

func TestParseGroup(t *testing.T) {
	c := NewCursor(Scan("(a, (b, c), d)"))

	g, perr := ParseGroup(c)
	require.Nil(t, perr)
	assert.Equal(t, 3, g.Len())
	assert.True(t, c.Done())
	assert.Equal(t, Pos{Offset: 0, Line: 1, Column: 1}, g.Span.Start)
}

func TestParseGroupEmpty(t *testing.T) {
	g, perr := ParseGroup(NewCursor(Scan("()")))
	require.Nil(t, perr)
	assert.Equal(t, 0, g.Len())
}

func TestParseGroupErrors(t *testing.T) {
	_, perr := ParseGroup(NewCursor(Scan("a")))
	require.NotNil(t, perr)
	assert.Equal(t, "failed to parse", perr.Error())

	_, perr = ParseGroup(NewCursor(Scan("(a, b")))
	require.NotNil(t, perr)
	assert.Equal(t, "unclosed group", perr.Error())
}
