package diagnostic

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walker-generator/syntax"
)

func span(startOffset, endOffset int) syntax.Span {
	return syntax.Span{
		Start: syntax.Pos{Offset: startOffset, Line: 1, Column: startOffset + 1},
		End:   syntax.Pos{Offset: endOffset, Line: 1, Column: endOffset + 1},
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestFromParseError(t *testing.T) {
	d := FromParseError(&syntax.ParseError{}, span(0, 3))
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "failed to parse", d.Message)
	assert.Equal(t, span(0, 3), d.Span)

	d = FromParseError(syntax.Errorf("unclosed group"), span(0, 3))
	assert.Equal(t, "unclosed group", d.Message)
}

func TestAccumulation(t *testing.T) {
	var ds Diagnostics
	assert.False(t, ds.HasErrors())
	assert.NoError(t, ds.Error())

	ds.AddWarning("odd shape", span(0, 1))
	assert.False(t, ds.HasErrors())

	ds.AddError("boom", span(1, 2))
	ds.AddError("bang", span(2, 3))
	require.True(t, ds.HasErrors())
	assert.EqualError(t, ds.Error(), "boom; bang")

	var other Diagnostics
	other.AddInfo("fyi", syntax.Span{})
	ds.Merge(other)
	assert.Len(t, ds.Infos, 1)
}

func TestRender(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	d := New(SeverityError, "expected 2 element(s), got 3", span(9, 19)).
		WithNote("because of this", span(0, 6))

	var b strings.Builder
	Render(&b, d)

	out := b.String()
	assert.Contains(t, out, "error: expected 2 element(s), got 3 at 1:10-1:20")
	assert.Contains(t, out, "  note: because of this at 1:1-1:7")
}
