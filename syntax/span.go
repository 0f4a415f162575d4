package syntax

import "fmt"

// Pos is a location in the scanned input. Line and Column are
// 1-based; Offset counts runes from the start.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// String renders the position as line:column.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open source region.
type Span struct {
	Start Pos
	End   Pos
}

// IsZero reports whether the span carries no location.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Join returns the smallest span covering both s and o. Joining with
// a zero span returns the other operand unchanged.
func (s Span) Join(o Span) Span {
	if s.IsZero() {
		return o
	}
	if o.IsZero() {
		return s
	}
	out := s
	if o.Start.Offset < out.Start.Offset {
		out.Start = o.Start
	}
	if o.End.Offset > out.End.Offset {
		out.End = o.End
	}
	return out
}

// String renders the span as start-end.
func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}
