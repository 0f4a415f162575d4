// Package demo exercises the syntax and diagnostic surfaces end to
// end: it parses two parenthesized groups joined by an equals sign
// and checks that their arities agree.
package demo

import (
	"fmt"

	"walker-generator/internal/diagnostic"
	"walker-generator/syntax"
)

// Eval parses input of the form `(a, b) = (c, d)` and compares the
// arities of both sides. The input must be fully consumed; anything
// after the second group is rejected. A mismatch produces an error
// diagnostic anchored at the second group with a note pointing back
// at the first.
func Eval(input string) (string, *diagnostic.Diagnostic) {
	c := syntax.NewCursor(syntax.Scan(input))

	first, perr := syntax.ParseGroup(c)
	if perr != nil {
		d := diagnostic.FromParseError(perr, c.Span())
		return "", &d
	}

	eq, ok := c.Next()
	if !ok || eq.Kind != syntax.TokenPunct || eq.Text != "=" {
		at := c.Span()
		if ok {
			at = eq.Span
		}
		d := diagnostic.FromParseError(&syntax.ParseError{}, at)
		return "", &d
	}

	second, perr := syntax.ParseGroup(c)
	if perr != nil {
		d := diagnostic.FromParseError(perr, c.Span())
		return "", &d
	}

	if trailing, ok := c.Peek(); ok {
		d := diagnostic.FromParseError(syntax.Errorf("unexpected token %q", trailing.Text), trailing.Span)
		return "", &d
	}

	if got := second.Len(); got != first.Len() {
		d := diagnostic.New(diagnostic.SeverityError,
			fmt.Sprintf("expected %d element(s), got %d", first.Len(), got),
			second.Span).
			WithNote("because of this", first.Span)
		return "", &d
	}

	return fmt.Sprintf("%d element(s)", first.Len()), nil
}
