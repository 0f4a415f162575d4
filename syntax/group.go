package syntax

// Group is a parenthesized token sequence. Span covers both
// delimiters.
type Group struct {
	Tokens []Token
	Span   Span
}

// Len counts the comma-separated elements inside the group. Nested
// groups count as part of their element.
func (g Group) Len() int {
	if len(g.Tokens) == 0 {
		return 0
	}
	n := 1
	depth := 0
	for _, t := range g.Tokens {
		if t.Kind != TokenPunct {
			continue
		}
		switch t.Text {
		case "(":
			depth++
		case ")":
			depth--
		case ",":
			if depth == 0 {
				n++
			}
		}
	}
	return n
}

// ParseGroup consumes one parenthesized group from the cursor. It
// fails with a ParseError when the next token is not an opening
// parenthesis or the group never closes.
func ParseGroup(c *Cursor) (Group, *ParseError) {
	open, ok := c.Next()
	if !ok || open.Kind != TokenPunct || open.Text != "(" {
		return Group{}, &ParseError{}
	}

	var (
		tokens []Token
		depth  = 0
	)
	for {
		t, ok := c.Next()
		if !ok {
			return Group{}, Errorf("unclosed group")
		}
		if t.Kind == TokenPunct {
			switch t.Text {
			case "(":
				depth++
			case ")":
				if depth == 0 {
					return Group{Tokens: tokens, Span: open.Span.Join(t.Span)}, nil
				}
				depth--
			}
		}
		tokens = append(tokens, t)
	}
}
