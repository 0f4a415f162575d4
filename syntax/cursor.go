package syntax

// Cursor steps through a token stream.
type Cursor struct {
	tokens []Token
	i      int
}

// NewCursor returns a cursor at the start of tokens.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.i >= len(c.tokens)
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.Done() {
		return Token{}, false
	}
	return c.tokens[c.i], true
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (Token, bool) {
	t, ok := c.Peek()
	if ok {
		c.i++
	}
	return t, ok
}

// Span locates the cursor: the next token's span, or the last
// consumed token's when the stream is exhausted.
func (c *Cursor) Span() Span {
	if t, ok := c.Peek(); ok {
		return t.Span
	}
	if len(c.tokens) > 0 {
		return c.tokens[len(c.tokens)-1].Span
	}
	return Span{}
}
