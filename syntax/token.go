package syntax

import (
	"unicode"
)

// TokenKind classifies scanned tokens.
type TokenKind int

const (
	TokenIdent TokenKind = iota
	TokenNumber
	TokenPunct
)

// String returns a human-readable kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenIdent:
		return "ident"
	case TokenNumber:
		return "number"
	case TokenPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Token is one scanned lexeme with its source extent.
type Token struct {
	Kind TokenKind
	Text string
	Span Span
}

// Scan tokenizes input. Identifiers and numbers group greedily;
// every other non-space rune is a single punct token.
func Scan(input string) []Token {
	var (
		tokens []Token
		pos    = Pos{Line: 1, Column: 1}
	)

	runes := []rune(input)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\n' {
			pos = Pos{Offset: pos.Offset + 1, Line: pos.Line + 1, Column: 1}
			i++
			continue
		}
		if unicode.IsSpace(r) {
			pos = advance(pos, 1)
			i++
			continue
		}

		start := pos
		switch {
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			pos = advance(pos, j-i)
			tokens = append(tokens, Token{Kind: TokenIdent, Text: string(runes[i:j]), Span: Span{Start: start, End: pos}})
			i = j
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			pos = advance(pos, j-i)
			tokens = append(tokens, Token{Kind: TokenNumber, Text: string(runes[i:j]), Span: Span{Start: start, End: pos}})
			i = j
		default:
			pos = advance(pos, 1)
			tokens = append(tokens, Token{Kind: TokenPunct, Text: string(r), Span: Span{Start: start, End: pos}})
			i++
		}
	}
	return tokens
}

func advance(p Pos, n int) Pos {
	return Pos{Offset: p.Offset + n, Line: p.Line, Column: p.Column + n}
}
