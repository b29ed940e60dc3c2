package syntax

import (
	"fmt"
	"kaleido/report"
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token: the text of an identifier or keyword, the
	// raw text of a number, or the single character of a TOK_CHAR token.  It
	// is empty for TOK_EOF.
	Value string

	// The parsed value of a TOK_NUMBER token.
	Num float64

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_EOF = iota

	TOK_DEF
	TOK_EXTERN

	TOK_IDENT
	TOK_NUMBER

	// TOK_CHAR is any other single character: punctuation and operators.
	TOK_CHAR
)

// Char returns the character of a TOK_CHAR token.  It returns -1 for all other
// kinds of tokens.
func (t *Token) Char() rune {
	if t.Kind != TOK_CHAR {
		return -1
	}

	for _, c := range t.Value {
		return c
	}

	return -1
}

// Is returns whether the token is the TOK_CHAR token for c.
func (t *Token) Is(c rune) bool {
	return t.Kind == TOK_CHAR && t.Char() == c
}

// String returns a description of the token suitable for diagnostics.
func (t *Token) String() string {
	switch t.Kind {
	case TOK_EOF:
		return "end of input"
	case TOK_DEF, TOK_EXTERN:
		return fmt.Sprintf("keyword `%s`", t.Value)
	case TOK_IDENT:
		return fmt.Sprintf("identifier `%s`", t.Value)
	case TOK_NUMBER:
		return fmt.Sprintf("number `%s`", t.Value)
	default:
		return fmt.Sprintf("`%s`", t.Value)
	}
}
