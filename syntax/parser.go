package syntax

import (
	"io"
	"kaleido/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a Kaleidoscope source.  It is a recursive descent
// parser with a single token of lookahead: all parsing functions assume that
// they begin with the parser positioned on the first token of their production
// and consume all tokens of their production, leaving the parser on the next
// token.  Binary expressions are parsed by precedence climbing against the
// parser's precedence table.  Parsers are created once per session and carry
// all of their state (lexer position, lookahead, precedence table) with them.
//
// Any parsing failure emits exactly one diagnostic through the parser's
// reporter and returns a nil node with the reported error.  The parser never
// resynchronizes on its own: callers recover by moving forward at least one
// token (see Next) before trying again.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source.
	lexer *Lexer

	// precs is the binary operator precedence table.
	precs *PrecedenceTable

	// rep is the reporter all syntax errors are reported to.
	rep *report.Reporter

	// tok is the current token the parser is positioned on.  It is nil until
	// the first token is read: reading is deferred so that creating a parser
	// over an interactive source does not block.
	tok *Token
}

// NewParser creates a new parser reading source text from r.  If precs is nil,
// the standard precedence table is used.
func NewParser(r io.Reader, precs *PrecedenceTable, rep *report.Reporter) *Parser {
	if precs == nil {
		precs = NewPrecedenceTable()
	}

	return &Parser{
		lexer: NewLexer(r),
		precs: precs,
		rep:   rep,
	}
}

// Precedences returns the parser's precedence table.  It may be modified
// between top level parses.
func (p *Parser) Precedences() *PrecedenceTable {
	return p.precs
}

// Tok returns the token the parser is currently positioned on, reading the
// first token if necessary.
func (p *Parser) Tok() *Token {
	if p.tok == nil {
		p.next()
	}

	return p.tok
}

// Next moves the parser forward one token and returns the new current token.
func (p *Parser) Next() *Token {
	p.Tok()
	p.next()
	return p.tok
}

// Err returns the first read error of the underlying source, if any.
func (p *Parser) Err() error {
	return p.lexer.Err()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	p.tok = p.lexer.NextToken()
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotChar returns true if the parser is on the single character token c.
func (p *Parser) gotChar(c rune) bool {
	return p.tok.Is(c)
}

// tokPrecedence returns the precedence of the current token if it is a binary
// operator.  The returned boolean is false for all other tokens.
func (p *Parser) tokPrecedence() (int, bool) {
	if p.tok.Kind != TOK_CHAR {
		return 0, false
	}

	return p.precs.Of(p.tok.Char())
}

// -----------------------------------------------------------------------------

// reject reports an error on the current token and returns it.
func (p *Parser) reject(msg string, a ...interface{}) error {
	return p.errorOn(p.tok, msg, a...)
}

// errorOn reports an error on a given token and returns it.  The function
// takes a message and arguments to format into it.
func (p *Parser) errorOn(tok *Token, msg string, a ...interface{}) error {
	cerr := report.Raise(tok.Span, msg, a...)

	if p.rep != nil {
		p.rep.ReportCompileError(cerr)
	}

	return cerr
}
