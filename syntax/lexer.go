package syntax

import (
	"bufio"
	"io"
	"kaleido/report"
	"strconv"
	"strings"
)

// Lexer is responsible for tokenizing a source.  It is a cursor over a stream
// of characters: the only state it carries between calls is its position in
// that stream.  The lexer never fails on malformed input.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	// eof is set once the end of input has been read.  The underlying reader
	// is never read again after that: an interactive source would block.
	eof bool

	// err is the first read error encountered.  Read errors are treated as
	// end of input.
	err error
}

// NewLexer creates a new lexer reading from r.  Readers that are not already
// buffered are wrapped in a bufio.Reader.
func NewLexer(r io.Reader) *Lexer {
	file, ok := r.(*bufio.Reader)
	if !ok {
		file = bufio.NewReader(r)
	}

	return &Lexer{
		file:    file,
		tokBuff: &strings.Builder{},
	}
}

// Err returns the first non-EOF read error encountered by the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// NextToken retrieves the next token from the input.  If the input has ended,
// this will be an EOF token.  Once the input is exhausted every subsequent call
// returns an EOF token.
func (l *Lexer) NextToken() *Token {
	for {
		c := l.peek()

		switch {
		case c == -1:
			l.mark()
			return l.makeToken(TOK_EOF)
		case isSpace(c):
			l.skip()
		case c == '#':
			l.skipComment()
		case isLetter(c):
			return l.lexIdentOrKeyword()
		case isDecimalDigit(c) || c == '.':
			return l.lexNumber()
		default:
			l.mark()
			l.eat()
			return l.makeToken(TOK_CHAR)
		}
	}
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"def":    TOK_DEF,
	"extern": TOK_EXTERN,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.eat()

	for c := l.peek(); isLetter(c) || isDecimalDigit(c); c = l.peek() {
		l.eat()
	}

	if kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kind)
	}

	return l.makeToken(TOK_IDENT)
}

// lexNumber lexes a numeric literal: any run of digits and dots.  The run is
// not validated: its value is the longest prefix that forms a number so `1.2.3`
// has the value 1.2 and a lone `.` has the value 0.
func (l *Lexer) lexNumber() *Token {
	l.mark()
	l.eat()

	for c := l.peek(); isDecimalDigit(c) || c == '.'; c = l.peek() {
		l.eat()
	}

	tok := l.makeToken(TOK_NUMBER)
	tok.Num = numericPrefixValue(tok.Value)
	return tok
}

// numericPrefixValue returns the value of the longest prefix of text (made up
// only of digits and dots) that is a valid decimal number.  If there is no such
// prefix, zero is returned.  Out of range values are infinite.
func numericPrefixValue(text string) float64 {
	end, sawDot, sawDigit := 0, false, false

prefixLoop:
	for ; end < len(text); end++ {
		switch c := text[end]; {
		case c == '.':
			if sawDot {
				break prefixLoop
			}

			sawDot = true
		default:
			sawDigit = true
		}
	}

	if !sawDigit {
		return 0
	}

	// ParseFloat only fails here with a range error in which case the value is
	// still the correctly signed infinity.
	v, _ := strconv.ParseFloat(text[:end], 64)
	return v
}

// skipComment skips a line comment: everything from the `#` up to but not
// including the end of the line or the end of input.
func (l *Lexer) skipComment() {
	for c := l.peek(); c != -1 && c != '\n' && c != '\r'; c = l.peek() {
		l.skip()
	}
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
func (l *Lexer) eat() rune {
	c := l.skip()
	if c != -1 {
		l.tokBuff.WriteRune(c)
	}

	return c
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters the end of input, -1 is returned.
func (l *Lexer) skip() rune {
	c, ok := l.read()
	if !ok {
		return -1
	}

	l.updatePos(c)
	return c
}

// peek returns the next rune in the input without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters the end of
// input, -1 is returned.
func (l *Lexer) peek() rune {
	c, ok := l.read()
	if !ok {
		return -1
	}

	if err := l.file.UnreadRune(); err != nil {
		l.err = err
		return -1
	}

	return c
}

// read reads a single rune from the input.  It returns false at the end of
// input or after the first read error.
func (l *Lexer) read() (rune, bool) {
	if l.eof || l.err != nil {
		return 0, false
	}

	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			l.eof = true
		} else {
			l.err = err
		}

		return 0, false
	}

	return c, true
}

// updatePos updates the lexer's position based on input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isSpace returns whether c is an ASCII whitespace character.
func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isLetter returns whether c is an ASCII letter.  Identifiers are ASCII only:
// all other characters lex as single character tokens.
func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
