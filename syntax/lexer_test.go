package syntax

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

// lexAll lexes src until the end of input and returns the tokens including the
// terminating EOF token.
func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	l := NewLexer(strings.NewReader(src))

	var toks []*Token
	for i := 0; i < 1000; i++ {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}

	t.Fatal("lexer did not reach end of input")
	return nil
}

func TestLexTokens(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []int
		vals  []string
	}{
		{"empty", "", []int{TOK_EOF}, []string{""}},
		{"whitespace", " \t\r\n\v\f ", []int{TOK_EOF}, []string{""}},
		{"def", "def", []int{TOK_DEF, TOK_EOF}, []string{"def", ""}},
		{"extern", "extern", []int{TOK_EXTERN, TOK_EOF}, []string{"extern", ""}},
		{"keyword_prefix", "define", []int{TOK_IDENT, TOK_EOF}, []string{"define", ""}},
		{"ident_digits", "x1y2", []int{TOK_IDENT, TOK_EOF}, []string{"x1y2", ""}},
		{"ident_underscore", "a_b", []int{TOK_IDENT, TOK_CHAR, TOK_IDENT, TOK_EOF}, []string{"a", "_", "b", ""}},
		{"number", "42", []int{TOK_NUMBER, TOK_EOF}, []string{"42", ""}},
		{"number_then_ident", "4x", []int{TOK_NUMBER, TOK_IDENT, TOK_EOF}, []string{"4", "x", ""}},
		{"operators", "+-*<", []int{TOK_CHAR, TOK_CHAR, TOK_CHAR, TOK_CHAR, TOK_EOF}, []string{"+", "-", "*", "<", ""}},
		{
			"definition",
			"def foo(a b) a+b",
			[]int{TOK_DEF, TOK_IDENT, TOK_CHAR, TOK_IDENT, TOK_IDENT, TOK_CHAR, TOK_IDENT, TOK_CHAR, TOK_IDENT, TOK_EOF},
			[]string{"def", "foo", "(", "a", "b", ")", "a", "+", "b", ""},
		},
		{"comment", "# nothing here\nx", []int{TOK_IDENT, TOK_EOF}, []string{"x", ""}},
		{"comment_cr", "# nothing here\rx", []int{TOK_IDENT, TOK_EOF}, []string{"x", ""}},
		{"comment_at_eof", "x # trailing", []int{TOK_IDENT, TOK_EOF}, []string{"x", ""}},
		{"only_comment", "# just a comment", []int{TOK_EOF}, []string{""}},
		{"non_ascii", "é", []int{TOK_CHAR, TOK_EOF}, []string{"é", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d", len(toks), len(tt.kinds))
			}

			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: kind = %d, want %d", i, tok.Kind, tt.kinds[i])
				}
				if tok.Value != tt.vals[i] {
					t.Errorf("token %d: value = %q, want %q", i, tok.Value, tt.vals[i])
				}
			}
		})
	}
}

func TestLexNumberValues(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"007", 7},
		{"3.25", 3.25},
		{".5", 0.5},
		{"1.", 1},
		{"1.2.3", 1.2},
		{"1..2", 1},
		{".", 0},
		{"..5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if toks[0].Kind != TOK_NUMBER {
				t.Fatalf("kind = %d, want TOK_NUMBER", toks[0].Kind)
			}
			if toks[0].Value != tt.src {
				t.Errorf("value = %q, want the whole run %q", toks[0].Value, tt.src)
			}
			if toks[0].Num != tt.want {
				t.Errorf("num = %v, want %v", toks[0].Num, tt.want)
			}
		})
	}
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "ab  cd\n  12")

	wants := []struct{ startLine, startCol, endLine, endCol int }{
		{0, 0, 0, 2},
		{0, 4, 0, 6},
		{1, 2, 1, 4},
	}

	for i, want := range wants {
		span := toks[i].Span
		if span.StartLine != want.startLine || span.StartCol != want.startCol ||
			span.EndLine != want.endLine || span.EndCol != want.endCol {
			t.Errorf("token %d span = %+v, want %+v", i, *span, want)
		}
	}
}

func TestLexEOFIsSticky(t *testing.T) {
	l := NewLexer(strings.NewReader("x"))
	l.NextToken()

	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Kind != TOK_EOF {
			t.Fatalf("call %d: kind = %d, want TOK_EOF", i, tok.Kind)
		}
	}
}

// eofCountingReader yields its data once and then counts every read made after
// it has reported the end of input.
type eofCountingReader struct {
	data         string
	sentEOF      bool
	readsPastEOF int
}

func (r *eofCountingReader) Read(b []byte) (int, error) {
	if r.sentEOF {
		r.readsPastEOF++
		return 0, io.EOF
	}

	if r.data == "" {
		r.sentEOF = true
		return 0, io.EOF
	}

	n := copy(b, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestLexDoesNotReadPastEOF(t *testing.T) {
	r := &eofCountingReader{data: "a + b"}
	l := NewLexer(r)

	for i := 0; i < 10; i++ {
		l.NextToken()
	}

	if r.readsPastEOF != 0 {
		t.Errorf("lexer read the source %d times after the end of input", r.readsPastEOF)
	}
}

func TestLexReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	l := NewLexer(io.MultiReader(strings.NewReader("foo "), iotest.ErrReader(readErr)))

	if tok := l.NextToken(); tok.Kind != TOK_IDENT || tok.Value != "foo" {
		t.Fatalf("first token = %v, want identifier foo", tok)
	}

	if tok := l.NextToken(); tok.Kind != TOK_EOF {
		t.Fatalf("kind = %d, want TOK_EOF after a read error", tok.Kind)
	}

	if !errors.Is(l.Err(), readErr) {
		t.Errorf("Err() = %v, want %v", l.Err(), readErr)
	}
}

func TestTokenChar(t *testing.T) {
	toks := lexAll(t, "( x")
	if toks[0].Char() != '(' || !toks[0].Is('(') {
		t.Errorf("Char() = %q, want '('", toks[0].Char())
	}
	if toks[1].Char() != -1 || toks[1].Is('x') {
		t.Errorf("identifier Char() = %q, want -1", toks[1].Char())
	}
}
