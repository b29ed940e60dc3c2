package report

import "fmt"

// TextSpan represents a range or "span" of source text.  It is used to specify
// erroneous or otherwise significant source text in a Kaleidoscope program.
// Text spans are inclusive on the starting side and exclusive on the ending
// side: the ending column is the column just past the last character.  The
// line and column numbers are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.  Either span may be nil in which case the other is used.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	if start == nil {
		return end
	} else if end == nil {
		return start
	}

	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

func (ts *TextSpan) String() string {
	if ts == nil {
		return "?"
	}

	return fmt.Sprintf("%d:%d", ts.StartLine+1, ts.StartCol+1)
}

// -----------------------------------------------------------------------------

// LocalCompileError is a compilation error that occurs in a context in which
// the file is known by the error handler and thus doesn't need to be passed
// along with the error.
type LocalCompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil.
	Span *TextSpan
}

func (lce *LocalCompileError) Error() string {
	if lce.Span == nil {
		return lce.Message
	}

	return lce.Span.String() + ": " + lce.Message
}

// Raise creates a new local compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}
