package syntax

import (
	"fmt"
	"sort"
)

// PrecedenceTable maps binary operator characters to their precedence: higher
// levels bind more tightly.  A character with no entry or with a level less
// than or equal to zero is not a binary operator.  Tables are mutable so hosts
// may register additional operators before parsing begins; each parser holds
// its own table.
type PrecedenceTable struct {
	levels map[rune]int
}

// NewPrecedenceTable creates a precedence table holding the standard binary
// operators.
func NewPrecedenceTable() *PrecedenceTable {
	return &PrecedenceTable{
		levels: map[rune]int{
			'<': 10,
			'+': 20,
			'-': 20,
			'*': 40,
		},
	}
}

// NewEmptyPrecedenceTable creates a precedence table with no operators.
func NewEmptyPrecedenceTable() *PrecedenceTable {
	return &PrecedenceTable{levels: make(map[rune]int)}
}

// Of returns the precedence of op.  The returned boolean is false if op is not
// a binary operator.
func (pt *PrecedenceTable) Of(op rune) (int, bool) {
	level, ok := pt.levels[op]
	if !ok || level <= 0 {
		return 0, false
	}

	return level, true
}

// Set sets the precedence of op.  A level less than or equal to zero disables
// the operator.  An error is returned if op could never be lexed as an operator
// in binary position.
func (pt *PrecedenceTable) Set(op rune, level int) error {
	if !isOperatorChar(op) {
		return fmt.Errorf("`%c` cannot be used as a binary operator", op)
	}

	pt.levels[op] = level
	return nil
}

// Clone returns an independent copy of the table.
func (pt *PrecedenceTable) Clone() *PrecedenceTable {
	levels := make(map[rune]int, len(pt.levels))
	for op, level := range pt.levels {
		levels[op] = level
	}

	return &PrecedenceTable{levels: levels}
}

// Operators returns the characters that are currently binary operators in
// ascending order.
func (pt *PrecedenceTable) Operators() []rune {
	var ops []rune
	for op, level := range pt.levels {
		if level > 0 {
			ops = append(ops, op)
		}
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// -----------------------------------------------------------------------------

// isOperatorChar returns whether c is lexed as a single character token that
// can stand between two operands.  Letters, digits, whitespace, and the
// characters used by the grammar itself or by the lexer are excluded.
func isOperatorChar(c rune) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}

	if isLetter(c) || isDecimalDigit(c) {
		return false
	}

	switch c {
	case '(', ')', ',', '.', '#', ';':
		return false
	}

	return true
}
