package ast

// Expr represents an expression.  All expression nodes implement the `Expr`
// interface and nothing else does.
type Expr interface {
	Node

	exprNode()
}

// Number is a numeric literal.  Kaleidoscope has a single value type: every
// number is a float64.
type Number struct {
	ASTBase

	Value float64
}

// Variable is a reference to a named value: in practice, one of the
// parameters of the enclosing function.
type Variable struct {
	ASTBase

	Name string
}

// BinaryOp represents a binary operator application.  Both operands are
// always non-nil.
type BinaryOp struct {
	ASTBase

	// Op is the operator character: eg. `+`.
	Op rune

	Lhs, Rhs Expr
}

// Call is a function call expression.  The callee is always referred to by
// name: functions are not values.
type Call struct {
	ASTBase

	Callee string
	Args   []Expr
}

func (*Number) exprNode() {}
func (*Variable) exprNode() {}
func (*BinaryOp) exprNode() {}
func (*Call) exprNode() {}
