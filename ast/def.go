package ast

// Def represents a top level construct: an `extern` declaration (a bare
// Prototype), a `def` definition or a top level expression (both Functions).
type Def interface {
	Node

	defNode()
}

// Prototype is the name and formal parameter list of a function independent of
// its body.  The parameter order is the order in which arguments are bound.
type Prototype struct {
	ASTBase

	// Name is empty for the anonymous function wrapping a top level
	// expression.
	Name   string
	Params []string
}

// IsAnonymous returns whether this is the prototype of a top level expression.
func (p *Prototype) IsAnonymous() bool {
	return p.Name == ""
}

// Function is a prototype together with the expression forming its body.
type Function struct {
	ASTBase

	Proto *Prototype
	Body  Expr
}

func (*Prototype) defNode() {}
func (*Function) defNode() {}
