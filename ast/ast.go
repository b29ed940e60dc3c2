// Package ast defines the abstract syntax tree produced by the parser.  The
// node set is closed: expressions are one of Number, Variable, BinaryOp or
// Call and top-level definitions are one of Prototype or Function.  Consumers
// select on the concrete node type with a type switch.
package ast

import "kaleido/report"

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Span returns the text span of the AST node.
	Span() *report.TextSpan

	// String returns the S-expression form of the node.
	String() string
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}
