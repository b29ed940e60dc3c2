package syntax

import (
	"kaleido/ast"
	"kaleido/report"
)

// expr = primary binop_rhs
func (p *Parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	return p.parseBinOpRHS(0, lhs)
}

// binop_rhs = {BINOP primary}
//
// parseBinOpRHS performs precedence climbing: it consumes operators binding at
// least as tightly as minPrec.  An operator only passes its right operand on
// to a following operator of strictly greater precedence so operators of equal
// precedence associate to the left.
func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expr) (ast.Expr, error) {
	for {
		prec, ok := p.tokPrecedence()
		if !ok || prec < minPrec {
			return lhs, nil
		}

		op := p.tok.Char()
		p.next()

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		// if the operator after rhs binds more tightly, rhs becomes its lhs
		if nextPrec, ok := p.tokPrecedence(); ok && prec < nextPrec {
			rhs, err = p.parseBinOpRHS(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryOp{
			ASTBase: ast.NewASTBaseOver(lhs.Span(), rhs.Span()),
			Op:      op,
			Lhs:     lhs,
			Rhs:     rhs,
		}
	}
}

// -----------------------------------------------------------------------------

// primary = identifier_expr | number_expr | paren_expr
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch {
	case p.got(TOK_IDENT):
		return p.parseIdentifierExpr()
	case p.got(TOK_NUMBER):
		return p.parseNumberExpr()
	case p.gotChar('('):
		return p.parseParenExpr()
	}

	return nil, p.reject("unknown token when expecting an expression: %s", p.tok)
}

// number_expr = NUMBER
func (p *Parser) parseNumberExpr() (ast.Expr, error) {
	num := &ast.Number{
		ASTBase: ast.NewASTBaseOn(p.tok.Span),
		Value:   p.tok.Num,
	}

	p.next()
	return num, nil
}

// paren_expr = '(' expr ')'
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	p.next()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.gotChar(')') {
		return nil, p.reject("expected `)`")
	}

	p.next()
	return expr, nil
}

// identifier_expr = IDENTIFIER
//   | IDENTIFIER '(' [expr {',' expr}] ')'
func (p *Parser) parseIdentifierExpr() (ast.Expr, error) {
	idTok := p.tok
	p.next()

	// simple variable reference
	if !p.gotChar('(') {
		return &ast.Variable{
			ASTBase: ast.NewASTBaseOn(idTok.Span),
			Name:    idTok.Value,
		}, nil
	}

	// function call
	p.next()

	var args []ast.Expr
	if !p.gotChar(')') {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if p.gotChar(')') {
				break
			}

			if !p.gotChar(',') {
				return nil, p.reject("expected `)` or `,` in argument list")
			}

			p.next()
		}
	}

	endSpan := p.tok.Span
	p.next()

	return &ast.Call{
		ASTBase: ast.NewASTBaseOn(report.NewSpanOver(idTok.Span, endSpan)),
		Callee:  idTok.Value,
		Args:    args,
	}, nil
}
