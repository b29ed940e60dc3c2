package syntax

import (
	"kaleido/ast"
	"kaleido/report"
)

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	p.Tok()
	return p.parseExpr()
}

// ParseDefinition parses a function definition.  The parser must be positioned
// on the `def` keyword.
func (p *Parser) ParseDefinition() (*ast.Function, error) {
	p.Tok()
	return p.parseDefinition()
}

// ParseExtern parses an external declaration.  The parser must be positioned
// on the `extern` keyword.
func (p *Parser) ParseExtern() (*ast.Prototype, error) {
	p.Tok()
	return p.parseExtern()
}

// ParseTopLevelExpression parses an expression and wraps it in an anonymous
// function taking no arguments.
func (p *Parser) ParseTopLevelExpression() (*ast.Function, error) {
	p.Tok()
	return p.parseTopLevelExpr()
}

// ParseTopLevel parses the top level construct beginning at the current token:
// a definition, an external declaration or a top level expression.  It must
// not be called at the end of input or on a `;` token: those are handled by
// the caller.
func (p *Parser) ParseTopLevel() (ast.Def, error) {
	// a failed parse must yield a nil interface, not a typed nil
	switch p.Tok().Kind {
	case TOK_DEF:
		fn, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}

		return fn, nil
	case TOK_EXTERN:
		proto, err := p.parseExtern()
		if err != nil {
			return nil, err
		}

		return proto, nil
	default:
		fn, err := p.parseTopLevelExpr()
		if err != nil {
			return nil, err
		}

		return fn, nil
	}
}

// ParseAll parses top level constructs until the end of input.  Top level
// semicolons are skipped.  After each error one token is skipped before
// parsing resumes so that the parser always makes progress.  All successfully
// parsed constructs are returned along with the errors encountered.
func (p *Parser) ParseAll() ([]ast.Def, []error) {
	var defs []ast.Def
	var errs []error

	for {
		switch {
		case p.Tok().Kind == TOK_EOF:
			return defs, errs
		case p.gotChar(';'):
			p.next()
		default:
			if def, err := p.ParseTopLevel(); err == nil {
				defs = append(defs, def)
			} else {
				errs = append(errs, err)
				p.Next()
			}
		}
	}
}

// -----------------------------------------------------------------------------

// definition = 'def' prototype expr
func (p *Parser) parseDefinition() (*ast.Function, error) {
	defTok := p.tok
	p.next()

	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		ASTBase: ast.NewASTBaseOver(defTok.Span, body.Span()),
		Proto:   proto,
		Body:    body,
	}, nil
}

// extern = 'extern' prototype
func (p *Parser) parseExtern() (*ast.Prototype, error) {
	p.next()
	return p.parsePrototype()
}

// top_level_expr = expr
func (p *Parser) parseTopLevelExpr() (*ast.Function, error) {
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		ASTBase: ast.NewASTBaseOn(body.Span()),
		Proto: &ast.Prototype{
			ASTBase: ast.NewASTBaseOn(body.Span()),
			Params:  []string{},
		},
		Body: body,
	}, nil
}

// prototype = IDENTIFIER '(' {IDENTIFIER} ')'
func (p *Parser) parsePrototype() (*ast.Prototype, error) {
	if !p.got(TOK_IDENT) {
		return nil, p.reject("expected function name in prototype")
	}

	nameTok := p.tok
	p.next()

	if !p.gotChar('(') {
		return nil, p.reject("expected `(` in prototype")
	}

	params := []string{}
	for p.next(); p.got(TOK_IDENT); p.next() {
		params = append(params, p.tok.Value)
	}

	if !p.gotChar(')') {
		return nil, p.reject("expected `)` in prototype")
	}

	endSpan := p.tok.Span
	p.next()

	return &ast.Prototype{
		ASTBase: ast.NewASTBaseOn(report.NewSpanOver(nameTok.Span, endSpan)),
		Name:    nameTok.Value,
		Params:  params,
	}, nil
}
