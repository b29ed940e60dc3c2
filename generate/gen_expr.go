package generate

import (
	"kaleido/ast"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr generates an expression into the current block and returns its
// value.  Every Kaleidoscope value is a double.
func (g *Generator) genExpr(expr ast.Expr) (value.Value, error) {
	switch v := expr.(type) {
	case *ast.Number:
		return constant.NewFloat(types.Double, v.Value), nil
	case *ast.Variable:
		if val, ok := g.namedValues[v.Name]; ok {
			return val, nil
		}

		return nil, g.errorOn(v.Span(), "unknown variable name `%s`", v.Name)
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	case *ast.Call:
		return g.genCall(v)
	}

	return nil, g.errorOn(expr.Span(), "unsupported expression: %s", expr)
}

// genBinaryOp generates a binary operator application.
func (g *Generator) genBinaryOp(bop *ast.BinaryOp) (value.Value, error) {
	lhs, err := g.genExpr(bop.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := g.genExpr(bop.Rhs)
	if err != nil {
		return nil, err
	}

	switch bop.Op {
	case '+':
		inst := g.block.NewFAdd(lhs, rhs)
		inst.SetName(g.localName("addtmp"))
		return inst, nil
	case '-':
		inst := g.block.NewFSub(lhs, rhs)
		inst.SetName(g.localName("subtmp"))
		return inst, nil
	case '*':
		inst := g.block.NewFMul(lhs, rhs)
		inst.SetName(g.localName("multmp"))
		return inst, nil
	case '/':
		inst := g.block.NewFDiv(lhs, rhs)
		inst.SetName(g.localName("divtmp"))
		return inst, nil
	case '<':
		return g.genComparison(enum.FPredULT, lhs, rhs), nil
	case '>':
		return g.genComparison(enum.FPredUGT, lhs, rhs), nil
	}

	return nil, g.errorOn(bop.Span(), "invalid binary operator `%c`", bop.Op)
}

// genComparison generates a floating point comparison.  The boolean result is
// converted back to a double: 0.0 or 1.0.
func (g *Generator) genComparison(pred enum.FPred, lhs, rhs value.Value) value.Value {
	cmp := g.block.NewFCmp(pred, lhs, rhs)
	cmp.SetName(g.localName("cmptmp"))

	conv := g.block.NewUIToFP(cmp, types.Double)
	conv.SetName(g.localName("booltmp"))
	return conv
}

// genCall generates a function call.  The callee must already be declared in
// the module and take as many arguments as are passed.
func (g *Generator) genCall(call *ast.Call) (value.Value, error) {
	callee, ok := g.lookupFunc(call.Callee)
	if !ok {
		return nil, g.errorOn(call.Span(), "unknown function referenced: `%s`", call.Callee)
	}

	if len(callee.Params) != len(call.Args) {
		return nil, g.errorOn(
			call.Span(),
			"incorrect # arguments passed to `%s`: expected %d, got %d",
			call.Callee,
			len(callee.Params),
			len(call.Args),
		)
	}

	args := make([]value.Value, len(call.Args))
	for i, arg := range call.Args {
		argVal, err := g.genExpr(arg)
		if err != nil {
			return nil, err
		}

		args[i] = argVal
	}

	inst := g.block.NewCall(callee, args...)
	inst.SetName(g.localName("calltmp"))
	return inst, nil
}
