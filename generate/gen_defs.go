package generate

import (
	"fmt"
	"kaleido/ast"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// anonPrefix is the prefix of the names given to anonymous top level functions.
const anonPrefix = "__anon_expr"

// GenPrototype declares the function described by proto in the module.  All
// parameters and the return value are doubles.  If a function of the same name
// was already declared, it is returned as long as its arity agrees.
func (g *Generator) GenPrototype(proto *ast.Prototype) (*ir.Func, error) {
	seen := make(map[string]struct{}, len(proto.Params))
	for _, param := range proto.Params {
		if _, ok := seen[param]; ok {
			return nil, g.errorOn(proto.Span(), "duplicate parameter `%s` in prototype `%s`", param, proto.Name)
		}

		seen[param] = struct{}{}
	}

	name := proto.Name
	if proto.IsAnonymous() {
		name = fmt.Sprintf("%s.%d", anonPrefix, g.anonCounter)
		g.anonCounter++
	} else if fn, ok := g.lookupFunc(name); ok {
		if len(fn.Params) != len(proto.Params) {
			return nil, g.errorOn(proto.Span(), "redefinition of function `%s` with different # args", name)
		}

		return fn, nil
	}

	params := make([]*ir.Param, len(proto.Params))
	for i, param := range proto.Params {
		params[i] = ir.NewParam(param, types.Double)
	}

	return g.mod.NewFunc(name, types.Double, params...), nil
}

// GenFunction generates a function definition.  A previous declaration of the
// function (made by an `extern`) is reused and given a body.  If the body fails
// to generate, the module is restored to the state it had before the call.
func (g *Generator) GenFunction(fnDef *ast.Function) (*ir.Func, error) {
	var fn *ir.Func
	preexisting := false
	if !fnDef.Proto.IsAnonymous() {
		fn, preexisting = g.lookupFunc(fnDef.Proto.Name)
	}

	if preexisting && len(fn.Blocks) > 0 {
		return nil, g.errorOn(fnDef.Proto.Span(), "function `%s` cannot be redefined", fnDef.Proto.Name)
	}

	fn, err := g.GenPrototype(fnDef.Proto)
	if err != nil {
		return nil, err
	}

	// the definition's parameter names replace those of the declaration
	g.namedValues = make(map[string]value.Value, len(fn.Params))
	g.localNames = make(map[string]int)
	for i, param := range fn.Params {
		param.SetName(fnDef.Proto.Params[i])
		g.namedValues[fnDef.Proto.Params[i]] = param
		g.localNames[fnDef.Proto.Params[i]] = 1
	}

	g.block = fn.NewBlock(g.localName("entry"))

	result, err := g.genExpr(fnDef.Body)
	if err != nil {
		if preexisting {
			fn.Blocks = nil
		} else {
			g.removeFunc(fn)
		}

		g.block = nil
		return nil, err
	}

	g.block.NewRet(result)
	g.block = nil
	return fn, nil
}

// localName returns a name for a local value based on base which is unique
// within the function being generated.
func (g *Generator) localName(base string) string {
	n := g.localNames[base]
	g.localNames[base] = n + 1

	if n == 0 {
		return base
	}

	return fmt.Sprintf("%s.%d", base, n)
}
