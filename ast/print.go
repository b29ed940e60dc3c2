package ast

import (
	"strconv"
	"strings"
)

// The S-expression forms are:
//
//	number    1.5
//	variable  x
//	binary    (+ lhs rhs)
//	call      (call f arg1 arg2)
//	prototype (proto f a b)      or (proto <anon>) for top level expressions
//	function  (def (proto f a b) body)

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (v *Variable) String() string {
	return v.Name
}

func (bo *BinaryOp) String() string {
	sb := &strings.Builder{}
	sb.WriteRune('(')
	sb.WriteRune(bo.Op)
	sb.WriteRune(' ')
	sb.WriteString(bo.Lhs.String())
	sb.WriteRune(' ')
	sb.WriteString(bo.Rhs.String())
	sb.WriteRune(')')
	return sb.String()
}

func (c *Call) String() string {
	sb := &strings.Builder{}
	sb.WriteString("(call ")
	sb.WriteString(c.Callee)
	for _, arg := range c.Args {
		sb.WriteRune(' ')
		sb.WriteString(arg.String())
	}
	sb.WriteRune(')')
	return sb.String()
}

func (p *Prototype) String() string {
	name := p.Name
	if p.IsAnonymous() {
		name = "<anon>"
	}

	return "(proto " + strings.Join(append([]string{name}, p.Params...), " ") + ")"
}

func (f *Function) String() string {
	return "(def " + f.Proto.String() + " " + f.Body.String() + ")"
}
