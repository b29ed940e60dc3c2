package ast

import (
	"io"

	"gopkg.in/yaml.v3"
)

// FprintYAML writes a YAML representation of the given nodes to w as a single
// sequence document.
func FprintYAML(w io.Writer, nodes ...Node) error {
	docs := make([]interface{}, len(nodes))
	for i, node := range nodes {
		docs[i] = toYAML(node)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return err
	}

	return enc.Close()
}

// toYAML converts a node into generic maps and slices for encoding.
func toYAML(node Node) interface{} {
	switch n := node.(type) {
	case *Number:
		return map[string]interface{}{
			"kind":  "number",
			"pos":   n.Span().String(),
			"value": n.Value,
		}
	case *Variable:
		return map[string]interface{}{
			"kind": "variable",
			"pos":  n.Span().String(),
			"name": n.Name,
		}
	case *BinaryOp:
		return map[string]interface{}{
			"kind": "binary",
			"pos":  n.Span().String(),
			"op":   string(n.Op),
			"lhs":  toYAML(n.Lhs),
			"rhs":  toYAML(n.Rhs),
		}
	case *Call:
		args := make([]interface{}, len(n.Args))
		for i, arg := range n.Args {
			args[i] = toYAML(arg)
		}

		return map[string]interface{}{
			"kind":   "call",
			"pos":    n.Span().String(),
			"callee": n.Callee,
			"args":   args,
		}
	case *Prototype:
		params := n.Params
		if params == nil {
			params = []string{}
		}

		return map[string]interface{}{
			"kind":   "prototype",
			"pos":    n.Span().String(),
			"name":   n.Name,
			"params": params,
		}
	case *Function:
		return map[string]interface{}{
			"kind":  "function",
			"pos":   n.Span().String(),
			"proto": toYAML(n.Proto),
			"body":  toYAML(n.Body),
		}
	}

	return nil
}
