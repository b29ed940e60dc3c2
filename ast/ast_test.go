package ast

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func num(v float64) *Number { return &Number{Value: v} }
func vr(name string) *Variable { return &Variable{Name: name} }
func bin(op rune, l, r Expr) Expr { return &BinaryOp{Op: op, Lhs: l, Rhs: r} }

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"number", num(1), "1"},
		{"fraction", num(0.25), "0.25"},
		{"variable", vr("x"), "x"},
		{"binary", bin('+', vr("a"), bin('*', vr("b"), vr("c"))), "(+ a (* b c))"},
		{"call", &Call{Callee: "f", Args: []Expr{num(1), num(2), num(3)}}, "(call f 1 2 3)"},
		{"call_no_args", &Call{Callee: "g"}, "(call g)"},
		{"prototype", &Prototype{Name: "foo", Params: []string{"a", "b"}}, "(proto foo a b)"},
		{"anonymous", &Prototype{}, "(proto <anon>)"},
		{
			"function",
			&Function{Proto: &Prototype{Name: "foo", Params: []string{"a", "b"}}, Body: bin('+', vr("a"), vr("b"))},
			"(def (proto foo a b) (+ a b))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAnonymous(t *testing.T) {
	if !(&Prototype{}).IsAnonymous() {
		t.Error("empty prototype name should be anonymous")
	}
	if (&Prototype{Name: "f"}).IsAnonymous() {
		t.Error("named prototype should not be anonymous")
	}
}

func TestFprintYAML(t *testing.T) {
	fn := &Function{
		Proto: &Prototype{Name: "foo", Params: []string{"a"}},
		Body:  &Call{Callee: "bar", Args: []Expr{bin('<', vr("a"), num(2))}},
	}

	var buf bytes.Buffer
	if err := FprintYAML(&buf, fn, &Prototype{Name: "sin", Params: []string{"x"}}); err != nil {
		t.Fatalf("FprintYAML: %v", err)
	}

	var decoded []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}

	if len(decoded) != 2 {
		t.Fatalf("got %d documents, want 2", len(decoded))
	}
	if decoded[0]["kind"] != "function" || decoded[1]["kind"] != "prototype" {
		t.Errorf("kinds = %v, %v", decoded[0]["kind"], decoded[1]["kind"])
	}

	body := decoded[0]["body"].(map[string]interface{})
	if body["callee"] != "bar" {
		t.Errorf("callee = %v, want bar", body["callee"])
	}

	arg := body["args"].([]interface{})[0].(map[string]interface{})
	if arg["op"] != "<" {
		t.Errorf("op = %v, want <", arg["op"])
	}
}
