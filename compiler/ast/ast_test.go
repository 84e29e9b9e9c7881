package ast

import (
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

func num(v float64) *NumberExp {
	return &NumberExp{Line: 1, Val: v}
}

func name(s string) *NameExp {
	return &NameExp{Line: 1, Name: s}
}

func binop(op byte, l, r Exp) *BinopExp {
	return &BinopExp{Line: 1, Op: op, Left: l, Right: r}
}

func TestString(t *testing.T) {
	proto := &Prototype{Line: 1, Name: "f", Params: []string{"a", "b"}}
	tests := []struct {
		node Node
		want string
	}{
		{num(2.5), "2.5"},
		{num(1e21), "1e+21"},
		{name("x"), "x"},
		{binop('+', num(1), binop('*', num(2), num(3))), "(+ 1 (* 2 3))"},
		{&CallExp{Callee: "foo", Args: []Exp{name("x"), num(1)}}, "(call foo x 1)"},
		{&CallExp{Callee: "now"}, "(call now)"},
		{&FuncDef{Proto: proto, Body: binop('+', name("a"), name("b"))}, "(def (f a b) (+ a b))"},
		{&Extern{Proto: &Prototype{Name: "sin", Params: []string{"x"}}}, "(extern (sin x))"},
		{&Extern{Proto: &Prototype{Name: "rand"}}, "(extern (rand))"},
		{&TopLevelExp{Exp: binop('<', name("a"), num(0))}, "(< a 0)"},
	}
	for _, tt := range tests {
		if got := String(tt.node); got != tt.want {
			t.Errorf("String(%T) = %q, want %q", tt.node, got, tt.want)
		}
	}
}

func TestLabelAndChildren(t *testing.T) {
	body := binop('-', name("x"), num(1))
	def := &FuncDef{Proto: &Prototype{Name: "dec", Params: []string{"x"}}, Body: body}

	if got := Label(def); got != "def dec" {
		t.Fatalf("label %q", got)
	}
	if got := Label(def.Proto); got != "prototype dec(x)" {
		t.Fatalf("label %q", got)
	}
	if got := Children(def); !reflect.DeepEqual(got, []Node{def.Proto, body}) {
		t.Fatalf("children of def %v", got)
	}
	if got := Children(body); len(got) != 2 || got[0] != Node(body.Left) || got[1] != Node(body.Right) {
		t.Fatalf("children of binop %v", got)
	}
	if got := Children(num(1)); got != nil {
		t.Fatalf("number has children %v", got)
	}

	call := &CallExp{Callee: "g", Args: []Exp{num(1), name("y")}}
	if got := Label(call); got != "call g/2" {
		t.Fatalf("label %q", got)
	}
	if got := Children(call); len(got) != 2 || got[1] != Node(call.Args[1]) {
		t.Fatalf("children of call %v", got)
	}
}

func TestMarshal(t *testing.T) {
	def := &FuncDef{
		Proto: &Prototype{Line: 3, Name: "f", Params: []string{"x"}},
		Body:  &CallExp{Line: 3, Callee: "g", Args: []Exp{binop('*', name("x"), num(2))}},
	}
	data, err := Marshal(def)
	if err != nil {
		t.Fatal(err)
	}
	j := gjson.ParseBytes(data)
	checks := map[string]string{
		"kind":                    "def",
		"proto.name":              "f",
		"proto.params.0":          "x",
		"proto.line":              "3",
		"body.kind":               "call",
		"body.callee":             "g",
		"body.args.0.op":          "*",
		"body.args.0.left.name":   "x",
		"body.args.0.right.value": "2",
	}
	for path, want := range checks {
		if got := j.Get(path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}

	data, err = Marshal(&Extern{Proto: &Prototype{Name: "rand"}})
	if err != nil {
		t.Fatal(err)
	}
	if params := gjson.GetBytes(data, "proto.params"); !params.IsArray() || len(params.Array()) != 0 {
		t.Fatalf("empty params should encode as [], got %s", params.Raw)
	}
}
