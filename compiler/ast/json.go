package ast

import (
	"fmt"

	. "github.com/lollipopkit/kale/json"
)

// Encode converts a node into plain maps and slices, tagging each node with
// its "kind".
func Encode(n Node) map[string]any {
	switch x := n.(type) {
	case *NumberExp:
		return map[string]any{"kind": "number", "line": x.Line, "value": x.Val}
	case *NameExp:
		return map[string]any{"kind": "variable", "line": x.Line, "name": x.Name}
	case *CallExp:
		args := make([]any, len(x.Args))
		for i, arg := range x.Args {
			args[i] = Encode(arg)
		}
		return map[string]any{"kind": "call", "line": x.Line, "callee": x.Callee, "args": args}
	case *BinopExp:
		return map[string]any{
			"kind":  "binop",
			"line":  x.Line,
			"op":    string(x.Op),
			"left":  Encode(x.Left),
			"right": Encode(x.Right),
		}
	case *Prototype:
		params := x.Params
		if params == nil {
			params = []string{}
		}
		return map[string]any{"kind": "prototype", "line": x.Line, "name": x.Name, "params": params}
	case *FuncDef:
		return map[string]any{"kind": "def", "proto": Encode(x.Proto), "body": Encode(x.Body)}
	case *Extern:
		return map[string]any{"kind": "extern", "proto": Encode(x.Proto)}
	case *TopLevelExp:
		return map[string]any{"kind": "expression", "exp": Encode(x.Exp)}
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

func Marshal(n Node) ([]byte, error) {
	return Json.Marshal(Encode(n))
}
