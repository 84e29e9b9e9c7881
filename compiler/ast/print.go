package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a node as an S-expression:
//
//	1 + 2 * 3        => (+ 1 (* 2 3))
//	foo(x, 1)        => (call foo x 1)
//	def f(a b) a+b   => (def (f a b) (+ a b))
//	extern sin(x)    => (extern (sin x))
func String(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch x := n.(type) {
	case *NumberExp:
		sb.WriteString(formatNumber(x.Val))
	case *NameExp:
		sb.WriteString(x.Name)
	case *CallExp:
		sb.WriteString("(call ")
		sb.WriteString(x.Callee)
		for _, arg := range x.Args {
			sb.WriteByte(' ')
			write(sb, arg)
		}
		sb.WriteByte(')')
	case *BinopExp:
		sb.WriteByte('(')
		sb.WriteByte(x.Op)
		sb.WriteByte(' ')
		write(sb, x.Left)
		sb.WriteByte(' ')
		write(sb, x.Right)
		sb.WriteByte(')')
	case *Prototype:
		sb.WriteByte('(')
		sb.WriteString(x.Name)
		for _, param := range x.Params {
			sb.WriteByte(' ')
			sb.WriteString(param)
		}
		sb.WriteByte(')')
	case *FuncDef:
		sb.WriteString("(def ")
		write(sb, x.Proto)
		sb.WriteByte(' ')
		write(sb, x.Body)
		sb.WriteByte(')')
	case *Extern:
		sb.WriteString("(extern ")
		write(sb, x.Proto)
		sb.WriteByte(')')
	case *TopLevelExp:
		write(sb, x.Exp)
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

// Label is a one-line caption for a node, without its children.
func Label(n Node) string {
	switch x := n.(type) {
	case *NumberExp:
		return "number " + formatNumber(x.Val)
	case *NameExp:
		return "variable " + x.Name
	case *CallExp:
		return fmt.Sprintf("call %s/%d", x.Callee, len(x.Args))
	case *BinopExp:
		return "binop " + string(x.Op)
	case *Prototype:
		return fmt.Sprintf("prototype %s(%s)", x.Name, strings.Join(x.Params, " "))
	case *FuncDef:
		return "def " + x.Proto.Name
	case *Extern:
		return "extern " + x.Proto.Name
	case *TopLevelExp:
		return "expression"
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

// Children lists the direct subtrees of n in source order.
func Children(n Node) []Node {
	switch x := n.(type) {
	case *NumberExp, *NameExp, *Prototype:
		return nil
	case *CallExp:
		children := make([]Node, len(x.Args))
		for i, arg := range x.Args {
			children[i] = arg
		}
		return children
	case *BinopExp:
		return []Node{x.Left, x.Right}
	case *FuncDef:
		return []Node{x.Proto, x.Body}
	case *Extern:
		return []Node{x.Proto}
	case *TopLevelExp:
		return []Node{x.Exp}
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
