package ast

/*
top    ::= definition | external | expression
definition ::= 'def' prototype expression
external   ::= 'extern' prototype
prototype  ::= Name '(' {Name} ')'

expression ::= primary {binop primary}
primary    ::= Numeral | Name | Name '(' [expression {',' expression}] ')' | '(' expression ')'
*/

// Node is the closed set of tree nodes. Only this package implements it.
type Node interface {
	node()
}

// Exp is a node that stands for a value.
type Exp interface {
	Node
	exp()
}

// TopLevel is one independently parsed form: *FuncDef, *Extern or *TopLevelExp.
type TopLevel interface {
	Node
	topLevel()
}

// Numeral
type NumberExp struct {
	Line int
	Val  float64
}

// Name
type NameExp struct {
	Line int
	Name string
}

// Name '(' args ')'
type CallExp struct {
	Line   int
	Callee string
	Args   []Exp
}

// exp1 op exp2
type BinopExp struct {
	Line  int  // line of operator
	Op    byte // operator
	Left  Exp
	Right Exp
}

// Prototype is a function's name and parameter names, with or without a body.
// Duplicate parameter names are kept as written.
type Prototype struct {
	Line   int
	Name   string
	Params []string
}

type FuncDef struct {
	Proto *Prototype
	Body  Exp
}

// Extern declares a prototype that is defined elsewhere.
type Extern struct {
	Proto *Prototype
}

// TopLevelExp is a bare expression typed at the top level.
type TopLevelExp struct {
	Exp Exp
}

func (*NumberExp) node()   {}
func (*NameExp) node()     {}
func (*CallExp) node()     {}
func (*BinopExp) node()    {}
func (*Prototype) node()   {}
func (*FuncDef) node()     {}
func (*Extern) node()      {}
func (*TopLevelExp) node() {}

func (*NumberExp) exp() {}
func (*NameExp) exp()   {}
func (*CallExp) exp()   {}
func (*BinopExp) exp()  {}

func (*FuncDef) topLevel()     {}
func (*Extern) topLevel()      {}
func (*TopLevelExp) topLevel() {}
