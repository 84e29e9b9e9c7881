package parser

import (
	"fmt"
	"sort"
	"strings"
)

var defaultBinops = map[byte]int{
	'<': 10,
	'+': 20,
	'-': 20,
	'*': 40,
	'/': 40,
}

// Precedence maps single-character binary operators to their binding power.
// It is never modified after construction.
type Precedence struct {
	table map[byte]int
}

func DefaultPrecedence() *Precedence {
	return NewPrecedence(nil)
}

// NewPrecedence starts from the default table and applies overrides on top.
// A non-positive override disables the operator.
func NewPrecedence(overrides map[byte]int) *Precedence {
	table := make(map[byte]int, len(defaultBinops)+len(overrides))
	for op, prec := range defaultBinops {
		table[op] = prec
	}
	for op, prec := range overrides {
		table[op] = prec
	}
	return &Precedence{table: table}
}

// Of returns the precedence of a token kind, or -1 when the token is not a
// binary operator.
func (self *Precedence) Of(kind int) int {
	if kind < 0 || kind > 0x7F {
		return -1
	}
	prec, ok := self.table[byte(kind)]
	if !ok || prec <= 0 {
		return -1
	}
	return prec
}

// String lists the active operators, e.g. "*:40 +:20 -:20 /:40 <:10".
func (self *Precedence) String() string {
	ops := make([]string, 0, len(self.table))
	for op, prec := range self.table {
		if prec > 0 {
			ops = append(ops, fmt.Sprintf("%c:%d", op, prec))
		}
	}
	sort.Strings(ops)
	return strings.Join(ops, " ")
}
