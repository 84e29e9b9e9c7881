package parser

import (
	"github.com/lollipopkit/kale/compiler/ast"
	. "github.com/lollipopkit/kale/compiler/lexer"
)

// expression ::= primary {binop primary}
func (p *Parser) ParseExpression() (ast.Exp, error) {
	lhs, err := p.ParsePrimary()
	if err != nil {
		return nil, err
	}
	return p.ParseBinopRHS(0, lhs)
}

// ParseBinopRHS extends lhs with every following binary operator that binds
// at least as tightly as minPrec. Equal precedence folds to the left; the
// recursion only happens when the next operator binds tighter.
func (p *Parser) ParseBinopRHS(minPrec int, lhs ast.Exp) (ast.Exp, error) {
	for {
		tokPrec := p.prec.Of(p.tok.Kind)
		if tokPrec < minPrec {
			return lhs, nil
		}

		op, line := p.tok.Kind, p.tok.Line
		p.next() // binop

		rhs, err := p.ParsePrimary()
		if err != nil {
			return nil, err
		}

		if tokPrec < p.prec.Of(p.tok.Kind) {
			if rhs, err = p.ParseBinopRHS(tokPrec+1, rhs); err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinopExp{Line: line, Op: byte(op), Left: lhs, Right: rhs}
	}
}

// primary ::= identifierexp | Numeral | parenexp
func (p *Parser) ParsePrimary() (ast.Exp, error) {
	switch p.tok.Kind {
	case TOKEN_IDENTIFIER:
		return p.parseIdentifierExp()
	case TOKEN_NUMBER:
		return p.parseNumberExp(), nil
	case '(':
		return p.parseParenExp()
	default:
		return nil, p.error("expected an expression, got %s", p.tok)
	}
}

func (p *Parser) parseNumberExp() *ast.NumberExp {
	exp := &ast.NumberExp{Line: p.tok.Line, Val: p.tok.Num}
	p.next()
	return exp
}

// parenexp ::= '(' expression ')'
func (p *Parser) parseParenExp() (ast.Exp, error) {
	p.next() // (
	exp, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != ')' {
		return nil, p.error("expected ')', got %s", p.tok)
	}
	p.next() // )
	return exp, nil
}

// identifierexp ::= Name | Name '(' [expression {',' expression}] ')'
func (p *Parser) parseIdentifierExp() (ast.Exp, error) {
	name, line := p.tok.Text, p.tok.Line
	p.next() // Name

	if p.tok.Kind != '(' {
		return &ast.NameExp{Line: line, Name: name}, nil
	}

	p.next() // (
	args := make([]ast.Exp, 0, 4)
	if p.tok.Kind != ')' {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.tok.Kind == ')' {
				break
			}
			if p.tok.Kind != ',' {
				return nil, p.error("expected ')' or ',' in argument list, got %s", p.tok)
			}
			p.next() // ,
		}
	}
	p.next() // )

	return &ast.CallExp{Line: line, Callee: name, Args: args}, nil
}
