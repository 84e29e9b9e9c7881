package parser

import (
	"github.com/lollipopkit/kale/compiler/ast"
	. "github.com/lollipopkit/kale/compiler/lexer"
)

// prototype ::= Name '(' {Name} ')'
func (p *Parser) ParsePrototype() (*ast.Prototype, error) {
	if p.tok.Kind != TOKEN_IDENTIFIER {
		return nil, p.error("function name expected, got %s", p.tok)
	}
	name, line := p.tok.Text, p.tok.Line
	p.next() // Name

	if p.tok.Kind != '(' {
		return nil, p.error("expected '(' in prototype, got %s", p.tok)
	}
	p.next() // (

	var params []string
	for p.tok.Kind == TOKEN_IDENTIFIER {
		params = append(params, p.tok.Text)
		p.next()
	}
	if p.tok.Kind != ')' {
		return nil, p.error("expected ')' in prototype, got %s", p.tok)
	}
	p.next() // )

	return &ast.Prototype{Line: line, Name: name, Params: params}, nil
}

// definition ::= 'def' prototype expression
func (p *Parser) ParseDefinition() (*ast.FuncDef, error) {
	p.next() // def
	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Proto: proto, Body: body}, nil
}

// external ::= 'extern' prototype
func (p *Parser) ParseExtern() (*ast.Extern, error) {
	p.next() // extern
	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}
	return &ast.Extern{Proto: proto}, nil
}
