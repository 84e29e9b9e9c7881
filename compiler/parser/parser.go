package parser

import (
	"io"

	"github.com/lollipopkit/kale/compiler/ast"
	. "github.com/lollipopkit/kale/compiler/lexer"
	"github.com/lollipopkit/kale/logger"
)

/* recursive descent parser with precedence climbing for binary operators */

// Parser holds one token of lookahead over its own Lexer. A Parser must not be
// shared between parse sessions.
type Parser struct {
	lexer *Lexer
	prec  *Precedence
	tok   Token // current token
}

// NewParser reads the first token right away. A nil prec means the default
// operator table.
func NewParser(lexer *Lexer, prec *Precedence) *Parser {
	if prec == nil {
		prec = DefaultPrecedence()
	}
	p := &Parser{lexer: lexer, prec: prec}
	p.next()
	return p
}

// Current returns the lookahead token.
func (p *Parser) Current() Token {
	return p.tok
}

// Skip drops the lookahead token. Drivers call it to resynchronize after a
// SyntaxError.
func (p *Parser) Skip() {
	p.next()
}

func (p *Parser) next() {
	p.tok = p.lexer.NextToken()
}

// ParseTopLevel parses the next top-level form, skipping stray ';' between
// forms. It returns io.EOF once the input is exhausted.
func (p *Parser) ParseTopLevel() (ast.TopLevel, error) {
	for p.tok.Kind == ';' {
		p.next()
	}

	var (
		form ast.TopLevel
		err  error
	)
	switch p.tok.Kind {
	case TOKEN_EOF:
		return nil, io.EOF
	case TOKEN_KW_DEF:
		var def *ast.FuncDef
		if def, err = p.ParseDefinition(); err == nil {
			form = def
		}
	case TOKEN_KW_EXTERN:
		var ext *ast.Extern
		if ext, err = p.ParseExtern(); err == nil {
			form = ext
		}
	default:
		var exp ast.Exp
		if exp, err = p.ParseExpression(); err == nil {
			form = &ast.TopLevelExp{Exp: exp}
		}
	}
	if err != nil {
		return nil, err
	}

	logger.I("[parser] %s:%d: %s", p.lexer.ChunkName(), p.lexer.Line(), ast.Label(form))
	return form, nil
}

// ParseString parses a chunk that must hold exactly one expression.
func ParseString(chunk, chunkName string, prec *Precedence) (ast.Exp, error) {
	p := NewParser(NewStringLexer(chunk, chunkName), prec)
	exp, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TOKEN_EOF {
		return nil, p.error("unexpected %s after expression", p.tok)
	}
	return exp, nil
}
