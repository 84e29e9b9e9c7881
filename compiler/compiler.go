package compiler

import (
	"errors"
	"io"
	"os"
	"strings"

	glc "github.com/lollipopkit/go-lru-cacher"
	"github.com/lollipopkit/kale/compiler/ast"
	"github.com/lollipopkit/kale/compiler/lexer"
	"github.com/lollipopkit/kale/compiler/parser"
	"github.com/lollipopkit/kale/consts"
	. "github.com/lollipopkit/kale/json"
	"github.com/lollipopkit/kale/logger"
	"github.com/lollipopkit/kale/utils"
)

var (
	// parsed files, keyed by path, content hash and operator table
	unitCacher = glc.NewCacher[Unit](consts.ParseCacheSize)
)

// Unit is everything parsed out of one chunk: the forms that parsed and the
// errors of those that did not, each in source order.
type Unit struct {
	Chunk string
	Forms []ast.TopLevel
	Errs  []error
}

// Session drives a Parser over a whole chunk. On a syntax error it drops the
// offending token so the next form starts at a fresh token boundary.
type Session struct {
	lexer  *lexer.Lexer
	parser *parser.Parser
}

func NewSession(r io.Reader, chunkName string, prec *parser.Precedence) *Session {
	l := lexer.NewLexer(r, chunkName)
	return &Session{
		lexer:  l,
		parser: parser.NewParser(l, prec),
	}
}

// Next returns the next form or its syntax error, and io.EOF at the end.
func (self *Session) Next() (ast.TopLevel, error) {
	form, err := self.parser.ParseTopLevel()
	if err != nil && err != io.EOF {
		logger.W("[session] skip %s after: %v", self.parser.Current(), err)
		self.parser.Skip()
	}
	return form, err
}

// Run hands every form or syntax error to handle until the chunk is drained.
// The returned error is a read failure of the source, if any.
func (self *Session) Run(handle func(form ast.TopLevel, err error)) error {
	for {
		form, err := self.Next()
		if err == io.EOF {
			return self.lexer.Err()
		}
		handle(form, err)
	}
}

func ParseReader(r io.Reader, chunkName string, prec *parser.Precedence) (*Unit, error) {
	unit := &Unit{Chunk: chunkName}
	err := NewSession(r, chunkName, prec).Run(func(form ast.TopLevel, err error) {
		if err != nil {
			unit.Errs = append(unit.Errs, err)
			return
		}
		unit.Forms = append(unit.Forms, form)
	})
	return unit, err
}

func ParseString(chunk, chunkName string, prec *parser.Precedence) *Unit {
	// a strings.Reader never fails
	unit, _ := ParseReader(strings.NewReader(chunk), chunkName, prec)
	return unit
}

// ParseFile parses a source file. Results are cached until the file content
// or the operator table changes; callers must treat the Unit as read-only.
func ParseFile(path string, prec *parser.Precedence) (*Unit, error) {
	if prec == nil {
		prec = parser.DefaultPrecedence()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key := path + "|" + utils.Md5(data) + "|" + prec.String()
	if unit, ok := unitCacher.Get(key); ok {
		logger.I("[compiler] cache hit: %s", path)
		return unit, nil
	}

	unit := ParseString(string(data), path, prec)
	unitCacher.Set(key, unit)
	return unit, nil
}

// Incomplete reports whether the unit only failed because the input ended
// in the middle of a form.
func (self *Unit) Incomplete() bool {
	return len(self.Errs) > 0 && parser.IsIncomplete(self.Errs[len(self.Errs)-1])
}

// Err joins all syntax errors of the unit, or returns nil.
func (self *Unit) Err() error {
	return errors.Join(self.Errs...)
}

// Dump encodes the unit as JSON: {"chunk", "forms", "errors"}.
func (self *Unit) Dump() ([]byte, error) {
	forms := make([]any, len(self.Forms))
	for i, form := range self.Forms {
		forms[i] = ast.Encode(form)
	}
	errs := make([]string, len(self.Errs))
	for i, err := range self.Errs {
		errs[i] = err.Error()
	}
	return Json.MarshalIndent(map[string]any{
		"chunk":  self.Chunk,
		"forms":  forms,
		"errors": errs,
	}, "", "  ")
}
