package parser

import (
	"errors"
	"fmt"

	"github.com/lollipopkit/kale/compiler/lexer"
)

// SyntaxError is the only failure a parse can produce.
type SyntaxError struct {
	Chunk string
	Line  int
	Msg   string
	// Token is the lookahead that violated the grammar.
	Token lexer.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Chunk, e.Line, e.Msg)
}

// IsIncomplete reports whether err was caused by running out of input, so
// feeding more source could still make the form parse.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Token.Kind == lexer.TOKEN_EOF
}

func (p *Parser) error(f string, a ...any) error {
	return &SyntaxError{
		Chunk: p.lexer.ChunkName(),
		Line:  p.tok.Line,
		Msg:   fmt.Sprintf(f, a...),
		Token: p.tok,
	}
}
