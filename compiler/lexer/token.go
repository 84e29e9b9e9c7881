package lexer

import "fmt"

// token kind
//
// Kinds below zero are the named tokens. A single-character operator or
// punctuation token uses the character's code (0-255) as its kind.
const (
	TOKEN_EOF = -(iota + 1)
	TOKEN_KW_DEF
	TOKEN_KW_EXTERN
	TOKEN_IDENTIFIER
	TOKEN_NUMBER
)

var tokenNames = map[int]string{
	TOKEN_EOF:        "EOF",
	TOKEN_KW_DEF:     "def",
	TOKEN_KW_EXTERN:  "extern",
	TOKEN_IDENTIFIER: "identifier",
	TOKEN_NUMBER:     "number literal",
}

var keywords = map[string]int{
	"def":    TOKEN_KW_DEF,
	"extern": TOKEN_KW_EXTERN,
}

// Token is one classified unit of input. Text is set for identifiers (and
// holds the scanned run for numbers), Num only for number literals.
type Token struct {
	Kind int
	Text string
	Num  float64
	Line int
}

func (t Token) String() string {
	switch t.Kind {
	case TOKEN_IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", t.Text)
	case TOKEN_NUMBER:
		return fmt.Sprintf("number '%s'", t.Text)
	}
	return TokenName(t.Kind)
}

// TokenName describes a token kind for diagnostics.
func TokenName(kind int) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}
	if kind >= 0 && kind <= 0xFF {
		if kind >= 0x20 && kind < 0x7F {
			return fmt.Sprintf("'%c'", rune(kind))
		}
		return fmt.Sprintf("'\\x%02x'", kind)
	}
	return "unknown"
}
