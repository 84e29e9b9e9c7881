package lexer

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func kindsOf(chunk string) []int {
	l := NewStringLexer(chunk, "")
	var kinds []int
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == TOKEN_EOF {
			break
		}
	}
	return kinds
}

func TestDefTokens(t *testing.T) {
	kinds := kindsOf("def foo(a b) a+b*2.5;")
	expect := []int{
		TOKEN_KW_DEF, TOKEN_IDENTIFIER, '(', TOKEN_IDENTIFIER, TOKEN_IDENTIFIER, ')',
		TOKEN_IDENTIFIER, '+', TOKEN_IDENTIFIER, '*', TOKEN_NUMBER, ';', TOKEN_EOF,
	}
	if !reflect.DeepEqual(kinds, expect) {
		t.Fatalf("def tokens %v", kinds)
	}

	kinds = kindsOf("extern sin(x)")
	expect = []int{TOKEN_KW_EXTERN, TOKEN_IDENTIFIER, '(', TOKEN_IDENTIFIER, ')', TOKEN_EOF}
	if !reflect.DeepEqual(kinds, expect) {
		t.Fatalf("extern tokens %v", kinds)
	}
}

func TestBlankInput(t *testing.T) {
	for _, chunk := range []string{
		"",
		"   \t\n",
		"# just a comment",
		"# one\n# two\r\n   # three\n",
		"\n\n#\n#\n",
	} {
		l := NewStringLexer(chunk, "")
		for i := 0; i < 3; i++ {
			if tok := l.NextToken(); tok.Kind != TOKEN_EOF {
				t.Fatalf("%q: call %d returned %v", chunk, i, tok)
			}
		}
	}
}

func TestIdentifiers(t *testing.T) {
	for _, ident := range []string{"x", "foo", "a1b2", "Def", "defx", "externs", "X9"} {
		l := NewStringLexer(ident, "")
		tok := l.NextToken()
		if tok.Kind != TOKEN_IDENTIFIER || tok.Text != ident {
			t.Fatalf("%q lexed as %v", ident, tok)
		}
	}

	l := NewStringLexer("ab_c", "")
	if tok := l.NextToken(); tok.Text != "ab" {
		t.Fatalf("identifier stops at '_', got %q", tok.Text)
	}
	if tok := l.NextToken(); tok.Kind != '_' {
		t.Fatalf("expect '_' token, got %v", tok)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		chunk string
		value float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"7.", 7},
		{"1.2.3", 1.2},
		{"1..2", 1},
		{".", 0},
		{"..", 0},
	}
	for _, tt := range tests {
		l := NewStringLexer(tt.chunk, "")
		tok := l.NextToken()
		if tok.Kind != TOKEN_NUMBER || tok.Num != tt.value {
			t.Errorf("%q lexed as %v (%v), expect %v", tt.chunk, tok, tok.Num, tt.value)
		}
		if tok.Text != tt.chunk {
			t.Errorf("%q: whole run should be consumed, got %q", tt.chunk, tok.Text)
		}
		if next := l.NextToken(); next.Kind != TOKEN_EOF {
			t.Errorf("%q: trailing token %v", tt.chunk, next)
		}
	}

	huge := NewStringLexer(strings.Repeat("9", 400), "").NextToken()
	if math.IsInf(huge.Num, 0) || huge.Num != math.MaxFloat64 {
		t.Fatalf("overflowing literal should saturate, got %v", huge.Num)
	}
}

func TestOpaqueCharacters(t *testing.T) {
	kinds := kindsOf("@ $ ! \x01 \xff")
	expect := []int{'@', '$', '!', 0x01, 0xff, TOKEN_EOF}
	if !reflect.DeepEqual(kinds, expect) {
		t.Fatalf("opaque tokens %v", kinds)
	}
}

func TestCommentEndsLine(t *testing.T) {
	kinds := kindsOf("1 # ignored ( def\n2")
	expect := []int{TOKEN_NUMBER, TOKEN_NUMBER, TOKEN_EOF}
	if !reflect.DeepEqual(kinds, expect) {
		t.Fatalf("comment tokens %v", kinds)
	}
}

func TestLines(t *testing.T) {
	l := NewStringLexer("a\n# c\n\nb\n  c", "")
	var lines []int
	for tok := l.NextToken(); tok.Kind != TOKEN_EOF; tok = l.NextToken() {
		lines = append(lines, tok.Line)
	}
	if !reflect.DeepEqual(lines, []int{1, 4, 5}) {
		t.Fatalf("lines %v", lines)
	}
}

func TestRelexIsStable(t *testing.T) {
	chunk := "def fib(x) if x < 3 then 1 else fib(x-1)+fib(x-2) # done\n fib(40)"
	first := kindsOf(chunk)
	second := kindsOf(chunk)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-lexing changed the stream:\n%v\n%v", first, second)
	}
}

type failingReader struct {
	data string
}

var errBroken = errors.New("broken pipe")

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, errBroken
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadError(t *testing.T) {
	l := NewLexer(&failingReader{data: "x + "}, "pipe")
	kinds := []int{}
	for tok := l.NextToken(); tok.Kind != TOKEN_EOF; tok = l.NextToken() {
		kinds = append(kinds, tok.Kind)
	}
	if !reflect.DeepEqual(kinds, []int{TOKEN_IDENTIFIER, '+'}) {
		t.Fatalf("tokens before failure %v", kinds)
	}
	if !errors.Is(l.Err(), errBroken) {
		t.Fatalf("expect read error, got %v", l.Err())
	}

	clean := NewStringLexer("x", "")
	clean.NextToken()
	clean.NextToken()
	if clean.Err() != nil {
		t.Fatalf("clean source reported %v", clean.Err())
	}
}

func TestTokenName(t *testing.T) {
	tests := map[int]string{
		TOKEN_EOF:        "EOF",
		TOKEN_IDENTIFIER: "identifier",
		'(':              "'('",
		0x01:             "'\\x01'",
		-99:              "unknown",
	}
	for kind, name := range tests {
		if got := TokenName(kind); got != name {
			t.Errorf("TokenName(%d) = %q, expect %q", kind, got, name)
		}
	}
}
