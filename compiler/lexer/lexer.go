package lexer

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// eof marks an exhausted source in Lexer.lastChar.
const eof = -1

// Lexer pulls characters from a source one at a time and groups them into
// tokens. Every parse session needs its own Lexer.
type Lexer struct {
	reader    io.ByteReader
	chunkName string // source name
	line      int    // line of lastChar
	lastChar  int    // one character of lookahead, eof once the source is drained
	err       error  // first read error other than io.EOF
}

func NewLexer(r io.Reader, chunkName string) *Lexer {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lexer{
		reader:    br,
		chunkName: chunkName,
		line:      1,
		lastChar:  ' ',
	}
}

func NewStringLexer(chunk, chunkName string) *Lexer {
	return NewLexer(strings.NewReader(chunk), chunkName)
}

func (self *Lexer) ChunkName() string {
	return self.chunkName
}

func (self *Lexer) Line() int {
	return self.line
}

// Err returns the read error that cut the source short, if any.
func (self *Lexer) Err() error {
	return self.err
}

// NextToken returns the next token. Once the source is exhausted it returns
// TOKEN_EOF on this and every later call.
func (self *Lexer) NextToken() Token {
	for {
		for isWhiteSpace(self.lastChar) {
			self.next()
		}
		if self.lastChar != '#' {
			break
		}
		self.skipComment()
	}

	line := self.line
	c := self.lastChar
	switch {
	case c == eof:
		return Token{Kind: TOKEN_EOF, Line: line}
	case isLetter(c):
		ident := self.scanIdentifier()
		if kind, found := keywords[ident]; found {
			return Token{Kind: kind, Text: ident, Line: line}
		}
		return Token{Kind: TOKEN_IDENTIFIER, Text: ident, Line: line}
	case isDigit(c) || c == '.':
		run := self.scanNumber()
		return Token{Kind: TOKEN_NUMBER, Text: run, Num: parseNumber(run), Line: line}
	}

	self.next()
	return Token{Kind: c, Line: line}
}

// next advances lastChar by one character.
func (self *Lexer) next() {
	if self.lastChar == eof {
		return
	}
	if self.lastChar == '\n' {
		self.line++
	}
	b, err := self.reader.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) && self.err == nil {
			self.err = err
		}
		self.lastChar = eof
		return
	}
	self.lastChar = int(b)
}

// skipComment drops `#` and everything up to the end of the line.
func (self *Lexer) skipComment() {
	for self.lastChar != eof && !isNewLine(self.lastChar) {
		self.next()
	}
}

// identifier ::= [A-Za-z][A-Za-z0-9]*
func (self *Lexer) scanIdentifier() string {
	var buf bytes.Buffer
	for isLetter(self.lastChar) || isDigit(self.lastChar) {
		buf.WriteByte(byte(self.lastChar))
		self.next()
	}
	return buf.String()
}

// number ::= [0-9.]+
func (self *Lexer) scanNumber() string {
	var buf bytes.Buffer
	for isDigit(self.lastChar) || self.lastChar == '.' {
		buf.WriteByte(byte(self.lastChar))
		self.next()
	}
	return buf.String()
}

// parseNumber converts the longest valid leading numeral of run, so "1.2.3"
// is 1.2 and a lone "." is 0. Overflow saturates at the largest finite float.
func parseNumber(run string) float64 {
	end, digits, seenDot := 0, 0, false
	for ; end < len(run); end++ {
		if run[end] == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	f, err := strconv.ParseFloat(run[:end], 64)
	if math.IsInf(f, 1) {
		return math.MaxFloat64
	}
	if err != nil {
		return 0
	}
	return f
}

func isWhiteSpace(c int) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}

func isNewLine(c int) bool {
	return c == '\r' || c == '\n'
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c int) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
