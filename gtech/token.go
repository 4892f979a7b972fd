// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Kind is the kind of a Token.
type Kind int

const (
	EOF Kind = iota
	Ident
	Number
	Punct
	Comment
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "eof"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case Punct:
		return "punctuation"
	case Comment:
		return "comment"
	}
	return "unknown"
}

// Token is a lexical token.  The text of a comment does not include the
// comment delimiters.
type Token struct {
	Kind Kind
	Text string
	Line int
}

func (t Token) Is(text string) bool {
	return t.Kind != EOF && t.Kind != Comment && t.Text == text
}

// Lexer errors.
var (
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrMalformedNumber     = errors.New("malformed number")
	ErrEmptyEscapedIdent   = errors.New("empty escaped identifier")
)

const punctuation = "()[],;#.=:~&|^!?"

// Lexer splits its input into tokens.
type Lexer struct {
	r      *bufio.Reader
	line   int
	buf    []byte
	last   Token
	unread bool
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lexer{r: br, line: 1, buf: make([]byte, 0, 64)}
}

// Line returns the current line number, starting from 1.
func (l *Lexer) Line() int {
	return l.line
}

// Unread pushes the last token back, so that the next call to Next
// returns it again.  Only one token can be pushed back.
func (l *Lexer) Unread() {
	if l.unread {
		panic("gtech: double unread")
	}
	l.unread = true
}

// Next returns the next token.  At the end of input, Next returns a
// token of kind EOF and a nil error.
func (l *Lexer) Next() (Token, error) {
	if l.unread {
		l.unread = false
		return l.last, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{Kind: EOF, Line: l.line}, err
	}
	l.last = tok
	return tok, nil
}

func (l *Lexer) scan() (Token, error) {
	if err := l.skipSpace(); err != nil {
		return Token{}, err
	}
	b, err := l.r.ReadByte()
	if err == io.EOF {
		return Token{Kind: EOF, Line: l.line}, nil
	}
	if err != nil {
		return Token{}, err
	}
	line := l.line
	switch {
	case b == '/':
		c, err := l.r.ReadByte()
		if err == nil && c == '/' {
			return l.lineComment(line)
		}
		if err == nil && c == '*' {
			return l.blockComment(line)
		}
		if err == nil {
			l.r.UnreadByte()
		}
		return Token{}, ErrUnexpectedChar
	case b == '\\':
		return l.escaped(line)
	case isIdentStart(b):
		l.r.UnreadByte()
		return Token{Kind: Ident, Text: l.readWhile(isIdentChar), Line: line}, nil
	case isDigit(b):
		l.r.UnreadByte()
		return l.number(line)
	case strings.IndexByte(punctuation, b) >= 0:
		return Token{Kind: Punct, Text: string(b), Line: line}, nil
	}
	return Token{}, ErrUnexpectedChar
}

func (l *Lexer) skipSpace() error {
	for {
		b, err := l.r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch b {
		case '\n':
			l.line++
		case ' ', '\t', '\r', '\f':
		default:
			return l.r.UnreadByte()
		}
	}
}

func (l *Lexer) readWhile(f func(b byte) bool) string {
	l.buf = l.buf[:0]
	for {
		b, err := l.r.ReadByte()
		if err != nil {
			break
		}
		if !f(b) {
			l.r.UnreadByte()
			break
		}
		l.buf = append(l.buf, b)
	}
	return string(l.buf)
}

func (l *Lexer) lineComment(line int) (Token, error) {
	text := l.readWhile(func(b byte) bool { return b != '\n' })
	return Token{Kind: Comment, Text: strings.TrimSpace(text), Line: line}, nil
}

func (l *Lexer) blockComment(line int) (Token, error) {
	l.buf = l.buf[:0]
	star := false
	for {
		b, err := l.r.ReadByte()
		if err == io.EOF {
			return Token{}, ErrUnterminatedComment
		}
		if err != nil {
			return Token{}, err
		}
		if star && b == '/' {
			text := string(l.buf[:len(l.buf)-1])
			return Token{Kind: Comment, Text: strings.TrimSpace(text), Line: line}, nil
		}
		if b == '\n' {
			l.line++
		}
		star = b == '*'
		l.buf = append(l.buf, b)
	}
}

// escaped reads a verilog escaped identifier, which extends up to the
// next white space.  The backslash is kept.
func (l *Lexer) escaped(line int) (Token, error) {
	text := l.readWhile(func(b byte) bool {
		return b != ' ' && b != '\t' && b != '\n' && b != '\r' && b != '\f'
	})
	if text == "" {
		return Token{}, ErrEmptyEscapedIdent
	}
	return Token{Kind: Ident, Text: "\\" + text, Line: line}, nil
}

// number reads a decimal number, optionally followed by a base and
// digits as in 4'hA or 1'b0.
func (l *Lexer) number(line int) (Token, error) {
	size := l.readWhile(isDigit)
	b, err := l.r.ReadByte()
	if err != nil || b != '\'' {
		if err == nil {
			l.r.UnreadByte()
		}
		return Token{Kind: Number, Text: size, Line: line}, nil
	}
	base, err := l.r.ReadByte()
	if err != nil {
		return Token{}, ErrMalformedNumber
	}
	var digit func(b byte) bool
	switch base {
	case 'b', 'B':
		digit = func(b byte) bool { return b == '0' || b == '1' || isXZ(b) || b == '_' }
	case 'o', 'O':
		digit = func(b byte) bool { return b >= '0' && b <= '7' || isXZ(b) || b == '_' }
	case 'd', 'D':
		digit = func(b byte) bool { return isDigit(b) || b == '_' }
	case 'h', 'H':
		digit = func(b byte) bool { return isHex(b) || isXZ(b) || b == '_' }
	default:
		return Token{}, ErrMalformedNumber
	}
	digits := l.readWhile(digit)
	if digits == "" {
		return Token{}, ErrMalformedNumber
	}
	return Token{Kind: Number, Text: size + "'" + string(base) + digits, Line: line}, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isXZ(b byte) bool {
	return b == 'x' || b == 'X' || b == 'z' || b == 'Z'
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
