package infix

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenOperator
)

// Token is a number literal or a single-character operator. Pos is the byte
// offset of its first character.
type Token struct {
	Kind  TokenKind
	Value int64
	Op    Op
	Pos   int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatInt(t.Value, 10)
	case TokenOperator:
		return t.Op.String()
	}
	return "EOF"
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

// Lexer splits an expression into tokens. Whitespace is skipped and only
// ASCII digits form numbers.
type Lexer struct {
	buf  *bufio.Reader
	pos  int
	last int
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, error) {
	r, n, err := l.buf.ReadRune()
	l.pos += n
	l.last = n
	return r, err
}

func (l *Lexer) unreadRune() error {
	err := l.buf.UnreadRune()
	if err == nil {
		l.pos -= l.last
		l.last = 0
	}
	return err
}

func (l *Lexer) skipWhite() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return l.unreadRune()
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Next returns the next token, or a TokenEOF token once the input is exhausted.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipWhite(); err != nil && err != io.EOF {
		return Token{}, err
	}
	start := l.pos
	r, err := l.readRune()
	if err == io.EOF {
		return Token{Kind: TokenEOF, Pos: start}, nil
	}
	if err != nil {
		return Token{}, err
	}

	switch {
	case isDigit(r):
		l.unreadRune()
		return l.number()
	case isOp(r):
		return Token{Kind: TokenOperator, Op: Op(r), Pos: start}, nil
	}
	e := newError(ErrInvalidCharacter, start)
	e.Char = r
	return Token{}, e
}

func (l *Lexer) number() (Token, error) {
	start := l.pos
	var v int64
	for {
		r, err := l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		d := int64(r - '0')
		if v > (math.MaxInt64-d)/10 {
			return Token{}, newError(ErrNumberOverflow, start)
		}
		v = v*10 + d
	}
	return Token{Kind: TokenNumber, Value: v, Pos: start}, nil
}

// Tokenize returns every token of expr, excluding the trailing TokenEOF.
func Tokenize(expr string) ([]Token, error) {
	return tokenize(NewLexer(strings.NewReader(expr)))
}

func tokenize(l *Lexer) ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
