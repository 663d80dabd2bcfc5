package infix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyExpression indicates the input holds no tokens at all.
	ErrEmptyExpression = errors.New("infix: empty expression")
	// ErrInvalidCharacter indicates a rune outside digits, operators and whitespace.
	ErrInvalidCharacter = errors.New("infix: invalid character")
	// ErrNumberOverflow indicates a digit run that does not fit in an int64.
	ErrNumberOverflow = errors.New("infix: number literal overflows int64")
	// ErrArithmeticOverflow indicates an intermediate result outside the int64 range.
	ErrArithmeticOverflow = errors.New("infix: arithmetic overflow")
	// ErrDivisionByZero indicates a '/' whose right operand is zero.
	ErrDivisionByZero = errors.New("infix: division by zero")
	// ErrMalformedExpression indicates operators and operands that do not pair up.
	ErrMalformedExpression = errors.New("infix: malformed expression")
)

// Error describes a failed evaluation. Kind is one of the Err* sentinels above,
// so callers can match with errors.Is and inspect details with errors.As.
type Error struct {
	Kind error
	// Pos is the byte offset the failure is attributed to, or -1.
	Pos  int
	Char rune
	Op   Op

	// Left and Right are the operands of a failed reduction.
	Left  int64
	Right int64
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	switch e.Kind {
	case ErrInvalidCharacter:
		fmt.Fprintf(&b, ": %q", e.Char)
	case ErrArithmeticOverflow, ErrDivisionByZero:
		fmt.Fprintf(&b, ": %d %v %d", e.Left, e.Op, e.Right)
	case ErrMalformedExpression:
		if e.Op != 0 {
			fmt.Fprintf(&b, ": missing operand for '%v'", e.Op)
		}
	}
	if e.Pos >= 0 {
		fmt.Fprintf(&b, " (%d)", e.Pos)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, pos int) *Error {
	return &Error{Kind: kind, Pos: pos}
}
