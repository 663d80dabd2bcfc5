package infix

import (
	"fmt"
	"math"
	"strings"
)

// Op is a binary arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

func isOp(r rune) bool {
	return strings.ContainsRune("+-*/", r)
}

func (op Op) String() string {
	return string(rune(op))
}

// Precedence returns 2 for '*' and '/', 1 for '+' and '-', 0 otherwise.
func (op Op) Precedence() int {
	switch op {
	case OpMul, OpDiv:
		return 2
	case OpAdd, OpSub:
		return 1
	}
	return 0
}

// Apply computes left op right. Every operator is overflow-checked and
// division truncates toward zero.
func (op Op) Apply(left, right int64) (int64, error) {
	switch op {
	case OpAdd:
		r := left + right
		if (right > 0 && r < left) || (right < 0 && r > left) {
			return 0, op.fail(ErrArithmeticOverflow, left, right)
		}
		return r, nil
	case OpSub:
		r := left - right
		if (right > 0 && r > left) || (right < 0 && r < left) {
			return 0, op.fail(ErrArithmeticOverflow, left, right)
		}
		return r, nil
	case OpMul:
		if left == 0 || right == 0 {
			return 0, nil
		}
		if (left == -1 && right == math.MinInt64) || (right == -1 && left == math.MinInt64) {
			return 0, op.fail(ErrArithmeticOverflow, left, right)
		}
		r := left * right
		if r/right != left {
			return 0, op.fail(ErrArithmeticOverflow, left, right)
		}
		return r, nil
	case OpDiv:
		if right == 0 {
			return 0, op.fail(ErrDivisionByZero, left, right)
		}
		if left == math.MinInt64 && right == -1 {
			return 0, op.fail(ErrArithmeticOverflow, left, right)
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("infix: unknown operator %q", rune(op))
}

func (op Op) fail(kind error, left, right int64) *Error {
	return &Error{
		Kind:  kind,
		Pos:   -1,
		Op:    op,
		Left:  left,
		Right: right,
	}
}
