// Package infix evaluates integer infix expressions such as "2*3+5/6*3+15".
//
// The grammar is non-negative decimal literals joined by the binary operators
// + - * /, with whitespace allowed anywhere between tokens. '*' and '/' bind
// tighter than '+' and '-', and operators of equal precedence associate to the
// left. Division truncates toward zero.
//
// Evaluation is a single left-to-right pass over the tokens with an operand
// stack and an operator stack: before an operator is pushed, every pending
// operator of greater or equal precedence is reduced.
//
// All arithmetic is done in int64 and is checked. Failures are returned as an
// *Error wrapping one of ErrEmptyExpression, ErrInvalidCharacter,
// ErrNumberOverflow, ErrArithmeticOverflow, ErrDivisionByZero or
// ErrMalformedExpression.
//
//	v, err := infix.Evaluate("3 + 5 * 2") // 13, nil
//	_, err = infix.Evaluate("10 / 0")     // errors.Is(err, infix.ErrDivisionByZero)
package infix
