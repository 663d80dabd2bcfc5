package infix_test

import (
	"errors"
	"fmt"

	"github.com/mattn/infix"
)

func ExampleEvaluate() {
	for _, expr := range []string{"3 + 5 * 2", " 10 - 4 / 2 ", "2*3+5/6*3+15", "100 / 2 / 5"} {
		v, err := infix.Evaluate(expr)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%q = %d\n", expr, v)
	}

	// Output:
	// "3 + 5 * 2" = 13
	// " 10 - 4 / 2 " = 8
	// "2*3+5/6*3+15" = 21
	// "100 / 2 / 5" = 10
}

func ExampleEvaluate_errors() {
	for _, expr := range []string{"3 +", "10 * * 5", "a + 5", "10 / 0"} {
		_, err := infix.Evaluate(expr)
		fmt.Println(err, errors.Is(err, infix.ErrMalformedExpression))
	}

	// Output:
	// infix: malformed expression: missing operand for '+' (2) true
	// infix: malformed expression: missing operand for '*' (3) true
	// infix: invalid character: 'a' (0) false
	// infix: division by zero: 10 / 0 (3) false
}

func ExampleTokenize() {
	tokens, _ := infix.Tokenize("12*3 - 4")
	for _, tok := range tokens {
		fmt.Printf("%d:%v ", tok.Pos, tok)
	}
	fmt.Println()

	// Output:
	// 0:12 2:* 3:3 5:- 7:4
}
