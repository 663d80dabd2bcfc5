package infix

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mattn/infix/internal/golden"
)

func TestGolden(t *testing.T) {
	cases, err := golden.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no golden cases")
	}

	for _, gc := range cases {
		t.Log(gc.Name)
		v, err := Evaluate(gc.Expr)
		if err != nil {
			if diff := cmp.Diff(gc.WantErr, err.Error()); diff != "" {
				t.Errorf("%s: %s", gc.Name, diff)
			}
			continue
		}
		if gc.WantErr != "" {
			t.Errorf("%s: want error %q but got %d", gc.Name, gc.WantErr, v)
			continue
		}
		if diff := cmp.Diff(gc.Want, strconv.FormatInt(v, 10)); diff != "" {
			t.Errorf("%s: %s", gc.Name, diff)
		}
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		op   Op
		want int
	}{
		{OpAdd, 1},
		{OpSub, 1},
		{OpMul, 2},
		{OpDiv, 2},
		{Op('%'), 0},
	}
	for _, test := range tests {
		if got := test.op.Precedence(); got != test.want {
			t.Errorf("want %d for %v but got %d", test.want, test.op, got)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		op          Op
		left, right int64
		want        int64
		err         error
	}{
		{OpAdd, 2, 3, 5, nil},
		{OpAdd, math.MaxInt64, 1, 0, ErrArithmeticOverflow},
		{OpAdd, math.MinInt64, -1, 0, ErrArithmeticOverflow},
		{OpAdd, math.MaxInt64, math.MinInt64, -1, nil},
		{OpSub, 10, 4, 6, nil},
		{OpSub, math.MinInt64, 1, 0, ErrArithmeticOverflow},
		{OpSub, 0, math.MinInt64, 0, ErrArithmeticOverflow},
		{OpSub, -1, math.MinInt64, math.MaxInt64, nil},
		{OpMul, 6, 7, 42, nil},
		{OpMul, 0, math.MinInt64, 0, nil},
		{OpMul, math.MaxInt64, 2, 0, ErrArithmeticOverflow},
		{OpMul, math.MinInt64, -1, 0, ErrArithmeticOverflow},
		{OpMul, -1, math.MinInt64, 0, ErrArithmeticOverflow},
		{OpMul, 1 << 32, 1 << 31, 0, ErrArithmeticOverflow},
		{OpMul, -(1 << 31), 1 << 32, math.MinInt64, nil},
		{OpDiv, 10, 3, 3, nil},
		{OpDiv, -7, 2, -3, nil},
		{OpDiv, 7, -2, -3, nil},
		{OpDiv, 10, 0, 0, ErrDivisionByZero},
		{OpDiv, math.MinInt64, -1, 0, ErrArithmeticOverflow},
	}
	for _, test := range tests {
		got, err := test.op.Apply(test.left, test.right)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%d %v %d: want %v but got %v", test.left, test.op, test.right, test.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d %v %d: %v", test.left, test.op, test.right, err)
			continue
		}
		if got != test.want {
			t.Errorf("%d %v %d: want %d but got %d", test.left, test.op, test.right, test.want, got)
		}
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	_, err := Op('%').Apply(1, 2)
	if err == nil {
		t.Fatal("want error for unknown operator")
	}
	var ie *Error
	if errors.As(err, &ie) {
		t.Errorf("unknown operator should not be an evaluation error: %v", err)
	}
}
