// Package semantics defines the arithmetic of the binary operators.
package semantics

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownOperator = errors.New("unknown operator")
)

// ZeroDivisorError is returned by / and % when the right operand is zero.
type ZeroDivisorError struct {
	Op string
}

func (e ZeroDivisorError) Error() string {
	if e.Op == "%" {
		return "modulo by zero"
	}
	return "division by zero"
}

func (e ZeroDivisorError) Unwrap() error {
	return ErrDivisionByZero
}

var operators = map[string]bool{
	"+": true,
	"-": true,
	"*": true,
	"/": true,
	"%": true,
}

func IsBinaryOp(tok string) bool {
	return operators[tok]
}

// BinaryOp applies op to a (left, pushed first) and b (right, top of stack).
// % truncates like /, so the result takes the sign of a.
func BinaryOp(op string, a, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ZeroDivisorError{Op: op}
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return 0, ZeroDivisorError{Op: op}
		}
		return math.Mod(a, b), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	}
}
