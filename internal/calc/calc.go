// Package calc implements the arithmetic behind the calc command.
package calc

import "errors"

// ErrDivideByZero is returned when the divisor is zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// Op identifies one of the four supported operations.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "sub"
	OpMultiply Op = "mul"
	OpDivide   Op = "div"
)

// ErrUnknownOp is returned by Apply for an unrecognized operation name.
var ErrUnknownOp = errors.New("unknown operation")

// Symbol returns the display symbol for the operation.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return "?"
}

func Add(a, b float64) float64      { return a + b }
func Subtract(a, b float64) float64 { return a - b }
func Multiply(a, b float64) float64 { return a * b }

// Divide returns a/b, or ErrDivideByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Apply dispatches op over the two operands.
func Apply(op Op, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	}
	return 0, ErrUnknownOp
}
