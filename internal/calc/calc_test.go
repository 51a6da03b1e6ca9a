package calc

import (
	"errors"
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{5, 3, 8},
		{-5, -3, -8},
		{10, -5, 5},
		{0, 5, 5},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := Add(tc.a, tc.b); got != tc.want {
			t.Fatalf("Add(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
	if got := Add(0.1, 0.2); math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("Add(0.1, 0.2) = %v, want ~0.3", got)
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{10, 5, 5},
		{-5, -3, -2},
		{10, -5, 15},
		{5, 0, 5},
		{5, 5, 0},
	}
	for _, tc := range cases {
		if got := Subtract(tc.a, tc.b); got != tc.want {
			t.Fatalf("Subtract(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{5, 3, 15},
		{-5, 3, -15},
		{-5, -3, 15},
		{100, 0, 0},
		{2.5, 4, 10},
	}
	for _, tc := range cases {
		if got := Multiply(tc.a, tc.b); got != tc.want {
			t.Fatalf("Multiply(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDivide(t *testing.T) {
	got, err := Divide(10, 4)
	if err != nil {
		t.Fatalf("Divide(10, 4) returned error: %v", err)
	}
	if got != 2.5 {
		t.Fatalf("Divide(10, 4) = %v, want 2.5", got)
	}

	if _, err := Divide(5, 0); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Divide(5, 0) error = %v, want ErrDivideByZero", err)
	}
}

func TestApply(t *testing.T) {
	got, err := Apply(OpMultiply, 6, 7)
	if err != nil {
		t.Fatalf("Apply(mul) returned error: %v", err)
	}
	if got != 42 {
		t.Fatalf("Apply(mul, 6, 7) = %v, want 42", got)
	}

	if _, err := Apply(Op("mod"), 1, 2); !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("Apply(mod) error = %v, want ErrUnknownOp", err)
	}
	if _, err := Apply(OpDivide, 1, 0); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Apply(div, 1, 0) error = %v, want ErrDivideByZero", err)
	}
}
