package cli

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-3, "-$3.00"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney_NonFiniteDoesNotPanic(t *testing.T) {
	// Non-finite amounts never reach the model, but the formatter must
	// not slice at a missing decimal point if one ever leaks through.
	if got := FormatMoney(math.NaN()); got != "$NaN" {
		t.Fatalf("FormatMoney(NaN) = %q, want %q", got, "$NaN")
	}
	if got := FormatMoney(math.Inf(1)); got != "$+Inf" {
		t.Fatalf("FormatMoney(+Inf) = %q, want %q", got, "$+Inf")
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{2.5, "2.5"},
		{-0.25, "-0.25"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.in); got != tc.want {
			t.Fatalf("FormatValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.825); got != "82.5%" {
		t.Fatalf("FormatPercent(0.825) = %q, want %q", got, "82.5%")
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"groceries", "Groceries"},
		{"éclairs", "Éclairs"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Fatalf("TitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
