package budget

import (
	"errors"
	"testing"
)

func TestCategoryTotal_EmptyIsZero(t *testing.T) {
	c := NewCategory("groceries")
	if got := c.Total(); got != 0 {
		t.Fatalf("Total of empty category = %v, want 0", got)
	}
}

func TestCategoryTotal_SumsInsertionOrder(t *testing.T) {
	c := NewCategory("groceries")
	for _, amount := range []float64{50, 25.50, 10} {
		if err := c.AddExpense(amount, "shopping", "2025-10-20"); err != nil {
			t.Fatalf("AddExpense(%v) returned error: %v", amount, err)
		}
	}

	if got := c.Total(); got != 85.50 {
		t.Fatalf("Total = %v, want 85.50", got)
	}
	if len(c.Expenses) != 3 {
		t.Fatalf("expense count = %d, want 3", len(c.Expenses))
	}
	if c.Expenses[0].Amount != 50 || c.Expenses[2].Amount != 10 {
		t.Fatalf("expenses out of insertion order: %+v", c.Expenses)
	}
}

func TestCategoryAddExpense_PropagatesInvalidAmount(t *testing.T) {
	c := NewCategory("groceries")
	if err := c.AddExpense(-5, "invalid", "2025-10-20"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("AddExpense error = %v, want ErrInvalidAmount", err)
	}
	if len(c.Expenses) != 0 {
		t.Fatalf("failed add left %d expenses, want 0", len(c.Expenses))
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Groceries", "groceries"},
		{"  GROCERIES  ", "groceries"},
		{"rent", "rent"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	// Idempotent on its own output.
	if got := Normalize(Normalize("  Dining Out ")); got != "dining out" {
		t.Fatalf("double Normalize = %q, want %q", got, "dining out")
	}
}
