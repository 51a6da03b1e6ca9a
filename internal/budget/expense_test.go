package budget

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestNewExpense_KeepsFieldsExactly(t *testing.T) {
	e, err := NewExpense(50.00, "Weekly shopping", "2025-10-20")
	if err != nil {
		t.Fatalf("NewExpense returned error: %v", err)
	}
	if e.Amount != 50.00 {
		t.Fatalf("Amount = %v, want 50.00", e.Amount)
	}
	if e.Description != "Weekly shopping" {
		t.Fatalf("Description = %q, want %q", e.Description, "Weekly shopping")
	}
	if e.Date != "2025-10-20" {
		t.Fatalf("Date = %q, want %q", e.Date, "2025-10-20")
	}
}

func TestNewExpense_RejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []float64{0, -0.01, -10} {
		_, err := NewExpense(amount, "invalid", "2025-10-20")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("NewExpense(%v) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestNewExpense_RejectsNonFiniteAmounts(t *testing.T) {
	// NaN slips past naive <= 0 checks and can never be marshaled to JSON.
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewExpense(amount, "invalid", "2025-10-20")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("NewExpense(%v) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestExpenseUnmarshal_RejectsCorruptAmount(t *testing.T) {
	var e Expense
	err := json.Unmarshal([]byte(`{"amount": 0, "description": "bad", "date": "2025-10-20"}`), &e)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("unmarshal error = %v, want ErrInvalidAmount", err)
	}
}

func TestExpenseUnmarshal_Valid(t *testing.T) {
	var e Expense
	err := json.Unmarshal([]byte(`{"amount": 100.0, "description": "Monthly rent", "date": "2025-10-01"}`), &e)
	if err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if e.Amount != 100.0 || e.Description != "Monthly rent" || e.Date != "2025-10-01" {
		t.Fatalf("decoded expense = %+v, want 100.0/Monthly rent/2025-10-01", e)
	}
}
