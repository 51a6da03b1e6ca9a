package budget

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAmount is returned when an expense amount is zero, negative,
// or not a finite number.
var ErrInvalidAmount = errors.New("expense amount must be positive")

// isFinite reports whether v is an ordinary number. NaN and the infinities
// pass naive comparisons (NaN <= 0 is false) and cannot be marshaled to
// JSON, so they are rejected everywhere an amount enters the model.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Expense is a single spending record. Fields are set at construction and
// never mutated afterwards.
type Expense struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD, validated by the CLI layer
}

// NewExpense validates and builds an expense. A non-positive amount fails
// with ErrInvalidAmount and no partial value is produced.
func NewExpense(amount float64, description, date string) (Expense, error) {
	if amount <= 0 || !isFinite(amount) {
		return Expense{}, ErrInvalidAmount
	}
	return Expense{Amount: amount, Description: description, Date: date}, nil
}

// UnmarshalJSON routes decoding through NewExpense so a corrupt persisted
// amount fails the same invariant as user input.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var raw struct {
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		Date        string  `json:"date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	exp, err := NewExpense(raw.Amount, raw.Description, raw.Date)
	if err != nil {
		return fmt.Errorf("expense %q: %w", raw.Description, err)
	}
	*e = exp
	return nil
}

func (e Expense) String() string {
	return fmt.Sprintf("$%.2f %q on %s", e.Amount, e.Description, e.Date)
}
