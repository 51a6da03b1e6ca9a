package budget

import "strings"

// Category is a named bucket of expenses in insertion order. Duplicate
// entries are allowed.
type Category struct {
	Name     string    `json:"name"`
	Expenses []Expense `json:"expenses"`
}

// NewCategory creates an empty category with the given (already normalized)
// name.
func NewCategory(name string) *Category {
	return &Category{Name: name}
}

// AddExpense constructs an expense and appends it, propagating
// ErrInvalidAmount from construction.
func (c *Category) AddExpense(amount float64, description, date string) error {
	e, err := NewExpense(amount, description, date)
	if err != nil {
		return err
	}
	c.Expenses = append(c.Expenses, e)
	return nil
}

// Total recomputes the sum of all expense amounts on every call; nothing is
// cached, so it can never go stale. An empty category totals 0.
func (c *Category) Total() float64 {
	var sum float64
	for _, e := range c.Expenses {
		sum += e.Amount
	}
	return sum
}

// Normalize maps a user-entered category name to its canonical map key.
// "Groceries", " groceries " and "GROCERIES" all resolve to the same bucket.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
