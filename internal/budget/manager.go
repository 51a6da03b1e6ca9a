// Package budget implements the income/expense/savings model and its JSON
// persistence.
package budget

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

var (
	// ErrInvalidIncome is returned for a negative income.
	ErrInvalidIncome = errors.New("income cannot be negative")
	// ErrInvalidGoal is returned for a negative savings goal.
	ErrInvalidGoal = errors.New("savings goal cannot be negative")
	// ErrPersistence wraps I/O failures while writing the data file.
	ErrPersistence = errors.New("saving budget data")
)

// Manager owns the whole budget state: income, savings goal, and all
// categories keyed by normalized name. One instance per process run; not
// safe for concurrent use, and the data file assumes a single process.
type Manager struct {
	Income      float64              `json:"income"`
	SavingsGoal float64              `json:"savings_goal"`
	Categories  map[string]*Category `json:"categories"`

	path   string
	loaded bool
}

// Open builds a manager bound to the given data file and loads any state
// persisted there. A missing file is a normal first run; an unreadable or
// corrupt file is logged to stderr and discarded. Neither is an error, so
// the program always starts usable.
func Open(path string) *Manager {
	m := &Manager{
		Categories: make(map[string]*Category),
		path:       path,
	}
	m.load()
	return m
}

// Path returns the data file this manager reads and writes.
func (m *Manager) Path() string { return m.path }

// Loaded reports whether state actually came from an existing readable
// file, as opposed to zero-valued defaults.
func (m *Manager) Loaded() bool { return m.loaded }

// SetIncome replaces the stored income. Negative values fail with
// ErrInvalidIncome.
func (m *Manager) SetIncome(amount float64) error {
	if amount < 0 || !isFinite(amount) {
		return ErrInvalidIncome
	}
	m.Income = amount
	return nil
}

// SetSavingsGoal replaces the stored goal. Negative values fail with
// ErrInvalidGoal.
func (m *Manager) SetSavingsGoal(amount float64) error {
	if amount < 0 || !isFinite(amount) {
		return ErrInvalidGoal
	}
	m.SavingsGoal = amount
	return nil
}

// AddExpense records an expense under the normalized category name,
// creating the category on first use. Expense construction failures
// propagate and leave no empty category behind.
func (m *Manager) AddExpense(categoryName string, amount float64, description, date string) error {
	name := Normalize(categoryName)
	c, ok := m.Categories[name]
	if !ok {
		c = NewCategory(name)
	}
	if err := c.AddExpense(amount, description, date); err != nil {
		return err
	}
	if !ok {
		m.Categories[name] = c
	}
	return nil
}

// TotalExpenses sums every category's total; 0 when no categories exist.
func (m *Manager) TotalExpenses() float64 {
	var sum float64
	for _, c := range m.Categories {
		sum += c.Total()
	}
	return sum
}

// CategoryNames returns all category names sorted for stable rendering.
func (m *Manager) CategoryNames() []string {
	names := make([]string, 0, len(m.Categories))
	for name := range m.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Progress is the standing against the savings goal at time of query.
// CurrentSavings is derived, not a stored balance.
type Progress struct {
	OnTrack        bool
	CurrentSavings float64
	Needed         float64
}

// ProgressTowardGoal computes savings progress. Savings exactly equal to
// the goal count as on track with nothing further needed.
func (m *Manager) ProgressTowardGoal() Progress {
	savings := m.Income - m.TotalExpenses()
	needed := m.SavingsGoal - savings
	if needed < 0 {
		needed = 0
	}
	return Progress{
		OnTrack:        savings >= m.SavingsGoal,
		CurrentSavings: savings,
		Needed:         needed,
	}
}

// Save writes the whole model as one JSON document, overwriting any
// previous file. Failures are surfaced wrapped in ErrPersistence; the
// caller decides whether that is fatal.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// load restores state from the data file. Corruption is deliberately
// absorbed: the diagnostic goes to stderr and the manager keeps its
// defaults, trading the bad file's contents for availability.
func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "budgeteer: cannot read %s: %v (starting fresh)\n", m.path, err)
		}
		return
	}

	var decoded Manager
	if err := json.Unmarshal(data, &decoded); err != nil {
		fmt.Fprintf(os.Stderr, "budgeteer: discarding corrupt data file %s: %v (starting fresh)\n", m.path, err)
		return
	}

	m.Income = decoded.Income
	m.SavingsGoal = decoded.SavingsGoal
	if decoded.Categories != nil {
		m.Categories = decoded.Categories
	}
	m.loaded = true
}
