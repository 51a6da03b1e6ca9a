// Package history provides a SQLite-backed journal of saved budget states.
// One row is appended per successful save; journal failures never block a
// save.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Journal is an append-only record of budget snapshots.
type Journal struct {
	db *sql.DB
}

// Snapshot is the state recorded at one save.
type Snapshot struct {
	ID            int64
	SavedAt       time.Time
	Income        float64
	SavingsGoal   float64
	TotalExpenses float64
	Categories    int
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append records one snapshot. A zero SavedAt is stamped with the current
// time.
func (j *Journal) Append(s Snapshot) error {
	savedAt := s.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := j.db.Exec(`INSERT INTO snapshots
		(saved_at, income, savings_goal, total_expenses, categories)
		VALUES (?, ?, ?, ?, ?)`,
		savedAt.UTC().Format(time.RFC3339),
		s.Income, s.SavingsGoal, s.TotalExpenses, s.Categories,
	)
	return err
}

// Recent returns up to limit snapshots, newest first.
func (j *Journal) Recent(limit int) ([]Snapshot, error) {
	rows, err := j.db.Query(`SELECT id, saved_at, income, savings_goal, total_expenses, categories
		FROM snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []Snapshot
	for rows.Next() {
		var s Snapshot
		var savedAt string
		if err := rows.Scan(&s.ID, &savedAt, &s.Income, &s.SavingsGoal, &s.TotalExpenses, &s.Categories); err != nil {
			return nil, err
		}
		s.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// Count returns the number of recorded snapshots.
func (j *Journal) Count() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count)
	return count, err
}
