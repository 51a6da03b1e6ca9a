package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestAppendRecent(t *testing.T) {
	j := openTestJournal(t)

	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := j.Append(Snapshot{
			SavedAt:       base.AddDate(0, 0, i),
			Income:        5000,
			SavingsGoal:   1000,
			TotalExpenses: float64(100 * (i + 1)),
			Categories:    i + 1,
		})
		if err != nil {
			t.Fatalf("Append #%d returned error: %v", i, err)
		}
	}

	count, err := j.Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("Count = %d, want 3", count)
	}

	snaps, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("Recent(2) returned %d snapshots, want 2", len(snaps))
	}
	// Newest first.
	if snaps[0].TotalExpenses != 300 || snaps[1].TotalExpenses != 200 {
		t.Fatalf("Recent order = [%v, %v], want [300, 200]", snaps[0].TotalExpenses, snaps[1].TotalExpenses)
	}
	if !snaps[0].SavedAt.Equal(base.AddDate(0, 0, 2)) {
		t.Fatalf("SavedAt = %v, want %v", snaps[0].SavedAt, base.AddDate(0, 0, 2))
	}
}

func TestRecent_EmptyJournal(t *testing.T) {
	j := openTestJournal(t)
	snaps, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(snaps) != 0 {
		t.Fatalf("Recent on empty journal returned %d snapshots, want 0", len(snaps))
	}
}
