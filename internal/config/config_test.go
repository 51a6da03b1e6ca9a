package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.History.Enabled {
		t.Fatal("default History.Enabled = false, want true")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q, want %q", cfg.Appearance.Theme, "flexoki-dark")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataFile = "/tmp/my-budget.json"
	cfg.Appearance.Theme = "terminal"
	cfg.History.Enabled = false

	if err := Save(cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.General.DataFile != "/tmp/my-budget.json" {
		t.Fatalf("DataFile = %q, want %q", loaded.General.DataFile, "/tmp/my-budget.json")
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Fatalf("theme = %q, want %q", loaded.Appearance.Theme, "terminal")
	}
	if loaded.History.Enabled {
		t.Fatal("History.Enabled = true, want false")
	}
}

func TestDataFile_DefaultsUnderDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	cfg := DefaultConfig()
	want := filepath.Join(dir, "budgeteer", "budget_data.json")
	if got := cfg.DataFile(); got != want {
		t.Fatalf("DataFile = %q, want %q", got, want)
	}

	cfg.General.DataFile = string(os.PathSeparator) + "elsewhere.json"
	if got := cfg.DataFile(); got != cfg.General.DataFile {
		t.Fatalf("explicit DataFile = %q, want %q", got, cfg.General.DataFile)
	}
}
