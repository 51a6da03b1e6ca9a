package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"budgeteer/internal/budget"
	"budgeteer/internal/config"
	"budgeteer/internal/history"

	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagTheme    string
)

var rootCmd = &cobra.Command{
	Use:   "budgeteer",
	Short: "Personal budgeting CLI",
	Long:  "Track income, categorized expenses, and savings goals from the terminal.",
	RunE:  runMenu,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Budget data file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (default from config)")
}

// loadConfig never fails the command: an unreadable config degrades to
// defaults with a note, same policy as a corrupt data file.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	return cfg
}

func dataFilePath(cfg config.Config) string {
	if flagDataFile != "" {
		return flagDataFile
	}
	return cfg.DataFile()
}

func themeName(cfg config.Config) string {
	if flagTheme != "" {
		return flagTheme
	}
	return cfg.Appearance.Theme
}

// openManager is the shared data loading path used by all commands.
func openManager(cfg config.Config) (*budget.Manager, error) {
	path := dataFilePath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return budget.Open(path), nil
}

// saveAll persists the manager and appends a history snapshot. Journal
// failures are reported but never block the save.
func saveAll(m *budget.Manager, cfg config.Config) error {
	if err := m.Save(); err != nil {
		return err
	}
	if cfg.History.Enabled {
		recordSnapshot(m, cfg)
	}
	return nil
}

func recordSnapshot(m *budget.Manager, cfg config.Config) {
	j, err := history.Open(cfg.HistoryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "  History journal unavailable: %v\n", err)
		return
	}
	defer j.Close()

	err = j.Append(history.Snapshot{
		Income:        m.Income,
		SavingsGoal:   m.SavingsGoal,
		TotalExpenses: m.TotalExpenses(),
		Categories:    len(m.Categories),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Could not record history snapshot: %v\n", err)
	}
}
