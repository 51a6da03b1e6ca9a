package cmd

import (
	"fmt"

	"budgeteer/internal/cli"
	"budgeteer/internal/history"
	"budgeteer/internal/tui/components"
	"budgeteer/internal/tui/theme"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved budget snapshots",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of snapshots to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if !cfg.History.Enabled {
		fmt.Println("\n  History is disabled in config.")
		return nil
	}

	j, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return err
	}
	defer j.Close()

	snaps, err := j.Recent(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("\n  No snapshots recorded yet. Snapshots are written on every save.")
		return nil
	}

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.SavedAt.Local().Format("2006-01-02 15:04"),
			cli.FormatMoney(s.Income),
			cli.FormatMoney(s.SavingsGoal),
			cli.FormatMoney(s.TotalExpenses),
			fmt.Sprintf("%d", s.Categories),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Save History",
		Headers: []string{"Saved At", "Income", "Goal", "Expenses", "Categories"},
		Rows:    rows,
	}))

	// Snapshots arrive newest first; the trend reads oldest to newest.
	if len(snaps) > 1 {
		theme.Active = theme.ByName(themeName(cfg))
		trend := make([]float64, len(snaps))
		for i, s := range snaps {
			trend[len(snaps)-1-i] = s.TotalExpenses
		}
		fmt.Printf("\n  Spending trend  %s\n", components.Sparkline(trend))
	}
	return nil
}
