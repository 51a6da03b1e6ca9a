package cmd

import (
	"fmt"

	"budgeteer/internal/cli"
	"budgeteer/internal/tui/components"
	"budgeteer/internal/tui/theme"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Savings progress toward the goal",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.Active = theme.ByName(themeName(cfg))
	m, err := openManager(cfg)
	if err != nil {
		return err
	}

	p := m.ProgressTowardGoal()

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS PROGRESS"))
	fmt.Println()
	rows := [][]string{
		{"Income", cli.FormatMoney(m.Income)},
		{"Total Expenses", cli.FormatMoney(m.TotalExpenses())},
		{"Current Savings", cli.FormatMoney(p.CurrentSavings)},
		{"Savings Goal", cli.FormatMoney(m.SavingsGoal)},
	}
	if m.SavingsGoal > 0 {
		rows = append(rows, []string{"Goal Progress", cli.FormatPercent(p.CurrentSavings / m.SavingsGoal)})
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	fmt.Println()

	if m.SavingsGoal > 0 {
		fmt.Println("  " + components.GoalBar("Goal", p.CurrentSavings/m.SavingsGoal, 4, 30))
		fmt.Println()
	}

	if p.OnTrack {
		fmt.Println("  " + cli.RenderGood("You are on track!"))
	} else {
		fmt.Println("  " + cli.RenderWarn(fmt.Sprintf("You need %s more to reach your goal.", cli.FormatMoney(p.Needed))))
	}
	fmt.Println()
	return nil
}
