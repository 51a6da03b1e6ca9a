package cmd

import (
	"fmt"

	"budgeteer/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Total expenses with per-category breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	m, err := openManager(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSE SUMMARY"))
	fmt.Println()

	rows := [][]string{}
	for _, name := range m.CategoryNames() {
		c := m.Categories[name]
		if total := c.Total(); total > 0 {
			rows = append(rows, []string{
				cli.TitleCase(name),
				fmt.Sprintf("%d", len(c.Expenses)),
				cli.FormatMoney(total),
			})
		}
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", cli.FormatMoney(m.TotalExpenses())})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Entries", "Amount"},
		Rows:    rows,
	}))
	return nil
}
