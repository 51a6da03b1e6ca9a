package cmd

import (
	"fmt"

	"budgeteer/internal/cli"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Bar chart of expenses by category",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	m, err := openManager(cfg)
	if err != nil {
		return err
	}

	var labels []string
	var totals []float64
	for _, name := range m.CategoryNames() {
		if total := m.Categories[name].Total(); total > 0 {
			labels = append(labels, cli.TitleCase(name))
			totals = append(totals, total)
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSES BY CATEGORY"))
	fmt.Println()
	fmt.Print(cli.RenderBars(labels, totals, 40))
	fmt.Println()
	return nil
}
