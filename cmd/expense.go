package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"budgeteer/internal/budget"
	"budgeteer/internal/cli"

	"github.com/spf13/cobra"
)

var flagExpenseDate string

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and list expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <category> <amount> <description>",
	Short: "Add an expense to a category",
	Args:  cobra.ExactArgs(3),
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List recorded expenses",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExpenseList,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", "Expense date, YYYY-MM-DD (default today)")
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	rootCmd.AddCommand(expenseCmd)
}

// validDate enforces the fixed YYYY-MM-DD calendar format. Date validation
// lives here at the CLI layer, not in the expense value itself.
func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD, e.g. 2025-10-25", s)
	}
	return nil
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	category := args[0]
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}
	description := strings.TrimSpace(args[2])
	if description == "" {
		return errors.New("description cannot be empty")
	}

	date := flagExpenseDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if err := validDate(date); err != nil {
		return err
	}

	cfg := loadConfig()
	m, err := openManager(cfg)
	if err != nil {
		return err
	}
	if err := m.AddExpense(category, amount, description, date); err != nil {
		return err
	}
	if err := saveAll(m, cfg); err != nil {
		return err
	}

	fmt.Printf("  Added %s for %s on %s\n", cli.FormatMoney(amount), budget.Normalize(category), date)
	return nil
}

func runExpenseList(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	m, err := openManager(cfg)
	if err != nil {
		return err
	}

	names := m.CategoryNames()
	if len(args) == 1 {
		name := budget.Normalize(args[0])
		if _, ok := m.Categories[name]; !ok {
			fmt.Printf("\n  No expenses recorded for %q.\n", name)
			return nil
		}
		names = []string{name}
	}

	var rows [][]string
	for _, name := range names {
		for _, e := range m.Categories[name].Expenses {
			rows = append(rows, []string{
				cli.TitleCase(name),
				e.Date,
				e.Description,
				cli.FormatMoney(e.Amount),
			})
		}
	}

	if len(rows) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Date", "Description", "Amount"},
		Rows:    rows,
	}))
	return nil
}
