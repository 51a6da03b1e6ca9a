package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"budgeteer/internal/budget"
	"budgeteer/internal/cli"
	"budgeteer/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// runMenu is the default action: an interactive session mirroring the
// classic numbered menu. State is held in memory and written to disk on
// "Save & exit" only.
func runMenu(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	m, err := openManager(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PERSONAL BUDGETING"))
	if !m.Loaded() {
		fmt.Println("  Starting with a fresh budget.")
	}

	for {
		choice, err := menuSelect()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("  Exiting without saving.")
				return nil
			}
			return err
		}

		// Every handler absorbs its own errors so the session loop
		// stays alive; validation failures re-prompt inside the form.
		switch choice {
		case "income":
			menuSetIncome(m)
		case "goal":
			menuSetGoal(m)
		case "expense":
			menuAddExpense(m)
		case "totals":
			menuTotals(m)
		case "progress":
			menuProgress(m)
		case "chart":
			menuChart(m)
		case "exit":
			if menuSaveAndExit(m, cfg) {
				return nil
			}
		}
	}
}

func menuSelect() (string, error) {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Menu").
			Options(
				huh.NewOption("Set income", "income"),
				huh.NewOption("Set savings goal", "goal"),
				huh.NewOption("Add expense", "expense"),
				huh.NewOption("View total expenses", "totals"),
				huh.NewOption("View savings progress", "progress"),
				huh.NewOption("Chart expenses", "chart"),
				huh.NewOption("Save & exit", "exit"),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// validNumber builds a re-prompting validator for monetary input.
func validNumber(allowZero bool) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("enter a valid number")
		}
		if v < 0 {
			return errors.New("value cannot be negative")
		}
		if !allowZero && v == 0 {
			return errors.New("value must be greater than zero")
		}
		return nil
	}
}

func validNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

func validDateInput(s string) error {
	return validDate(strings.TrimSpace(s))
}

func parseAmount(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func menuSetIncome(m *budget.Manager) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Monthly income").
			Placeholder("5000").
			Validate(validNumber(true)).
			Value(&raw),
	))
	if err := form.Run(); err != nil {
		return
	}
	amount := parseAmount(raw)
	if err := m.SetIncome(amount); err != nil {
		fmt.Fprintf(os.Stderr, "  Error setting income: %v\n", err)
		return
	}
	fmt.Printf("  Income set to %s\n", cli.FormatMoney(amount))
}

func menuSetGoal(m *budget.Manager) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Savings goal").
			Placeholder("1000").
			Validate(validNumber(true)).
			Value(&raw),
	))
	if err := form.Run(); err != nil {
		return
	}
	amount := parseAmount(raw)
	if err := m.SetSavingsGoal(amount); err != nil {
		fmt.Fprintf(os.Stderr, "  Error setting savings goal: %v\n", err)
		return
	}
	fmt.Printf("  Savings goal set to %s\n", cli.FormatMoney(amount))
}

func menuAddExpense(m *budget.Manager) {
	var category, rawAmount, description, date string
	date = time.Now().Format("2006-01-02")

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Category").
			Placeholder("rent, groceries, ...").
			Validate(validNonEmpty).
			Value(&category),
		huh.NewInput().
			Title("Amount").
			Validate(validNumber(false)).
			Value(&rawAmount),
		huh.NewInput().
			Title("Description").
			Validate(validNonEmpty).
			Value(&description),
		huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Validate(validDateInput).
			Value(&date),
	))
	if err := form.Run(); err != nil {
		return
	}

	amount := parseAmount(rawAmount)
	if err := m.AddExpense(category, amount, strings.TrimSpace(description), strings.TrimSpace(date)); err != nil {
		fmt.Fprintf(os.Stderr, "  Error adding expense: %v\n", err)
		return
	}
	fmt.Printf("  Added %s for %s on %s\n", cli.FormatMoney(amount), budget.Normalize(category), strings.TrimSpace(date))
}

func menuTotals(m *budget.Manager) {
	fmt.Printf("\n  Total expenses: %s\n", cli.FormatMoney(m.TotalExpenses()))
	for _, name := range m.CategoryNames() {
		if total := m.Categories[name].Total(); total > 0 {
			fmt.Printf("    %s: %s\n", cli.TitleCase(name), cli.FormatMoney(total))
		}
	}
	fmt.Println()
}

func menuProgress(m *budget.Manager) {
	p := m.ProgressTowardGoal()
	fmt.Println()
	fmt.Printf("  Income:          %s\n", cli.FormatMoney(m.Income))
	fmt.Printf("  Total Expenses:  %s\n", cli.FormatMoney(m.TotalExpenses()))
	fmt.Printf("  Current Savings: %s\n", cli.FormatMoney(p.CurrentSavings))
	fmt.Printf("  Savings Goal:    %s\n", cli.FormatMoney(m.SavingsGoal))
	if p.OnTrack {
		fmt.Println("  " + cli.RenderGood("You are on track!"))
	} else {
		fmt.Println("  " + cli.RenderWarn(fmt.Sprintf("You need %s more to reach your goal.", cli.FormatMoney(p.Needed))))
	}
	fmt.Println()
}

func menuChart(m *budget.Manager) {
	var labels []string
	var totals []float64
	for _, name := range m.CategoryNames() {
		if total := m.Categories[name].Total(); total > 0 {
			labels = append(labels, cli.TitleCase(name))
			totals = append(totals, total)
		}
	}
	fmt.Println()
	fmt.Print(cli.RenderBars(labels, totals, 40))
	fmt.Println()
}

// menuSaveAndExit returns true when the session should end.
func menuSaveAndExit(m *budget.Manager, cfg config.Config) bool {
	if err := saveAll(m, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "  Error saving data: %v\n", err)
		exitAnyway := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Exit without saving?").
				Value(&exitAnyway),
		))
		if err := confirm.Run(); err != nil {
			return true
		}
		return exitAnyway
	}
	fmt.Println("  Data saved. Goodbye!")
	return true
}
