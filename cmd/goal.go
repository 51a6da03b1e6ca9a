package cmd

import (
	"fmt"
	"strconv"

	"budgeteer/internal/cli"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal <amount>",
	Short: "Set the savings goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runGoal(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	cfg := loadConfig()
	m, err := openManager(cfg)
	if err != nil {
		return err
	}
	if err := m.SetSavingsGoal(amount); err != nil {
		return err
	}
	if err := saveAll(m, cfg); err != nil {
		return err
	}

	fmt.Printf("  Savings goal set to %s\n", cli.FormatMoney(amount))
	return nil
}
