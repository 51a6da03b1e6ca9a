package cmd

import (
	"fmt"
	"strconv"

	"budgeteer/internal/cli"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income <amount>",
	Short: "Set monthly income",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	cfg := loadConfig()
	m, err := openManager(cfg)
	if err != nil {
		return err
	}
	if err := m.SetIncome(amount); err != nil {
		return err
	}
	if err := saveAll(m, cfg); err != nil {
		return err
	}

	fmt.Printf("  Income set to %s\n", cli.FormatMoney(amount))
	return nil
}
