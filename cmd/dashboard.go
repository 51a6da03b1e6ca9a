package cmd

import (
	"budgeteer/internal/tui"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive budget dashboard",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	m, err := openManager(cfg)
	if err != nil {
		return err
	}
	return tui.Run(m, themeName(cfg))
}
