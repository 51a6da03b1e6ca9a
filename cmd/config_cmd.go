package cmd

import (
	"fmt"

	"budgeteer/internal/cli"
	"budgeteer/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration and paths",
	RunE:  runConfig,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Set the color theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigTheme,
}

func init() {
	configCmd.AddCommand(configThemeCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	historyState := "enabled"
	if !cfg.History.Enabled {
		historyState = "disabled"
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Configuration",
		Rows: [][]string{
			{"Config file", config.ConfigPath()},
			{"Data file", dataFilePath(cfg)},
			{"History", historyState},
			{"History db", cfg.HistoryPath()},
			{"Theme", themeName(cfg)},
		},
	}))
	return nil
}

func runConfigTheme(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.Appearance.Theme = args[0]
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Theme set to %q\n", args[0])
	return nil
}
