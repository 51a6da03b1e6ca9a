package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"budgeteer/internal/calc"
	"budgeteer/internal/cli"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc [add|sub|mul|div <a> <b>]",
	Short: "Simple arithmetic calculator",
	Long:  "One-shot: budgeteer calc add 5 3. Without arguments, starts an interactive session.",
	Args:  cobra.RangeArgs(0, 3),
	RunE:  runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runCalcInteractive()
	}
	if len(args) != 3 {
		return errors.New("expected: calc <add|sub|mul|div> <a> <b>")
	}

	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[1])
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[2])
	}

	op := calc.Op(args[0])
	result, err := calc.Apply(op, a, b)
	if err != nil {
		return err
	}

	fmt.Printf("  %s %s %s = %s\n", cli.FormatValue(a), op.Symbol(), cli.FormatValue(b), cli.FormatValue(result))
	return nil
}

func runCalcInteractive() error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("SIMPLE CALCULATOR"))

	for {
		var op calc.Op
		var rawA, rawB string

		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[calc.Op]().
				Title("Operation").
				Options(
					huh.NewOption("Addition (+)", calc.OpAdd),
					huh.NewOption("Subtraction (-)", calc.OpSubtract),
					huh.NewOption("Multiplication (×)", calc.OpMultiply),
					huh.NewOption("Division (÷)", calc.OpDivide),
				).
				Value(&op),
			huh.NewInput().
				Title("First number").
				Validate(validCalcNumber).
				Value(&rawA),
			huh.NewInput().
				Title("Second number").
				Validate(validCalcNumber).
				Value(&rawB),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		a, _ := strconv.ParseFloat(rawA, 64)
		b, _ := strconv.ParseFloat(rawB, 64)

		result, err := calc.Apply(op, a, b)
		if err != nil {
			// Division by zero is recoverable: report and re-prompt.
			fmt.Println("  " + cli.RenderWarn(err.Error()))
		} else {
			fmt.Printf("  %s %s %s = %s\n", cli.FormatValue(a), op.Symbol(), cli.FormatValue(b), cli.FormatValue(result))
		}

		again := true
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Another calculation?").
				Value(&again),
		))
		if err := confirm.Run(); err != nil || !again {
			fmt.Println("  Goodbye!")
			return nil
		}
	}
}

func validCalcNumber(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New("enter a valid number")
	}
	return nil
}
