package components

import (
	"fmt"

	"budgeteer/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalBar renders a labeled progress bar toward the savings goal.
// pct is clamped to [0, 1]; color shifts from red through orange to green
// as the goal gets closer.
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	fill := colorForGoalPct(pct)

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(fill)).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(pct) +
		" " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// colorForGoalPct maps goal completion to a color. Unlike utilization
// meters, high percentages are good here.
func colorForGoalPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Green)
	case pct >= 0.7:
		return string(t.Yellow)
	case pct >= 0.4:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}
