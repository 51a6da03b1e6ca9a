// Package components provides reusable widgets for the budgeteer dashboard.
package components

import (
	"budgeteer/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly
// totalWidth; the first items absorb the integer-division remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a bordered card with a label and a value.
// outerWidth is the total rendered width including the border.
func MetricCard(label, value string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	label = lipgloss.NewStyle().Foreground(t.TextMuted).Render(label)
	value = lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(value)

	return card.Render(label + "\n" + value)
}

// MetricCardRow lays out cards side by side across totalWidth.
func MetricCardRow(cards []struct{ Label, Value string }, totalWidth int) string {
	widths := LayoutRow(totalWidth, len(cards))
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = MetricCard(c.Label, c.Value, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// TitledBox wraps content in a bordered box with a title line.
func TitledBox(title, content string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	titleLine := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(title)
	return box.Render(titleLine + "\n" + content)
}
