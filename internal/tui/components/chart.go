package components

import (
	"fmt"
	"strings"

	"budgeteer/internal/cli"
	"budgeteer/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HBarChart renders one horizontal bar per value, scaled to the largest
// value, with the label on the left and the amount on the right.
func HBarChart(labels []string, values []float64, width int) string {
	if len(values) == 0 {
		t := theme.Active
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("no expenses yet")
	}

	t := theme.Active

	peak := values[0]
	labelW := lipgloss.Width(labels[0])
	for i := 1; i < len(values); i++ {
		if values[i] > peak {
			peak = values[i]
		}
		if w := lipgloss.Width(labels[i]); w > labelW {
			labelW = w
		}
	}
	if peak <= 0 {
		peak = 1
	}

	// label + space + bar + space + amount
	amountW := lipgloss.Width(cli.FormatMoney(peak))
	barW := width - labelW - amountW - 2
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, v := range values {
		filled := int(v / peak * float64(barW))
		if filled < 1 && v > 0 {
			filled = 1
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, labels[i])))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(trackStyle.Render(strings.Repeat("░", barW-filled)))
		b.WriteString(" ")
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatMoney(v))))
	}
	return b.String()
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	b.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(t.Accent).Render(b.String())
}
