package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette for plain (non-TUI) command output.
var (
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorOrange = lipgloss.Color("#DA702C")
	ColorRed    = lipgloss.Color("#D14D41")
	ColorDim    = lipgloss.Color("#575653")
	ColorMuted  = lipgloss.Color("#6F6E69")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorDim)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	goodStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorOrange)
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Width(48).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

// RenderGood renders a success/on-track message.
func RenderGood(msg string) string { return goodStyle.Render(msg) }

// RenderWarn renders a warning/behind-goal message.
func RenderWarn(msg string) string { return warnStyle.Render(msg) }

// Table is a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders the table with rounded borders. A row consisting of
// the single cell "---" renders as a separator line.
func RenderTable(t Table) string {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		if len(row) == 1 && row[0] == "---" {
			return
		}
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	edge := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < cols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeRow := func(row []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			b.WriteString(" " + style.Render(cell) + strings.Repeat(" ", pad+1))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	edge("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		writeRow(t.Headers, headerStyle)
		edge("├", "┼", "┤")
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			edge("├", "┼", "┤")
			continue
		}
		writeRow(row, lipgloss.NewStyle())
	}
	edge("╰", "┴", "╯")

	return b.String()
}

// RenderBars renders a horizontal bar chart: one labeled row per value,
// scaled to the largest value. Used by the chart command for category
// totals.
func RenderBars(labels []string, values []float64, barWidth int) string {
	if len(values) == 0 {
		return mutedStyle.Render("  No expenses to visualize.") + "\n"
	}

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

	barStyle := lipgloss.NewStyle().Foreground(ColorAccent)

	var b strings.Builder
	for i, v := range values {
		n := int(v / peak * float64(barWidth))
		if n < 1 && v > 0 {
			n = 1
		}
		b.WriteString(fmt.Sprintf("  %-*s ", labelW, labels[i]))
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(" " + mutedStyle.Render(FormatMoney(v)))
		b.WriteString("\n")
	}
	return b.String()
}
