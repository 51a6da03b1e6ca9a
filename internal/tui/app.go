// Package tui provides the interactive Bubble Tea dashboard for budgeteer.
package tui

import (
	"fmt"

	"budgeteer/internal/budget"
	"budgeteer/internal/cli"
	"budgeteer/internal/tui/components"
	"budgeteer/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minContentWidth = 40
	maxContentWidth = 90
)

// App is the root Bubble Tea model for the dashboard.
type App struct {
	manager  *budget.Manager
	width    int
	height   int
	themeIdx int
}

// NewApp creates the dashboard model over an already-opened manager.
func NewApp(m *budget.Manager, themeName string) App {
	idx := 0
	for i, t := range theme.All {
		if t.Name == themeName {
			idx = i
		}
	}
	theme.Active = theme.All[idx]
	return App{manager: m, themeIdx: idx}
}

// Run starts the dashboard in the alternate screen.
func Run(m *budget.Manager, themeName string) error {
	p := tea.NewProgram(NewApp(m, themeName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "r":
			// Re-read the data file; another process may have saved.
			a.manager = budget.Open(a.manager.Path())
		case "t":
			a.themeIdx = (a.themeIdx + 1) % len(theme.All)
			theme.Active = theme.All[a.themeIdx]
		}
	}
	return a, nil
}

func (a App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	t := theme.Active
	cw := a.width - 4
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	if cw < minContentWidth {
		cw = minContentWidth
	}

	m := a.manager
	p := m.ProgressTowardGoal()

	title := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("BUDGETEER")

	cards := components.MetricCardRow([]struct{ Label, Value string }{
		{"Income", cli.FormatMoney(m.Income)},
		{"Expenses", cli.FormatMoney(m.TotalExpenses())},
		{"Savings", cli.FormatMoney(p.CurrentSavings)},
		{"Goal", cli.FormatMoney(m.SavingsGoal)},
	}, cw)

	names := m.CategoryNames()
	labels := make([]string, 0, len(names))
	totals := make([]float64, 0, len(names))
	for _, name := range names {
		if total := m.Categories[name].Total(); total > 0 {
			labels = append(labels, cli.TitleCase(name))
			totals = append(totals, total)
		}
	}
	chart := components.TitledBox(
		"Expenses by Category",
		components.HBarChart(labels, totals, cw-4),
		cw,
	)

	var goalLine string
	if m.SavingsGoal > 0 {
		goalLine = components.GoalBar("Savings goal", p.CurrentSavings/m.SavingsGoal, 12, cw-20)
		if !p.OnTrack {
			goalLine += "\n" + lipgloss.NewStyle().Foreground(t.Orange).
				Render(fmt.Sprintf("need %s more to reach the goal", cli.FormatMoney(p.Needed)))
		}
	} else {
		goalLine = lipgloss.NewStyle().Foreground(t.TextDim).Render("no savings goal set")
	}
	goalBox := components.TitledBox("Savings Progress", goalLine, cw)

	hint := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("r reload · t theme · q quit")

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", cards, chart, goalBox, "", hint)
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
