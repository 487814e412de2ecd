package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"taskmenu/internal/model"
	"taskmenu/internal/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimmedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	borderColor = lipgloss.Color("63")
	activeColor = lipgloss.Color("205")
)

func (m AppModel) View() string {
	if !m.Ready {
		return ""
	}

	f := session.Project(m.Snapshot, m.WindowSize.Width, m.WindowSize.Height)

	// LEFT PANEL: task list
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("Tasks"))
	for _, row := range f.Rows {
		leftView.WriteString("\n")
		if row.Selected {
			leftView.WriteString(selectedStyle.Render(row.Text))
		} else {
			leftView.WriteString(normalStyle.Render(row.Text))
		}
	}

	left := panel(f.ListWidth, f.ListHeight, activeColor).Render(leftView.String())

	// RIGHT PANEL: description above summary
	descTitle := titleStyle.Render("Description")
	if f.Location != "" {
		descTitle += dimmedStyle.Render(" " + model.IconLocation + " " + f.Location)
	}
	desc := panel(f.DetailWidth, f.DescHeight, borderColor).Render(
		ansi.Truncate(descTitle, f.DetailWidth, "…") + "\n" + strings.Join(f.Description, "\n"))

	summaryTitle := titleStyle.Render("Summary")
	if !m.Summary.AtTop() || !m.Summary.AtBottom() {
		summaryTitle += dimmedStyle.Render(" " + model.IconSummary)
	}
	summary := panel(f.DetailWidth, f.SummaryHeight, borderColor).Render(
		summaryTitle + "\n" + m.Summary.View())

	right := lipgloss.JoinVertical(lipgloss.Left, desc, summary)

	// Footer
	footer := m.Help.ShortHelpView(append(f.Keys, summaryKeys.PageDown))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + footer
}

// panel is a bordered box whose interior is width x height.
func panel(width, height int, border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height + 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(border)
}
