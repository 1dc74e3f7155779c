package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	statusColors = map[string]lipgloss.Color{
		"Pending":   lipgloss.Color("11"),
		"Paid":      lipgloss.Color("10"),
		"Overdue":   lipgloss.Color("9"),
		"Cancelled": lipgloss.Color("8"),
	}
)

func renderStatus(status string) string {
	color, ok := statusColors[status]
	if !ok {
		return status
	}
	return lipgloss.NewStyle().Foreground(color).Render(status)
}
