package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ------- styling (Lip Gloss) -------
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

	// deadline highlighting
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tomorrowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("130"))

	labelStyle        = lipgloss.NewStyle().Bold(true).Width(13)
	focusedLabelStyle = labelStyle.Foreground(lipgloss.Color("12"))
)

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
}

// truncate cuts s to width terminal cells, wide runes included.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
