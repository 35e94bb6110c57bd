package ui

import "github.com/charmbracelet/lipgloss"

var (
	cActive  = lipgloss.Color("42")  // Green
	cGray    = lipgloss.Color("240") // Gray
	cYellow  = lipgloss.Color("220") // Yellow
	cPopupBg = lipgloss.Color("236")

	styleActivePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cActive).
			Padding(0, 1)
	stylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cGray).
			Padding(0, 1)

	styleActiveTitle = lipgloss.NewStyle().Bold(true)
	styleTitle       = lipgloss.NewStyle()

	styleSelected = lipgloss.NewStyle().Reverse(true).Bold(true)
	styleLoading  = lipgloss.NewStyle().Foreground(cYellow).Italic(true)

	styleFooter = lipgloss.NewStyle().Foreground(cYellow)

	stylePopup = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Background(cPopupBg).
			Padding(0, 1)
	stylePopupTitle    = lipgloss.NewStyle().Bold(true)
	stylePopupSelected = lipgloss.NewStyle().Foreground(cYellow).Bold(true)
)
