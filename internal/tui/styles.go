package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	monthLabelStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	chevronStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	weekdayStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	dividerStyle = lipgloss.NewStyle().Foreground(colorBorder)

	dayStyle      = lipgloss.NewStyle().Foreground(colorText)
	focusedStyle  = lipgloss.NewStyle().Foreground(colorFocus).Underline(true).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSelected).Background(colorAccent).Bold(true)

	statusBarStyle    = lipgloss.NewStyle().Background(colorSurface0)
	statusMsgStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErrMsgStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	statusDateStyle   = lipgloss.NewStyle().Foreground(colorSelected).Background(colorDate).Bold(true)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
