package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary    = lipgloss.Color("39")
	colorAccent     = lipgloss.Color("213")
	colorForeground = lipgloss.Color("252")
	colorMuted      = lipgloss.Color("241")
	colorBorder     = lipgloss.Color("238")
	colorDanger     = lipgloss.Color("196")
	colorLocked     = lipgloss.Color("178")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	focusedPanelStyle = panelStyle.
				BorderForeground(colorPrimary)

	rowLabelStyle = lipgloss.NewStyle().
			Foreground(colorForeground).
			Width(20)

	rowValueStyle = lipgloss.NewStyle().
			Foreground(colorForeground)

	focusedRowStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Width(22)

	metricValueStyle = lipgloss.NewStyle().
				Foreground(colorForeground).
				Bold(true)

	lockedValueStyle = lipgloss.NewStyle().
				Foreground(colorLocked).
				Italic(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)
