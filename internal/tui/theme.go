package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha for the screen body, Latte for the light status bar.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
	colorLavender lipgloss.Color = "#b4befe"

	latteText    lipgloss.Color = "#4c4f69"
	latteMantle  lipgloss.Color = "#e6e9ef"
	latteOverlay lipgloss.Color = "#7c7f93"
)

const (
	colorAccent = colorLavender
	colorBorder = colorSurface2
	colorShadow = colorCrust
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	listStyle = lipgloss.NewStyle().Padding(0, 2)

	rowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Background(colorSurface0).
			Foreground(colorText).
			Padding(0, 2)
	focusedRowStyle = rowStyle.BorderForeground(colorAccent).Bold(true)

	shadowStyle = lipgloss.NewStyle().Foreground(colorShadow)
)
