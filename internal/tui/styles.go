package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorUp      = colorGreen
	colorDown    = colorRed
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(1, 2)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorSurface0).
			PaddingRight(2).
			MarginRight(2)

	cursorStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	priceStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	likeStyle   = lipgloss.NewStyle().Foreground(colorRed)
	upStyle     = lipgloss.NewStyle().Foreground(colorUp)
	downStyle   = lipgloss.NewStyle().Foreground(colorDown)
	statusStyle = lipgloss.NewStyle().Foreground(colorTeal)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	urlStyle    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
)

// levelStyle colors a three-step rating the obvious way.
func levelStyle(level string) lipgloss.Style {
	switch level {
	case "high":
		return lipgloss.NewStyle().Foreground(colorRed)
	case "medium":
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorGreen)
	}
}
