package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
// https://catppuccin.com/palette
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases.
const (
	colorAccent   = colorBlue
	colorFocus    = colorLavender
	colorDate     = colorPeach
	colorMuted    = colorSubtext0
	colorBorder   = colorSurface2
	colorSuccess  = colorGreen
	colorError    = colorRed
	colorSelected = colorBase
)

// paletteColors lists every palette entry used by the views.
func paletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorRed, colorPeach, colorGreen, colorBlue, colorLavender,
		colorText, colorSubtext0, colorOverlay1, colorSurface2,
		colorSurface0, colorBase, colorMantle,
	}
}
