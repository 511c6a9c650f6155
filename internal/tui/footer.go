package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func renderFooter(bindings []KeyBinding, width int) string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || b.Hidden {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, width), line, bg)
}

// renderStatusBar puts the latest status message on the left and the
// selected date on the right. The message gives way when space runs out.
func renderStatusBar(status string, isErr bool, selected string, width int) string {
	width = max(1, width)
	msg := strings.TrimSpace(strings.ReplaceAll(status, "\n", " "))
	if msg == "" {
		msg = "Ready"
	}
	msgStyle := statusMsgStyle
	if isErr {
		msgStyle = statusErrMsgStyle
	}

	right := ""
	if selected != "" {
		right = statusDateStyle.Render(" " + selected + " ")
	}
	rightW := ansi.StringWidth(right)
	if rightW >= width {
		return renderBar(statusBarStyle, width, right, colorSurface0)
	}

	left := ansi.Truncate(" "+msg, width-rightW-1, "…")
	gap := width - rightW - ansi.StringWidth(left)
	line := msgStyle.Render(left) + statusBarStyle.Render(strings.Repeat(" ", gap)) + right
	return renderBar(statusBarStyle, width, line, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
