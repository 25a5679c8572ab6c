package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/tactical"
)

// RenderMenuBar renders the top menu bar with key hints and the mode badge.
func RenderMenuBar(width int, view tactical.ViewMode, mode tactical.SystemMode) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"V", "iew"},
		{"G", "ps/vbn"},
		{"S", "tealth"},
		{"J", "am"},
		{"D", "ead-man"},
		{"C", "ancel"},
		{"K", "cam"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += " " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	right := StyleMenuLabel.Render(strings.ToUpper(view.String())) + "  " + ModeBadge(mode) + " "
	left := StyleMenuKey.Render(title) + menu

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right) // bar padding
	if gap < 0 {
		gap = 0
	}
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// ModeBadge renders the system mode in its own color.
func ModeBadge(mode tactical.SystemMode) string {
	label := "[" + strings.ToUpper(mode.String()) + "]"
	switch mode {
	case tactical.ModeStealth:
		return StyleModeStealth.Render(label)
	case tactical.ModeHighStress:
		return StyleModeStress.Render(label)
	default:
		return StyleModeNormal.Render(label)
	}
}
