package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ComposeLayout joins the radar panel and the side column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, radarPanel, side, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, radarPanel, side)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// Stack joins side panels vertically.
func Stack(panels ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// clampLines pads or truncates rendered output to exactly height lines.
// lipgloss Height() only sets a minimum; it won't truncate overflow.
func clampLines(rendered string, height int) string {
	lines := strings.Split(rendered, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
