package ui

import (
	"fmt"
	"strings"

	"vajra.klederson.com/internal/geo"
	"vajra.klederson.com/internal/radar"
	"vajra.klederson.com/internal/tactical"
)

// RenderSquadPanel lists the squad with range and bearing from the operator.
func RenderSquadPanel(s tactical.State, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	lines := []string{
		StylePanelTitle.Render(fmt.Sprintf("SQUAD [%d]", len(s.Squad))),
		StyleRule.Render(strings.Repeat("-", innerW)),
	}
	for _, m := range s.Squad {
		bearing, dist := geo.Offset(s.Coordinates.Lat, s.Coordinates.Lng, m.Position.Lat, m.Position.Lng)
		status := StyleNominal.Render(strings.ToUpper(m.Status.String()))
		if m.Status != tactical.SquadActive {
			status = StyleWarning.Render(strings.ToUpper(m.Status.String()))
		}
		lines = append(lines,
			" "+StyleValue.Render(fmt.Sprintf("%-10s", m.Callsign))+status,
			StyleLabel.Render(truncRaw(fmt.Sprintf("   %4.0fm %03.0f° %s  HR %.0f  SpO2 %.0f%%",
				dist, bearing, compassPoint(bearing), m.Vitals.HeartRate, m.Vitals.SpO2), innerW)),
		)
	}

	content := strings.Join(lines, "\n")
	return clampLines(StylePanelBorder.Width(width-2).Height(height-2).Render(content), height)
}

// compassPoint names the 8-wind direction of a bearing in degrees.
func compassPoint(bearing float64) string {
	dirs := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	idx := int(radar.NormalizeBearing(bearing)/45+0.5) % 8
	return dirs[idx]
}
