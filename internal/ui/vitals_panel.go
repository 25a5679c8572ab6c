package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vajra.klederson.com/internal/tactical"
)

// RenderVitalsPanel renders the operator biometrics with gauges and the
// heart-rate trace.
func RenderVitalsPanel(s tactical.State, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("BIOMETRICS")
	cam := StyleHelp.Render("[CAM OFF]")
	if s.CameraActive {
		cam = StyleNominal.Render("[CAM ON]")
	}
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(cam))) + cam

	lines := []string{titleLine, StyleRule.Render(strings.Repeat("-", innerW))}

	v := s.Vitals
	lv := v.Levels()
	barW := innerW - 22
	if barW < 6 {
		barW = 6
	}
	rows := []struct {
		label, value string
		level        tactical.Level
		val, lo, hi  float64
	}{
		{"HR", fmt.Sprintf("%3.0f bpm", v.HeartRate), lv.HeartRate, v.HeartRate, tactical.HeartRateMin, tactical.HeartRateMax},
		{"SpO2", fmt.Sprintf("%3.0f %%", v.SpO2), lv.SpO2, v.SpO2, tactical.SpO2Min, tactical.SpO2Max},
		{"HRV", fmt.Sprintf("%3.0f", v.HRVStress), lv.HRVStress, v.HRVStress, tactical.HRVStressMin, tactical.HRVStressMax},
		{"HAPE", fmt.Sprintf("%3.0f %%", v.HAPERisk), lv.HAPERisk, v.HAPERisk, tactical.HAPERiskMin, tactical.HAPERiskMax},
	}
	for _, r := range rows {
		sty := levelStyle(r.level)
		label := StyleLabel.Render(fmt.Sprintf(" %-5s", r.label))
		lines = append(lines, label+sty.Render(fmt.Sprintf("%-9s", r.value))+" "+renderGauge(r.val, r.lo, r.hi, barW, sty))
	}

	if len(s.HeartRateHistory) > 0 {
		sparkW := innerW - 2
		if sparkW < 10 {
			sparkW = 10
		}
		lines = append(lines, "", StyleLabel.Render(" HR trace:"))
		lines = append(lines, " "+levelStyle(lv.HeartRate).Render(renderSparkline(s.HeartRateHistory, sparkW)))
	}

	content := strings.Join(lines, "\n")
	return clampLines(StylePanelBorder.Width(width-2).Height(height-2).Render(content), height)
}

func levelStyle(l tactical.Level) lipgloss.Style {
	switch l {
	case tactical.LevelCritical:
		return StyleCritical
	case tactical.LevelWarning:
		return StyleWarning
	default:
		return StyleValue
	}
}

// renderGauge fills a bar proportional to where v sits in [lo, hi].
func renderGauge(v, lo, hi float64, width int, sty lipgloss.Style) string {
	ratio := 0.0
	if hi > lo {
		ratio = (v - lo) / (hi - lo)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	return StyleHelp.Render("[") +
		sty.Render(strings.Repeat("|", filled)) +
		StyleHelp.Render(strings.Repeat("-", width-filled)) +
		StyleHelp.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	// Take last `width` values
	start := 0
	if len(values) > width {
		start = len(values) - width
	}
	values = values[start:]

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := int((v - minV) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}
