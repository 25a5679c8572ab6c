package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/radar"
	"vajra.klederson.com/internal/tactical"
)

const (
	cellEmpty = iota
	cellRing
	cellAxis
	cellShaft
	cellShot
)

// RenderShotDial renders the shot-spotter half dial. The hub sits at the
// bottom centre; bearings fold onto the upper half, so a shot at b and one
// at 360-b land on the same spot. The newest shot gets a pointer from the
// hub and a readout line.
func RenderShotDial(width, height int, shots []tactical.GunfireEvent, now time.Time) string {
	if width < 11 || height < 5 {
		return ""
	}
	dialH := height - 1 // last line is the readout

	grid := make([][]rune, dialH)
	kind := make([][]int, dialH)
	fade := make([][]float64, dialH)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
		kind[i] = make([]int, width)
		fade[i] = make([]float64, width)
	}
	set := func(col, row int, ch rune, k int, op float64) {
		if col >= 0 && col < width && row >= 0 && row < dialH {
			grid[row][col] = ch
			kind[row][col] = k
			fade[row][col] = op
		}
	}

	hubCol := width / 2
	hubRow := dialH - 1
	rx := float64(width/2 - 1)
	ry := float64(dialH - 1)
	at := func(dialAngle, frac float64) (int, int) {
		dx, dy := radar.DialPoint(dialAngle, frac)
		return int(math.Round(float64(hubCol) + dx*rx)), int(math.Round(float64(hubRow) + dy*ry))
	}

	for c := 0; c < width; c++ {
		set(c, hubRow, '-', cellAxis, 1)
	}
	steps := 4 * width
	for i := 0; i <= steps; i++ {
		col, row := at(180*float64(i)/float64(steps), 1)
		if row < hubRow {
			set(col, row, '.', cellRing, 1)
		}
	}
	set(hubCol, hubRow, '+', cellAxis, 1)
	set(0, hubRow, '0', cellAxis, 1)
	if c, r := at(90, 1); r >= 0 {
		set(c, r, '|', cellAxis, 1)
	}

	var newest *tactical.GunfireEvent
	for i := len(shots) - 1; i >= 0; i-- {
		shot := shots[i]
		op := radar.Opacity(now.Sub(shot.Timestamp), config.GunfireDialTTL)
		if op <= 0 {
			continue
		}
		da := radar.DialAngle(float64(shot.Bearing))
		if i == 0 {
			newest = &shots[0]
			for t := 0.15; t < 0.8; t += 0.1 {
				col, row := at(da, t)
				set(col, row, ':', cellShaft, op)
			}
		}
		col, row := at(da, 0.85)
		set(col, row, 'X', cellShot, op)
	}

	ringSty := lipgloss.NewStyle().Foreground(ColorAmberDim)
	axisSty := lipgloss.NewStyle().Foreground(ColorAmberMid).Bold(true)

	var sb strings.Builder
	for row := 0; row < dialH; row++ {
		for col := 0; col < width; col++ {
			ch := string(grid[row][col])
			switch kind[row][col] {
			case cellShot, cellShaft:
				sty := StyleCritical
				if fade[row][col] < 0.35 {
					sty = sty.Faint(true)
				}
				sb.WriteString(sty.Render(ch))
			case cellRing:
				sb.WriteString(ringSty.Render(ch))
			case cellAxis:
				sb.WriteString(axisSty.Render(ch))
			default:
				sb.WriteString(ch)
			}
		}
		sb.WriteByte('\n')
	}

	readout := "no recent shots"
	if newest != nil {
		readout = fmt.Sprintf("LAST %03d° %dm %ds ago", newest.Bearing, newest.Distance, int(now.Sub(newest.Timestamp).Seconds()))
		sb.WriteString(StyleCritical.Render(centerText(readout, width)))
	} else {
		sb.WriteString(StyleHelp.Render(centerText(readout, width)))
	}
	return sb.String()
}

// RenderDialPanel wraps the shot dial in a titled border.
func RenderDialPanel(shots []tactical.GunfireEvent, now time.Time, width, height int) string {
	innerW := width - 4
	innerH := height - 3
	dial := RenderShotDial(innerW, innerH, shots, now)
	content := StylePanelTitle.Render("SHOT-SPOTTER") + "\n" + dial
	return clampLines(StylePanelBorder.Width(width-2).Height(height-2).Render(content), height)
}

func centerText(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
