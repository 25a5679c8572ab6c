package radar

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"vajra.klederson.com/internal/config"
)

var (
	colorBright   = lipgloss.Color("#FFB000")
	colorMid      = lipgloss.Color("#8F6200")
	colorDim      = lipgloss.Color("#4A3300")
	colorCritical = lipgloss.Color("#FF3232")
	colorFriendly = lipgloss.Color("#33FF66")

	styleCenter  = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleRing    = lipgloss.NewStyle().Foreground(colorMid)
	styleDot     = lipgloss.NewStyle().Foreground(colorDim)
	styleLegend  = lipgloss.NewStyle().Foreground(colorMid)
	styleLegCrit = lipgloss.NewStyle().Foreground(colorCritical)
	styleLegFrnd = lipgloss.NewStyle().Foreground(colorFriendly)
)

const maxLabelLen = 8

// Kind says what a blip represents, which picks its palette.
type Kind int

const (
	KindDrone Kind = iota
	KindGunfire
	KindFriendly
)

// Blip is one contact to plot on the radar.
type Blip struct {
	Reading Reading
	TTL     time.Duration
	Tier    Tier
	Kind    Kind
	Glyph   rune
	Label   string
}

type blipPos struct {
	col, row int
	blip     Blip
	opacity  float64
	label    string
	labelCol int
	labelRow int
}

// Render produces the complete radar display as a styled string.
// Blips that have fully faded at now are skipped.
func Render(width, height int, blips []Blip, sweep *Sweep, now time.Time) string {
	if width < 10 || height < 5 {
		return ""
	}

	centerX := width / 2
	centerY := height / 2
	radius := float64(min(centerX-1, int(float64(centerY-1)/config.AspectRatio)))
	if radius < 3 {
		radius = 3
	}

	ringRadii := make([]float64, config.RingCount)
	for i := range ringRadii {
		ringRadii[i] = radius * float64(i+1) / float64(config.RingCount)
	}

	bps := placeBlips(blips, centerX, centerY, radius, width, now)

	// Label cells: key = row*width+col → index into bps + char offset
	type labelCell struct {
		bpIdx   int
		charIdx int
	}
	labelMap := make(map[int]labelCell)
	for i, bp := range bps {
		if bp.label == "" {
			continue
		}
		for ci := 0; ci < len(bp.label); ci++ {
			key := bp.labelRow*width + bp.labelCol + ci
			labelMap[key] = labelCell{bpIdx: i, charIdx: ci}
		}
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			key := row*width + col
			if lc, ok := labelMap[key]; ok {
				bp := bps[lc.bpIdx]
				sb.WriteString(blipStyle(bp, sweep).Faint(true).Render(string(bp.label[lc.charIdx])))
				continue
			}
			sb.WriteString(renderCell(col, row, centerX, centerY, radius, ringRadii, sweep, bps))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// placeBlips projects blips to cells and resolves label collisions.
func placeBlips(blips []Blip, centerX, centerY int, radius float64, width int, now time.Time) []blipPos {
	bps := make([]blipPos, 0, len(blips))

	// Occupied row segments: map[row] → list of [start, end)
	type segment struct{ start, end int }
	occupied := make(map[int][]segment)
	collides := func(row, col, n int) bool {
		for _, seg := range occupied[row] {
			if col < seg.end && col+n > seg.start {
				return true
			}
		}
		return false
	}

	for _, b := range blips {
		proj := Projection{
			MaxDistance: config.RadarMaxDistance,
			MaxRadius:   radius,
			TTL:         b.TTL,
		}
		plot := proj.Project(b.Reading, now)
		if !plot.Visible() {
			continue
		}
		dc := centerX + int(math.Round(plot.X))
		dr := centerY + int(math.Round(plot.Y*config.AspectRatio))

		label := b.Label
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}

		// Label to the right, or to the left near the edge
		lc := dc + 2
		if lc+len(label) >= width {
			lc = dc - len(label) - 1
		}
		if lc < 0 {
			lc = 0
		}

		// Same row, then one below, then one above
		lr := dr
		if collides(lr, lc, len(label)) {
			lr = dr + 1
			if collides(lr, lc, len(label)) {
				lr = dr - 1
				if collides(lr, lc, len(label)) {
					label = ""
				}
			}
		}

		bps = append(bps, blipPos{
			col:      dc,
			row:      dr,
			blip:     b,
			opacity:  plot.Opacity,
			label:    label,
			labelCol: lc,
			labelRow: lr,
		})

		occupied[dr] = append(occupied[dr], segment{dc, dc + 1})
		if label != "" {
			occupied[lr] = append(occupied[lr], segment{lc, lc + len(label)})
		}
	}

	return bps
}

func blipStyle(bp blipPos, sweep *Sweep) lipgloss.Style {
	var base lipgloss.Color
	switch {
	case bp.blip.Kind == KindFriendly:
		base = colorFriendly
	case bp.blip.Tier == TierCritical:
		base = colorCritical
	default:
		base = colorBright
	}

	sty := lipgloss.NewStyle().Foreground(base)
	if bp.blip.Tier == TierCritical && bp.blip.Kind != KindFriendly && sweep.Pulse() > 0.7 {
		sty = sty.Bold(true)
	}
	if bp.opacity < 0.35 {
		sty = sty.Faint(true)
	}
	return sty
}

func renderCell(col, row, centerX, centerY int, radius float64, ringRadii []float64, sweep *Sweep, bps []blipPos) string {
	dist := CellDistance(col, row, centerX, centerY)
	angle := CellAngle(col, row, centerX, centerY)

	// Later blips are newer; draw the newest on top
	for i := len(bps) - 1; i >= 0; i-- {
		bp := bps[i]
		if col == bp.col && row == bp.row {
			return blipStyle(bp, sweep).Render(string(bp.blip.Glyph))
		}
	}

	if dist > radius+0.5 {
		return " "
	}

	if col == centerX && row == centerY {
		return styleCenter.Render("+")
	}

	if col == centerX && dist <= radius {
		return renderSweepChar('|', sweep, angle)
	}
	if row == centerY && dist <= radius {
		return renderSweepChar('-', sweep, angle)
	}

	for _, ringR := range ringRadii {
		if math.Abs(dist-ringR) < 0.8 {
			return renderSweepChar(RingChar(angle), sweep, angle)
		}
	}

	if dist <= radius {
		return renderSweepChar('.', sweep, angle)
	}

	return " "
}

func renderSweepChar(ch rune, sweep *Sweep, angle float64) string {
	color := sweepColor(sweep.Intensity(angle))
	if color == "" {
		if ch == '.' {
			return styleDot.Render(string(ch))
		}
		return styleRing.Render(string(ch))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(ch))
}

func sweepColor(intensity float64) string {
	if intensity <= 0 {
		return ""
	}
	if intensity > 0.8 {
		return "#FFB000"
	}
	if intensity > 0.5 {
		return "#CC8C00"
	}
	if intensity > 0.3 {
		return "#AA7400"
	}
	return "#553A00"
}

// RenderLegend produces the radar legend line.
func RenderLegend(width int, showFriendly bool) string {
	legend := "   " +
		styleLegend.Render("^ UAS") +
		"  " +
		styleLegCrit.Render("x SHOT") +
		"  " +
		styleLegCrit.Render("! <300m")
	if showFriendly {
		legend += "  " + styleLegFrnd.Render("A-D SQUAD")
	}

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
