package radar

import (
	"math"

	"vajra.klederson.com/internal/config"
)

// CellDistance computes the distance from a cell to the radar center,
// accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// CellAngle computes the angle from center to a cell.
// Returns radians in [0, 2π), where 0=north, increasing clockwise.
func CellAngle(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return NormalizeAngle(math.Atan2(dx, -dy))
}

// RingChar returns the appropriate character for a ring at the given angle.
func RingChar(angle float64) rune {
	sector := int(math.Round(NormalizeAngle(angle)/(math.Pi/4))) % 8

	switch sector {
	case 0, 4: // N, S
		return '-'
	case 1, 5: // NE, SW
		return '/'
	case 2, 6: // E, W
		return '|'
	default: // SE, NW
		return '\\'
	}
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// NormalizeBearing wraps a bearing in degrees to [0, 360).
func NormalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// ScaleDistance converts a distance to a plot radius, saturating at the
// plot edge for anything beyond maxDistance.
func ScaleDistance(distance, maxDistance, maxRadius float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return math.Min(distance, maxDistance) / maxDistance * maxRadius
}

// BearingToRadians maps a compass bearing (degrees, 0=north, clockwise) to
// a screen angle in radians where 0 points along +x and north is up.
func BearingToRadians(bearing float64) float64 {
	return bearing*math.Pi/180 - math.Pi/2
}
