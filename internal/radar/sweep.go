package radar

import (
	"math"
	"time"

	"vajra.klederson.com/internal/config"
)

// Sweep manages the rotating sweep line state.
type Sweep struct {
	Angle     float64 // Current angle in radians [0, 2π)
	StartTime time.Time
	now       time.Time
}

// NewSweep creates a new sweep starting at 0 degrees (north) at start.
func NewSweep(start time.Time) *Sweep {
	return &Sweep{
		Angle:     0,
		StartTime: start,
		now:       start,
	}
}

// Update advances the sweep angle to the given time.
func (s *Sweep) Update(now time.Time) {
	s.now = now
	elapsed := now.Sub(s.StartTime).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	rps := float64(config.SweepSpeedRPM) / 60.0 // rotations per second
	s.Angle = math.Mod(elapsed*rps*2*math.Pi, 2*math.Pi)
}

// Degrees returns the current sweep angle in degrees.
func (s *Sweep) Degrees() float64 {
	return s.Angle * 180 / math.Pi
}

// Pulse oscillates in [0.4, 1] and drives the critical-tier blink.
func (s *Sweep) Pulse() float64 {
	ms := float64(s.now.Sub(s.StartTime).Milliseconds())
	return 0.7 + 0.3*math.Sin(ms/100)
}

// Intensity returns the glow intensity [0, 1] for a given cell angle.
// The sweep has a trailing glow of SweepTrailDeg degrees.
// Returns 0 if the cell is outside the sweep trail.
func (s *Sweep) Intensity(cellAngle float64) float64 {
	// How far behind the sweep this angle is
	diff := NormalizeAngle(s.Angle - cellAngle)

	trailRad := config.SweepTrailDeg * math.Pi / 180.0
	if diff > trailRad {
		return 0
	}

	// Linear falloff: 1.0 at sweep head → 0.0 at trail end
	return 1.0 - diff/trailRad
}
