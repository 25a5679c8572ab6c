package radar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSweep_UpdateAndIntensity(t *testing.T) {
	s := NewSweep(t0)
	s.Update(t0.Add(500 * time.Millisecond)) // quarter turn at 30 RPM
	assert.InDelta(t, 90, s.Degrees(), 1e-6)

	assert.InDelta(t, 1, s.Intensity(math.Pi/2), 1e-6)
	assert.Equal(t, 0.0, s.Intensity(math.Pi))
	assert.Greater(t, s.Intensity(math.Pi/2-0.1), 0.0)
}

func TestSweep_WrapsAfterFullTurn(t *testing.T) {
	s := NewSweep(t0)

	s.Update(t0.Add(2 * time.Second))
	assert.InDelta(t, 0, s.Degrees(), 1e-6)
}

func TestSweep_ClockBeforeStart(t *testing.T) {
	s := NewSweep(t0)
	s.Update(t0.Add(-time.Second))
	assert.Equal(t, 0.0, s.Angle)
}

func TestSweep_TrailFalloff(t *testing.T) {
	s := NewSweep(t0)
	s.Update(t0.Add(500 * time.Millisecond))

	assert.InDelta(t, 0.5, s.Intensity(math.Pi/2-math.Pi/6), 1e-9)
	assert.Equal(t, 0.0, s.Intensity(0), "past the trail")
}

func TestSweep_PulseRange(t *testing.T) {
	s := NewSweep(t0)
	for ms := 0; ms < 2000; ms += 37 {
		s.Update(t0.Add(time.Duration(ms) * time.Millisecond))
		p := s.Pulse()
		assert.GreaterOrEqual(t, p, 0.4-1e-9)
		assert.LessOrEqual(t, p, 1.0+1e-9)
	}
}
