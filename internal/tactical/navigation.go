package tactical

import (
	"time"

	"vajra.klederson.com/internal/radar"
)

// InitialCoordinates is the operator's position at session start.
var InitialCoordinates = Coordinates{Lat: 34.0522, Lng: -118.2437, Alt: 2847, Heading: 45}

const (
	positionDrift = 0.00005 // degrees per tick, each axis
	headingDrift  = 2.5     // degrees per tick
)

// drift moves the position by a small random walk. Draw order is lat, lng,
// heading.
func drift(c Coordinates, rng Source) Coordinates {
	c.Lat = clamp(c.Lat+spread(rng, positionDrift), -90, 90)
	c.Lng += spread(rng, positionDrift)
	c.Heading = radar.NormalizeBearing(c.Heading + spread(rng, headingDrift))
	return c
}

func (e *Engine) tickDrift(time.Time) {
	e.state.Coordinates = drift(e.state.Coordinates, e.rng)
	e.touch()
}
