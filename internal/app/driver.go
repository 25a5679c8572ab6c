package app

import (
	"time"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/tactical"
)

// Driver feeds wall-clock time into the engine's logical clock.
type Driver struct {
	engine *tactical.Engine
	last   time.Time
}

// NewDriver anchors the driver at start, which should match the engine's
// logical epoch.
func NewDriver(engine *tactical.Engine, start time.Time) *Driver {
	return &Driver{engine: engine, last: start}
}

// Step advances the engine by the time elapsed since the previous step and
// returns it. A clock that goes backwards yields no step. A gap longer than
// config.MaxCatchUp is cut to that and the logical clock lags from then on.
func (d *Driver) Step(now time.Time) time.Duration {
	if !now.After(d.last) {
		return 0
	}
	elapsed := now.Sub(d.last)
	d.last = now
	if elapsed > config.MaxCatchUp {
		elapsed = config.MaxCatchUp
	}
	d.engine.Advance(elapsed)
	return elapsed
}
