package tactical

import (
	"time"

	"vajra.klederson.com/internal/config"
)

// Vital bounds. Every tick clamps into these ranges.
const (
	HeartRateMin = 55.0
	HeartRateMax = 180.0
	SpO2Min      = 88.0
	SpO2Max      = 100.0
	HRVStressMin = 10.0
	HRVStressMax = 100.0
	HAPERiskMin  = 0.0
	HAPERiskMax  = 100.0
)

// Per-tick random walk half-widths.
const (
	heartRateStep = 4.0
	spO2Step      = 1.0
	hrvStep       = 2.5
	hapeStep      = 1.5
)

// InitialVitals is the operator's reading at session start.
var InitialVitals = Vitals{HeartRate: 72, SpO2: 98, HRVStress: 35, HAPERisk: 12}

// Level is a display grade for a single vital.
type Level int

const (
	LevelNormal Level = iota
	LevelWarning
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "normal"
	}
}

// VitalLevels grades each field of Vitals.
type VitalLevels struct {
	HeartRate Level
	SpO2      Level
	HRVStress Level
	HAPERisk  Level
}

// Levels grades the readings for display.
func (v Vitals) Levels() VitalLevels {
	return VitalLevels{
		HeartRate: above(v.HeartRate, 100, 140),
		SpO2:      below(v.SpO2, 94, 90),
		HRVStress: above(v.HRVStress, 50, 70),
		HAPERisk:  above(v.HAPERisk, 30, 60),
	}
}

func above(v, warn, crit float64) Level {
	switch {
	case v > crit:
		return LevelCritical
	case v > warn:
		return LevelWarning
	}
	return LevelNormal
}

func below(v, warn, crit float64) Level {
	switch {
	case v < crit:
		return LevelCritical
	case v < warn:
		return LevelWarning
	}
	return LevelNormal
}

// perturb applies one random-walk step to every field.
// Draw order is heart rate, SpO2, HRV, HAPE.
func perturb(v Vitals, rng Source) Vitals {
	v.HeartRate = clamp(v.HeartRate+spread(rng, heartRateStep), HeartRateMin, HeartRateMax)
	v.SpO2 = clamp(v.SpO2+spread(rng, spO2Step), SpO2Min, SpO2Max)
	v.HRVStress = clamp(v.HRVStress+spread(rng, hrvStep), HRVStressMin, HRVStressMax)
	v.HAPERisk = clamp(v.HAPERisk+spread(rng, hapeStep), HAPERiskMin, HAPERiskMax)
	return v
}

// NextSystemMode applies the heart-rate hysteresis band. Above the enter
// threshold any mode becomes high-stress; at or below the exit threshold
// high-stress falls back to normal. Inside the band the mode is kept.
func NextSystemMode(heartRate float64, mode SystemMode) SystemMode {
	switch {
	case heartRate > config.HighStressEnterBPM:
		return ModeHighStress
	case heartRate <= config.HighStressExitBPM && mode == ModeHighStress:
		return ModeNormal
	}
	return mode
}

func (e *Engine) tickVitals(now time.Time) {
	e.state.Vitals = perturb(e.state.Vitals, e.rng)
	e.history.Push(e.state.Vitals.HeartRate)
	e.touch()

	next := NextSystemMode(e.state.Vitals.HeartRate, e.state.SystemMode)
	if next == e.state.SystemMode {
		return
	}
	prev := e.state.SystemMode
	e.setMode(next)
	switch {
	case next == ModeHighStress:
		e.addLog("HIGH STRESS DETECTED - Elevated heart rate, simplifying interface", SeverityWarning, now)
	case prev == ModeHighStress:
		e.addLog("Heart rate stabilised - High stress mode released", SeverityInfo, now)
	}
}
