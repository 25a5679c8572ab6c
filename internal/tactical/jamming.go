package tactical

import "time"

const taskJamClear = "jam-clear"

// SimulateJamming forces the jammed state and schedules its auto-clear.
// It returns false while already jammed; no second timer is armed.
func (e *Engine) SimulateJamming() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.IsJammed {
		return false
	}
	now := e.sched.Now()
	e.sched.After(taskJamClear, e.cfg.JamClearDelay, e.clearJamming)
	e.state.IsJammed = true
	e.state.JamClearsAt, _ = e.sched.Deadline(taskJamClear)
	e.state.SignalStatus = SignalVBN
	e.addLog("SIGNAL JAMMING DETECTED - Switching to Vision-Based Navigation", SeverityCritical, now)
	e.metrics.jamming()
	return true
}

// clearJamming lifts the jam. The signal source stays on VBN until the
// operator toggles it.
func (e *Engine) clearJamming(now time.Time) {
	if !e.state.IsJammed {
		return
	}
	e.state.IsJammed = false
	e.state.JamClearsAt = time.Time{}
	e.addLog("Jamming cleared - GPS available, holding on VBN", SeverityInfo, now)
}

// ToggleSignalStatus flips GPS and VBN. It is available in any state.
func (e *Engine) ToggleSignalStatus() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.SignalStatus == SignalGPS {
		e.state.SignalStatus = SignalVBN
	} else {
		e.state.SignalStatus = SignalGPS
	}
	e.touch()
	return true
}
