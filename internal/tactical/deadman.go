package tactical

import (
	"fmt"
	"time"

	"vajra.klederson.com/internal/config"
)

const taskDeadMan = "dead-man"

// StartDeadManSwitch arms a fresh countdown. Returns false if already armed.
func (e *Engine) StartDeadManSwitch() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.DeadMan.Armed {
		return false
	}
	e.deadManSession++
	e.state.DeadMan = DeadMan{Armed: true, Remaining: config.DeadManSeconds}
	e.addLog(fmt.Sprintf("DEAD-MAN SWITCH ARMED - %d seconds to cancel", config.DeadManSeconds), SeverityCritical, e.sched.Now())
	e.scheduleDeadManTick(e.deadManSession)
	return true
}

// CancelDeadManSwitch disarms the countdown and drops the pending tick.
// Returns false if nothing is armed.
func (e *Engine) CancelDeadManSwitch() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.DeadMan.Armed {
		return false
	}
	e.disarmDeadMan()
	e.addLog("Dead-man switch cancelled", SeverityInfo, e.sched.Now())
	return true
}

func (e *Engine) disarmDeadMan() {
	e.sched.Cancel(taskDeadMan)
	e.deadManSession++
	e.state.DeadMan = DeadMan{}
	e.touch()
}

func (e *Engine) scheduleDeadManTick(session uint64) {
	e.sched.After(taskDeadMan, e.cfg.DeadManTick, func(now time.Time) {
		e.deadManTick(session, now)
	})
}

// deadManTick is one step of the countdown. A tick from an older session
// is dropped.
func (e *Engine) deadManTick(session uint64, now time.Time) {
	if !e.state.DeadMan.Armed || session != e.deadManSession {
		return
	}
	e.state.DeadMan.Remaining--
	e.touch()
	if e.state.DeadMan.Remaining > 0 {
		e.scheduleDeadManTick(session)
		return
	}

	e.state.DeadMan = DeadMan{}
	e.deadManSession++
	e.addLog("DEAD-MAN SWITCH ACTIVATED - INITIATING DATA WIPE", SeverityCritical, now)
	e.metrics.deadMan()
	e.wipes = append(e.wipes, now)
}
