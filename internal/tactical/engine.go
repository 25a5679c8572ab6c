package tactical

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"vajra.klederson.com/internal/clock"
	"vajra.klederson.com/internal/config"
)

// Periodic simulator task names.
const (
	taskVitals  = "vitals"
	taskDrones  = "drones"
	taskGunfire = "gunfire"
	taskDrift   = "drift"
)

// Options configures an Engine. Zero fields fall back to defaults.
type Options struct {
	Settings config.Settings
	Start    time.Time                  // logical epoch; zero means time.Now()
	Rand     Source                     // zero means NewSource(Settings.Seed)
	NewID    func(prefix string) string // zero means NewID
	Logger   *zerolog.Logger            // nil discards
	OnWipe   func(at time.Time)         // called once per dead-man trigger, outside the lock
	Meters   metric.MeterProvider       // nil means the global provider
}

// Engine owns the tactical state and the scheduler that mutates it.
// All mutation is serialised behind mu; readers get deep copies.
type Engine struct {
	mu    sync.RWMutex
	sched *clock.Scheduler
	state State

	cfg     config.Settings
	rng     Source
	newID   func(prefix string) string
	log     zerolog.Logger
	onWipe  func(at time.Time)
	metrics *instruments

	history        *SampleRing
	running        bool
	deadManSession uint64
	wipes          []time.Time
}

// New builds an engine with the initial readings, roster and seed log.
// Simulators do not run until Start.
func New(opts Options) (*Engine, error) {
	cfg := opts.Settings
	d := config.Defaults()
	if cfg.JamClearDelay <= 0 {
		cfg.JamClearDelay = d.JamClearDelay
	}
	if cfg.DeadManTick <= 0 {
		cfg.DeadManTick = d.DeadManTick
	}

	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	e := &Engine{
		sched:   clock.New(start),
		cfg:     cfg,
		rng:     opts.Rand,
		newID:   opts.NewID,
		onWipe:  opts.OnWipe,
		history: NewSampleRing(config.HeartRateSamples),
	}
	if e.rng == nil {
		e.rng = NewSource(cfg.Seed)
	}
	if e.newID == nil {
		e.newID = NewID
	}
	if opts.Logger != nil {
		e.log = opts.Logger.With().Str("component", "tactical").Logger()
	} else {
		e.log = zerolog.Nop()
	}

	metrics, err := newInstruments(opts.Meters)
	if err != nil {
		return nil, fmt.Errorf("failed to create tactical metrics: %w", err)
	}
	e.metrics = metrics

	e.state = State{
		ViewMode:     ViewOperator,
		SignalStatus: SignalGPS,
		SystemMode:   ModeNormal,
		Vitals:       InitialVitals,
		Coordinates:  InitialCoordinates,
		Squad:        newSquad(InitialCoordinates, NewSource(cfg.Seed)),
	}
	e.history.Push(InitialVitals.HeartRate)
	e.addLog("VAJRA-X tactical engine online - All sensors nominal", SeverityInfo, start)

	return e, nil
}

// Start registers the periodic simulators and the heart-rate gauge. A
// non-positive period leaves that simulator off. Calling Start twice is a
// no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.sched.Every(taskVitals, e.cfg.VitalsInterval, e.tickVitals)
	e.sched.Every(taskDrones, e.cfg.DroneInterval, e.tickDrones)
	e.sched.Every(taskGunfire, e.cfg.GunfireInterval, e.tickGunfire)
	e.sched.Every(taskDrift, e.cfg.DriftInterval, e.tickDrift)

	e.log.Info().
		Strs("tasks", e.sched.Names()).
		Time("at", e.sched.Now()).
		Msg("tactical engine started")
	e.mu.Unlock()

	// The gauge callback takes e.mu, so it is registered outside the lock.
	if err := e.metrics.observe(e); err != nil {
		e.log.Warn().Err(err).Msg("heart rate gauge unavailable")
	}
}

// Stop cancels every outstanding task and the gauge callback. An armed
// dead-man switch and an active jam are dropped without log entries.
// Stopping an engine that is not running only clears that state.
func (e *Engine) Stop() {
	e.mu.Lock()
	wasRunning := e.running
	pending := e.sched.Len()
	e.sched.CancelAll()
	e.running = false
	e.deadManSession++
	e.state.DeadMan = DeadMan{}
	e.state.IsJammed = false
	e.state.JamClearsAt = time.Time{}
	e.touch()
	if wasRunning {
		e.log.Info().
			Int("cancelled", pending).
			Time("at", e.sched.Now()).
			Msg("tactical engine stopped")
	}
	e.mu.Unlock()

	if err := e.metrics.release(); err != nil {
		e.log.Warn().Err(err).Msg("failed to release heart rate gauge")
	}
}

// Running reports whether the periodic simulators are registered.
func (e *Engine) Running() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.running
}

// Advance moves logical time forward by d and fires every task that falls
// due, in deadline order. It returns the number of callbacks run.
// Wipe hooks run after the lock is released.
func (e *Engine) Advance(d time.Duration) int {
	e.mu.Lock()
	fired := e.sched.Advance(d)
	wipes := e.wipes
	e.wipes = nil
	e.mu.Unlock()

	if e.onWipe != nil {
		for _, at := range wipes {
			e.onWipe(at)
		}
	}
	return fired
}

// Now returns the engine's logical time.
func (e *Engine) Now() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sched.Now()
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := e.state.Clone()
	s.HeartRateHistory = e.history.Values()
	s.Now = e.sched.Now()
	return s
}

// SetViewMode switches the layout. Unknown modes are rejected.
func (e *Engine) SetViewMode(mode ViewMode) bool {
	if !mode.valid() {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.ViewMode != mode {
		e.state.ViewMode = mode
		e.touch()
	}
	return true
}

// SetSystemMode applies an explicit mode. Heart rate may still force
// high-stress on the next vitals tick.
func (e *Engine) SetSystemMode(mode SystemMode) bool {
	if !mode.valid() {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.state.SystemMode
	if prev == mode {
		return true
	}
	e.setMode(mode)
	now := e.sched.Now()
	switch {
	case mode == ModeStealth:
		e.addLog("STEALTH MODE ENGAGED - Switching to IR spectrum", SeverityInfo, now)
	case prev == ModeStealth:
		e.addLog("Stealth mode disengaged - Visible spectrum restored", SeverityInfo, now)
	}
	return true
}

// SetCameraActive records whether the (mocked) vitals camera is capturing.
func (e *Engine) SetCameraActive(active bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.CameraActive != active {
		e.state.CameraActive = active
		e.touch()
	}
	return true
}

func (e *Engine) setMode(mode SystemMode) {
	prev := e.state.SystemMode
	e.state.SystemMode = mode
	e.touch()
	e.metrics.modeChange(prev, mode)
	e.log.Debug().
		Stringer("from", prev).
		Stringer("to", mode).
		Msg("system mode changed")
}

func (e *Engine) touch() {
	e.state.Version++
}
