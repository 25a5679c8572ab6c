package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/radar"
	"vajra.klederson.com/internal/tactical"
)

var t0 = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

// quietSettings turns every periodic simulator off.
func quietSettings() config.Settings {
	s := config.Defaults()
	s.VitalsInterval = 0
	s.DroneInterval = 0
	s.GunfireInterval = 0
	s.DriftInterval = 0
	s.Seed = 1
	return s
}

func newEngine(t *testing.T, s config.Settings) *tactical.Engine {
	t.Helper()
	e, err := tactical.New(tactical.Options{Settings: s, Start: t0})
	require.NoError(t, err)
	return e
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m AppModel, keys ...string) AppModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(AppModel)
	}
	return m
}

func TestDriver_StepsEngine(t *testing.T) {
	e := newEngine(t, quietSettings())
	d := NewDriver(e, t0)

	assert.Equal(t, 1500*time.Millisecond, d.Step(t0.Add(1500*time.Millisecond)))
	assert.Equal(t, t0.Add(1500*time.Millisecond), e.Now())

	assert.Zero(t, d.Step(t0), "clock went backwards")
	assert.Equal(t, t0.Add(1500*time.Millisecond), e.Now())

	assert.Equal(t, 500*time.Millisecond, d.Step(t0.Add(2*time.Second)))
	assert.Equal(t, t0.Add(2*time.Second), e.Now())
}

func TestDriver_RunsDueTasks(t *testing.T) {
	e := newEngine(t, quietSettings())
	d := NewDriver(e, t0)
	require.True(t, e.SimulateJamming())

	d.Step(t0.Add(9 * time.Second))
	assert.True(t, e.Snapshot().IsJammed)
	d.Step(t0.Add(10 * time.Second))
	assert.False(t, e.Snapshot().IsJammed)
}

func TestDriver_CapsLongGaps(t *testing.T) {
	s := quietSettings()
	s.VitalsInterval = time.Second
	e := newEngine(t, s)
	e.Start()
	d := NewDriver(e, t0)

	assert.Equal(t, config.MaxCatchUp, d.Step(t0.Add(8*time.Hour)))
	assert.Equal(t, t0.Add(config.MaxCatchUp), e.Now())
	assert.Len(t, e.Snapshot().HeartRateHistory, 1+int(config.MaxCatchUp/time.Second))

	// the next step measures from the wall clock, not the logical one
	assert.Equal(t, time.Second, d.Step(t0.Add(8*time.Hour+time.Second)))
	assert.Equal(t, t0.Add(config.MaxCatchUp+time.Second), e.Now())
	e.Stop()
}

func TestModel_Keys(t *testing.T) {
	e := newEngine(t, quietSettings())
	m := New(e, t0)

	m = press(m, "v")
	assert.Equal(t, tactical.ViewCommander, m.state.ViewMode)
	m = press(m, "v")
	assert.Equal(t, tactical.ViewOperator, m.state.ViewMode)

	m = press(m, "s")
	assert.Equal(t, tactical.ModeStealth, m.state.SystemMode)
	m = press(m, "s")
	assert.Equal(t, tactical.ModeNormal, m.state.SystemMode)

	m = press(m, "g")
	assert.Equal(t, tactical.SignalVBN, m.state.SignalStatus)

	m = press(m, "k")
	assert.True(t, m.state.CameraActive)

	m = press(m, "j")
	assert.True(t, m.state.IsJammed)
}

func TestModel_DeadManNeedsConfirmation(t *testing.T) {
	e := newEngine(t, quietSettings())
	m := New(e, t0)

	m = press(m, "d")
	assert.True(t, m.confirmArm)
	assert.False(t, m.state.DeadMan.Armed)

	m = press(m, "n")
	assert.False(t, m.confirmArm)
	assert.False(t, m.state.DeadMan.Armed)

	m = press(m, "d", "y")
	assert.False(t, m.confirmArm)
	n, armed := m.state.DeadMan.Countdown()
	assert.True(t, armed)
	assert.Equal(t, config.DeadManSeconds, n)

	m = press(m, "d")
	assert.False(t, m.confirmArm, "already armed")

	m = press(m, "c")
	assert.False(t, m.state.DeadMan.Armed)
}

func TestModel_TickAdvancesEngine(t *testing.T) {
	e := newEngine(t, quietSettings())
	m := New(e, t0)
	e.StartDeadManSwitch()

	next, cmd := m.Update(TickMsg(t0.Add(3 * time.Second)))
	m = next.(AppModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, t0.Add(3*time.Second), m.state.Now)
	assert.Equal(t, config.DeadManSeconds-3, m.state.DeadMan.Remaining)
}

func TestModel_WipeMsg(t *testing.T) {
	m := New(newEngine(t, quietSettings()), t0)
	next, _ := m.Update(WipeMsg(t0))
	assert.True(t, next.(AppModel).wiped)
}

func TestModel_QuitStopsEngine(t *testing.T) {
	e := newEngine(t, quietSettings())
	e.Start()
	m := New(e, t0)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, e.Running())
}

func TestModel_View(t *testing.T) {
	e := newEngine(t, quietSettings())
	m := New(e, t0)
	assert.Contains(t, m.View(), "Initializing")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(AppModel)
	out := m.View()
	assert.Contains(t, out, config.AppName)
	assert.Contains(t, out, "BIOMETRICS")
	assert.Contains(t, out, "SHOT-SPOTTER")

	m = press(m, "v")
	out = m.View()
	assert.Contains(t, out, "SQUAD")
	assert.Contains(t, out, "ALPHA-1")
}

func TestBlips(t *testing.T) {
	s := tactical.State{
		Now:         t0,
		Coordinates: tactical.InitialCoordinates,
		DroneAlerts: []tactical.DroneAlert{
			{Type: "DJI Mini", Distance: 250, Bearing: 90, Timestamp: t0},
			{Type: "Custom FPV", Distance: 800, Bearing: 10, Timestamp: t0.Add(-time.Second)},
		},
		GunfireEvents: []tactical.GunfireEvent{{Bearing: 200, Distance: 400, Timestamp: t0}},
		Squad: []tactical.SquadMember{
			{Callsign: "ALPHA-1", Position: tactical.Coordinates{Lat: tactical.InitialCoordinates.Lat + 0.001, Lng: tactical.InitialCoordinates.Lng}},
		},
	}

	b := Blips(s)
	require.Len(t, b, 3)
	assert.Equal(t, radar.KindGunfire, b[0].Kind)
	assert.Equal(t, radar.TierCritical, b[0].Tier)
	assert.Equal(t, "Custom FPV", b[1].Label)
	assert.Equal(t, '^', b[1].Glyph)
	assert.Equal(t, radar.TierNominal, b[1].Tier)
	assert.Equal(t, "DJI Mini", b[2].Label)
	assert.Equal(t, '!', b[2].Glyph)
	assert.Equal(t, radar.TierCritical, b[2].Tier)

	s.ViewMode = tactical.ViewCommander
	b = Blips(s)
	require.Len(t, b, 4)
	assert.Equal(t, radar.KindFriendly, b[0].Kind)
	assert.Equal(t, 'A', b[0].Glyph)
	assert.InDelta(t, 0, b[0].Reading.Bearing, 0.5)
	assert.InDelta(t, 111, b[0].Reading.Distance, 2)
}

func TestRunHeadless_StopsOnCancel(t *testing.T) {
	s := quietSettings()
	s.VitalsInterval = time.Millisecond
	e, err := tactical.New(tactical.Options{Settings: s})
	require.NoError(t, err)
	e.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	final := RunHeadless(ctx, e, 5*time.Millisecond, zerolog.Nop())

	assert.False(t, e.Running())
	assert.NotEmpty(t, final.HeartRateHistory)
}

func TestSummary(t *testing.T) {
	e := newEngine(t, quietSettings())
	e.SimulateJamming()
	out := Summary(e.Snapshot())

	assert.Contains(t, out, "VBN (jammed)")
	assert.Contains(t, out, "HR 72")
	assert.Contains(t, out, "SIGNAL JAMMING DETECTED")
	assert.True(t, strings.HasPrefix(out, config.AppName))
}

func TestSummary_JammedShowsVBNAfterToggle(t *testing.T) {
	e := newEngine(t, quietSettings())
	e.SimulateJamming()
	e.ToggleSignalStatus()
	require.Equal(t, tactical.SignalGPS, e.Snapshot().SignalStatus)

	out := Summary(e.Snapshot())
	assert.Contains(t, out, "VBN (jammed)")
	assert.NotContains(t, out, "GPS (jammed)")
}
