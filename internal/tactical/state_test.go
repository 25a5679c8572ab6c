package tactical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrependBounded(t *testing.T) {
	var list []int
	for i := 1; i <= 7; i++ {
		prev := list
		list = prependBounded(list, i, 3)
		if len(prev) > 0 {
			assert.Equal(t, i-1, prev[0], "input slice untouched")
		}
	}
	assert.Equal(t, []int{7, 6, 5}, list)
	assert.Nil(t, prependBounded(list, 8, 0))
}

func TestSampleRing(t *testing.T) {
	r := NewSampleRing(3)
	assert.Nil(t, r.Values())

	r.Push(1)
	r.Push(2)
	assert.Equal(t, []float64{1, 2}, r.Values())

	r.Push(3)
	r.Push(4)
	assert.Equal(t, []float64{2, 3, 4}, r.Values())
}

func TestNavigation_JammingForcesVBN(t *testing.T) {
	s := State{SignalStatus: SignalGPS}
	assert.Equal(t, SignalGPS, s.Navigation())

	s.IsJammed = true
	assert.Equal(t, SignalVBN, s.Navigation())

	s.IsJammed = false
	s.SignalStatus = SignalVBN
	assert.Equal(t, SignalVBN, s.Navigation())
}

func TestQueries(t *testing.T) {
	s := State{
		Now: t0.Add(time.Minute),
		DroneAlerts: []DroneAlert{
			{ID: "a", Distance: 120, Timestamp: t0.Add(50 * time.Second)},
			{ID: "b", Distance: 800, Timestamp: t0.Add(40 * time.Second)},
			{ID: "c", Distance: 299, Timestamp: t0.Add(30 * time.Second)}, // exactly 30s old
			{ID: "d", Distance: 100, Timestamp: t0},
		},
		GunfireEvents: []GunfireEvent{
			{ID: "g1", Timestamp: t0.Add(55 * time.Second)},
			{ID: "g2", Timestamp: t0.Add(45 * time.Second)},
		},
	}

	ids := func(alerts []DroneAlert) []string {
		var out []string
		for _, a := range alerts {
			out = append(out, a.ID)
		}
		return out
	}
	assert.Equal(t, []string{"a", "b"}, ids(s.ActiveAlerts()))
	assert.Equal(t, []string{"a"}, ids(s.CriticalAlerts()))

	shots := s.ActiveGunfire(10 * time.Second)
	require.Len(t, shots, 1)
	assert.Equal(t, "g1", shots[0].ID)
	assert.Len(t, s.ActiveGunfire(15*time.Second), 1)
	assert.Len(t, s.ActiveGunfire(16*time.Second), 2)
}

func TestVitalLevels(t *testing.T) {
	tests := []struct {
		name string
		v    Vitals
		want VitalLevels
	}{
		{"resting", InitialVitals, VitalLevels{}},
		{"elevated", Vitals{HeartRate: 101, SpO2: 93, HRVStress: 51, HAPERisk: 31},
			VitalLevels{LevelWarning, LevelWarning, LevelWarning, LevelWarning}},
		{"critical", Vitals{HeartRate: 141, SpO2: 89, HRVStress: 71, HAPERisk: 61},
			VitalLevels{LevelCritical, LevelCritical, LevelCritical, LevelCritical}},
		{"boundaries", Vitals{HeartRate: 140, SpO2: 90, HRVStress: 70, HAPERisk: 60},
			VitalLevels{LevelWarning, LevelWarning, LevelWarning, LevelWarning}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Levels())
		})
	}
}

func TestSquadRoster(t *testing.T) {
	squad := newSquad(InitialCoordinates, NewSource(3))
	require.Len(t, squad, len(Callsigns))
	for i, m := range squad {
		assert.Equal(t, Callsigns[i], m.Callsign)
		assert.Equal(t, SquadActive, m.Status)
		assert.InDelta(t, InitialCoordinates.Lat, m.Position.Lat, squadSpread)
		assert.InDelta(t, InitialCoordinates.Lng, m.Position.Lng, squadSpread)
		assert.GreaterOrEqual(t, m.Vitals.HeartRate, 70.0)
		assert.Less(t, m.Vitals.HeartRate, 90.0)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "commander", ViewCommander.String())
	assert.Equal(t, "VBN", SignalVBN.String())
	assert.Equal(t, "high-stress", ModeHighStress.String())
	assert.Equal(t, "critical", SeverityCritical.String())
	assert.Equal(t, "wounded", SquadWounded.String())
	assert.Equal(t, "warning", LevelWarning.String())
}
