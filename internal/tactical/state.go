package tactical

import (
	"time"

	"github.com/rs/zerolog"
)

// ViewMode selects the operator or commander layout.
type ViewMode int

const (
	ViewOperator ViewMode = iota
	ViewCommander
)

func (v ViewMode) String() string {
	if v == ViewCommander {
		return "commander"
	}
	return "operator"
}

func (v ViewMode) valid() bool {
	return v == ViewOperator || v == ViewCommander
}

// SignalSource is the positioning source shown to the operator.
type SignalSource int

const (
	SignalGPS SignalSource = iota
	SignalVBN              // vision-based navigation
)

func (s SignalSource) String() string {
	if s == SignalVBN {
		return "VBN"
	}
	return "GPS"
}

// SystemMode is the mutually exclusive operating mode.
type SystemMode int

const (
	ModeNormal SystemMode = iota
	ModeStealth
	ModeHighStress
)

func (m SystemMode) String() string {
	switch m {
	case ModeStealth:
		return "stealth"
	case ModeHighStress:
		return "high-stress"
	default:
		return "normal"
	}
}

func (m SystemMode) valid() bool {
	return m >= ModeNormal && m <= ModeHighStress
}

// Severity grades AI log entries.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "info"
	}
}

func (s Severity) logLevel() zerolog.Level {
	switch s {
	case SeverityWarning:
		return zerolog.WarnLevel
	case SeverityCritical:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Vitals are the operator's physiological readings.
type Vitals struct {
	HeartRate float64 // BPM, [55, 180]
	SpO2      float64 // %, [88, 100]
	HRVStress float64 // [10, 100]
	HAPERisk  float64 // %, [0, 100]
}

// Coordinates is a WGS84 position with altitude (m) and heading (deg).
type Coordinates struct {
	Lat     float64
	Lng     float64
	Alt     float64
	Heading float64 // [0, 360)
}

// DroneAlert is an acoustic drone detection.
type DroneAlert struct {
	ID         string
	Type       string
	Distance   int // meters, > 0
	Bearing    int // degrees, [0, 360)
	Confidence int // percent, [0, 100]
	Timestamp  time.Time
}

// GunfireEvent is a triangulated shot.
type GunfireEvent struct {
	ID        string
	Bearing   int
	Distance  int
	Timestamp time.Time
}

// LogEntry is one line of the AI reasoning log.
type LogEntry struct {
	ID        string
	Message   string
	Timestamp time.Time
	Severity  Severity
}

// SquadStatus is a squad member's condition.
type SquadStatus int

const (
	SquadActive SquadStatus = iota
	SquadWounded
	SquadExtracted
)

func (s SquadStatus) String() string {
	switch s {
	case SquadWounded:
		return "wounded"
	case SquadExtracted:
		return "extracted"
	default:
		return "active"
	}
}

// SquadMember is a teammate. Members are generated once and never re-simulated.
type SquadMember struct {
	ID       string
	Callsign string
	Status   SquadStatus
	Vitals   Vitals
	Position Coordinates
}

// DeadMan is the dead-man switch countdown.
type DeadMan struct {
	Armed     bool
	Remaining int // seconds left while armed
}

// Countdown returns the remaining seconds, or false when inactive.
func (d DeadMan) Countdown() (int, bool) {
	if !d.Armed {
		return 0, false
	}
	return d.Remaining, true
}

// State is an immutable snapshot of the tactical picture.
// Lists are newest first.
type State struct {
	ViewMode     ViewMode
	SignalStatus SignalSource
	IsJammed     bool
	JamClearsAt  time.Time // zero unless jammed
	SystemMode   SystemMode
	CameraActive bool

	Vitals           Vitals
	HeartRateHistory []float64 // chronological
	Coordinates      Coordinates

	DroneAlerts   []DroneAlert
	GunfireEvents []GunfireEvent
	AILog         []LogEntry
	Squad         []SquadMember

	DeadMan DeadMan

	Now     time.Time // logical time the snapshot was taken
	Version uint64    // bumped on every mutation
}

// Clone returns a deep copy so callers can never alias engine storage.
func (s State) Clone() State {
	cp := s
	cp.HeartRateHistory = append([]float64(nil), s.HeartRateHistory...)
	cp.DroneAlerts = append([]DroneAlert(nil), s.DroneAlerts...)
	cp.GunfireEvents = append([]GunfireEvent(nil), s.GunfireEvents...)
	cp.AILog = append([]LogEntry(nil), s.AILog...)
	cp.Squad = append([]SquadMember(nil), s.Squad...)
	return cp
}
