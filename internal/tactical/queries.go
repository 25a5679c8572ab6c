package tactical

import (
	"time"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/radar"
)

// ActiveAlerts returns drone alerts younger than DroneActiveTTL at s.Now.
func (s State) ActiveAlerts() []DroneAlert {
	var out []DroneAlert
	for _, a := range s.DroneAlerts {
		if s.Now.Sub(a.Timestamp) < config.DroneActiveTTL {
			out = append(out, a)
		}
	}
	return out
}

// CriticalAlerts returns the active alerts inside the critical distance.
func (s State) CriticalAlerts() []DroneAlert {
	var out []DroneAlert
	for _, a := range s.ActiveAlerts() {
		if radar.Classify(float64(a.Distance), config.DroneCriticalDistance) == radar.TierCritical {
			out = append(out, a)
		}
	}
	return out
}

// ActiveGunfire returns gunfire events younger than ttl at s.Now.
func (s State) ActiveGunfire(ttl time.Duration) []GunfireEvent {
	var out []GunfireEvent
	for _, g := range s.GunfireEvents {
		if s.Now.Sub(g.Timestamp) < ttl {
			out = append(out, g)
		}
	}
	return out
}

// Navigation is the source the HUD shows. Jamming forces VBN whatever the
// operator last selected.
func (s State) Navigation() SignalSource {
	if s.IsJammed {
		return SignalVBN
	}
	return s.SignalStatus
}
