package tactical

import (
	"fmt"
	"time"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/radar"
)

// DroneCatalog lists the acoustic signatures the classifier can match.
var DroneCatalog = []string{"Mavic-3 Pro", "DJI Mini", "Custom FPV", "Fixed-Wing ISR"}

func (e *Engine) tickDrones(now time.Time) {
	if e.rng.Float64() >= e.cfg.DroneProbability {
		return
	}
	e.emitDrone(now)
}

// emitDrone draws type, distance, bearing and confidence in that order.
func (e *Engine) emitDrone(now time.Time) DroneAlert {
	alert := DroneAlert{
		ID:         e.newID("drone"),
		Type:       DroneCatalog[e.rng.Intn(len(DroneCatalog))],
		Distance:   100 + e.rng.Intn(900),
		Bearing:    e.rng.Intn(360),
		Confidence: 70 + e.rng.Intn(30),
		Timestamp:  now,
	}
	e.state.DroneAlerts = prependBounded(e.state.DroneAlerts, alert, config.MaxDroneAlerts)

	sev := SeverityWarning
	if radar.Classify(float64(alert.Distance), config.DroneCriticalDistance) == radar.TierCritical {
		sev = SeverityCritical
	}
	e.addLog(fmt.Sprintf("Acoustic signature matched to %s @ %dm", alert.Type, alert.Distance), sev, now)
	e.metrics.droneAlert(sev)
	return alert
}

func (e *Engine) tickGunfire(now time.Time) {
	if e.rng.Float64() >= e.cfg.GunfireProbability {
		return
	}
	e.emitGunfire(now)
}

// emitGunfire draws bearing then distance.
func (e *Engine) emitGunfire(now time.Time) GunfireEvent {
	shot := GunfireEvent{
		ID:        e.newID("shot"),
		Bearing:   e.rng.Intn(360),
		Distance:  50 + e.rng.Intn(500),
		Timestamp: now,
	}
	e.state.GunfireEvents = prependBounded(e.state.GunfireEvents, shot, config.MaxGunfireEvents)
	e.addLog(fmt.Sprintf("Triangulating gunshot via Mesh-Net nodes @ %d°", shot.Bearing), SeverityCritical, now)
	e.metrics.shot()
	return shot
}
