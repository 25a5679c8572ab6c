package app

import (
	"fmt"
	"time"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/geo"
	"vajra.klederson.com/internal/radar"
	"vajra.klederson.com/internal/tactical"
)

// friendlyTTL keeps squad blips at full opacity; they are re-stamped on
// every frame.
const friendlyTTL = time.Hour

// Blips converts a snapshot into radar contacts, oldest first so newer
// contacts draw on top. Squad members are plotted only in commander view.
func Blips(s tactical.State) []radar.Blip {
	out := make([]radar.Blip, 0, len(s.DroneAlerts)+len(s.GunfireEvents)+len(s.Squad))

	if s.ViewMode == tactical.ViewCommander {
		for _, m := range s.Squad {
			bearing, dist := geo.Offset(s.Coordinates.Lat, s.Coordinates.Lng, m.Position.Lat, m.Position.Lng)
			out = append(out, radar.Blip{
				Reading: radar.Reading{Bearing: bearing, Distance: dist, Timestamp: s.Now},
				TTL:     friendlyTTL,
				Tier:    radar.TierNominal,
				Kind:    radar.KindFriendly,
				Glyph:   rune(m.Callsign[0]),
				Label:   m.Callsign,
			})
		}
	}

	for i := len(s.GunfireEvents) - 1; i >= 0; i-- {
		g := s.GunfireEvents[i]
		out = append(out, radar.Blip{
			Reading: radar.Reading{Bearing: float64(g.Bearing), Distance: float64(g.Distance), Timestamp: g.Timestamp},
			TTL:     config.GunfireRadarTTL,
			Tier:    radar.Classify(float64(g.Distance), radar.GunfireThreshold),
			Kind:    radar.KindGunfire,
			Glyph:   'x',
			Label:   fmt.Sprintf("%dm", g.Distance),
		})
	}

	for i := len(s.DroneAlerts) - 1; i >= 0; i-- {
		a := s.DroneAlerts[i]
		tier := radar.Classify(float64(a.Distance), config.DroneCriticalDistance)
		glyph := '^'
		if tier == radar.TierCritical {
			glyph = '!'
		}
		out = append(out, radar.Blip{
			Reading: radar.Reading{Bearing: float64(a.Bearing), Distance: float64(a.Distance), Timestamp: a.Timestamp},
			TTL:     config.DroneActiveTTL,
			Tier:    tier,
			Kind:    radar.KindDrone,
			Glyph:   glyph,
			Label:   a.Type,
		})
	}
	return out
}
