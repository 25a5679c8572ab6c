package tactical

import "fmt"

// Callsigns of the fixed four-member squad, in roster order.
var Callsigns = []string{"ALPHA-1", "BRAVO-2", "CHARLIE-3", "DELTA-4"}

const squadSpread = 0.005 // degrees around the operator

// newSquad generates the roster once from its own source so the sensor
// draws are unaffected. Members are never re-simulated.
func newSquad(origin Coordinates, rng Source) []SquadMember {
	squad := make([]SquadMember, 0, len(Callsigns))
	for i, cs := range Callsigns {
		squad = append(squad, SquadMember{
			ID:       fmt.Sprintf("squad-%d", i),
			Callsign: cs,
			Status:   SquadActive,
			Vitals: Vitals{
				HeartRate: 70 + rng.Float64()*20,
				SpO2:      96 + rng.Float64()*3,
				HRVStress: 30 + rng.Float64()*20,
				HAPERisk:  10 + rng.Float64()*15,
			},
			Position: Coordinates{
				Lat:     origin.Lat + spread(rng, squadSpread),
				Lng:     origin.Lng + spread(rng, squadSpread),
				Alt:     origin.Alt,
				Heading: float64(rng.Intn(360)),
			},
		})
	}
	return squad
}
