package radar

import (
	"math"
	"time"
)

// Tier is the coarse threat classification used to style a contact.
type Tier int

const (
	TierNominal Tier = iota
	TierCritical
)

func (t Tier) String() string {
	if t == TierCritical {
		return "critical"
	}
	return "nominal"
}

// GunfireThreshold classifies every gunfire event as critical.
var GunfireThreshold = math.Inf(1)

// Classify returns TierCritical when distance is strictly below threshold.
func Classify(distance, threshold float64) Tier {
	if distance < threshold {
		return TierCritical
	}
	return TierNominal
}

// Reading is a single bearing/distance contact stamped with its detection time.
type Reading struct {
	Bearing   float64 // degrees, 0=north, clockwise
	Distance  float64
	Timestamp time.Time
}

// Plot is a projected reading in display coordinates.
type Plot struct {
	X, Y    float64
	Radius  float64 // distance from center after scaling
	Opacity float64 // [0, 1]
}

// Visible reports whether the plot should be drawn at all.
// Faded plots stay in their buffers; hiding them is a display decision.
func (p Plot) Visible() bool {
	return p.Opacity > 0
}

// Projection maps readings onto a circular plot of MaxRadius around
// (CenterX, CenterY). Y grows downward, so bearing 0 lands above center.
type Projection struct {
	CenterX, CenterY float64
	MaxDistance      float64
	MaxRadius        float64
	TTL              time.Duration
}

// Project places r on the plot and fades it by its age at now.
func (p Projection) Project(r Reading, now time.Time) Plot {
	angle := BearingToRadians(r.Bearing)
	radius := ScaleDistance(r.Distance, p.MaxDistance, p.MaxRadius)
	return Plot{
		X:       p.CenterX + math.Cos(angle)*radius,
		Y:       p.CenterY + math.Sin(angle)*radius,
		Radius:  radius,
		Opacity: Opacity(now.Sub(r.Timestamp), p.TTL),
	}
}

// Opacity fades linearly from 1 at age 0 to 0 at age ttl.
// Readings from the future are fully opaque; a non-positive ttl hides everything.
func Opacity(age, ttl time.Duration) float64 {
	if ttl <= 0 {
		return 0
	}
	o := 1 - float64(age)/float64(ttl)
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// DialAngle folds a full-circle bearing onto the half-circle shot dial.
// Bearings past 180 are mirrored, so b and 360-b share a dial angle.
func DialAngle(bearing float64) float64 {
	if bearing > 180 {
		return 360 - bearing
	}
	return bearing
}

// DialPoint returns the offset from the dial hub for a dial angle in
// degrees: 0 at the left end, 90 straight up, 180 at the right end.
func DialPoint(dialAngle, radius float64) (dx, dy float64) {
	rad := dialAngle*math.Pi/180 + math.Pi
	return math.Cos(rad) * radius, math.Sin(rad) * radius
}
