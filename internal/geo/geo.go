package geo

import (
	"math"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

// Positions are WGS84 (EPSG:4326) and are projected to Web Mercator
// (EPSG:3857) for planar math. Mercator is conformal, so bearings survive
// the projection; distances are rescaled by cos(latitude) to ground meters.

// Project3857 converts a WGS84 longitude/latitude to Web Mercator meters.
func Project3857(longitude, latitude float64) geom.XY {
	f := wgs84.EPSG().Transform(4326, 3857)
	x, y, _ := f(longitude, latitude, 0)
	return geom.XY{X: x, Y: y}
}

// Offset returns the bearing (degrees, 0=north, clockwise) and ground
// distance in meters from one position to another.
func Offset(fromLat, fromLng, toLat, toLng float64) (bearing, distance float64) {
	a := Project3857(fromLng, fromLat)
	b := Project3857(toLng, toLat)
	d := b.Sub(a)

	scale := math.Cos((fromLat + toLat) / 2 * math.Pi / 180)
	distance = d.Length() * scale
	if distance == 0 {
		return 0, 0
	}

	bearing = math.Atan2(d.X, d.Y) * 180 / math.Pi
	if bearing < 0 {
		bearing += 360
	}
	return bearing, distance
}
