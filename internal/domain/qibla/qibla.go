// Package qibla computes the direction and distance to the Kaaba.
package qibla

import (
	"math"

	domainerrors "muslimapp/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Kaaba is the fixed destination of every bearing.
var Kaaba = orb.Point{39.826206, 21.4225}

// Validate rejects coordinates outside ±90 latitude and ±180 longitude.
func Validate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return domainerrors.ErrInvalidLocation
	}

	return nil
}

// Bearing returns the great-circle initial bearing from (lat, lon) to the Kaaba in
// degrees within [0, 360). At the Kaaba itself the bearing is undefined and 0 is returned.
func Bearing(lat, lon float64) float64 {
	from := orb.Point{lon, lat}
	if from.Equal(Kaaba) {
		return 0
	}

	return normalize(geo.Bearing(from, Kaaba))
}

// Distance returns the great-circle distance to the Kaaba in metres.
func Distance(lat, lon float64) float64 {
	return geo.DistanceHaversine(orb.Point{lon, lat}, Kaaba)
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}

	return deg
}
