// Package ephemeris implements low-precision positional astronomy for the
// Sun and the Moon: apparent altitude as a function of observer and instant,
// the synodic lunar phase, and the hourly elevation sampler. The models are
// simplified NOAA/Meeus-style series, good to arcminute-level positions,
// which is plenty for a civil dashboard.
package ephemeris

import (
	"math"
	"time"
)

// Observer is a geographic location. Latitude and longitude in degrees
// (north/east positive), elevation in meters above sea level.
type Observer struct {
	Lat       float64
	Lon       float64
	Elevation float64
}

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// daysSinceJ2000 returns UTC days since the J2000.0 epoch.
func daysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

func deg2rad(d float64) float64 { return d * math.Pi / 180.0 }
func rad2deg(r float64) float64 { return r * 180.0 / math.Pi }

func normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// localSiderealRad returns the local sidereal time at longitude lon (degrees)
// as an angle in radians.
func localSiderealRad(t time.Time, lon float64) float64 {
	d := daysSinceJ2000(t)
	gmst := 280.46061837 + 360.98564736629*d
	return deg2rad(normalize360(gmst + lon))
}

// wrapPi normalizes an angle in radians to (-π, π].
func wrapPi(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round4 rounds to 4 decimal places; elevation series values and timing
// metrics both use this precision.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// HorizonDip returns the depression of the visible horizon in degrees for an
// observer at the given elevation (meters). Bowditch approximation
// 2.076·√h arcminutes; zero at or below sea level.
func HorizonDip(elevationM float64) float64 {
	if elevationM <= 0 {
		return 0
	}
	return 2.076 * math.Sqrt(elevationM) / 60.0
}
