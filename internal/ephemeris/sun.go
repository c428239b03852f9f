package ephemeris

import (
	"math"
	"time"
)

// HorizonAltitudeSun is the geometric altitude (degrees) of the Sun's center
// when its apparent upper limb sits on the sea-level horizon under standard
// conditions: refraction plus apparent radius, about -0.833°.
const HorizonAltitudeSun = -0.833

// sunEquatorial returns the approximate geocentric RA and Dec of the Sun at t,
// both in radians.
//
// Simplified NOAA/Meeus algorithm:
//
//	g   = mean anomaly of the Sun
//	q   = mean longitude of the Sun
//	L   = ecliptic longitude with the equation of center
//	eps = obliquity of the ecliptic
func sunEquatorial(t time.Time) (ra, dec float64) {
	d := daysSinceJ2000(t)

	g := deg2rad(357.529 + 0.98560028*d)
	q := deg2rad(280.459 + 0.98564736*d)

	L := q +
		deg2rad(1.915)*math.Sin(g) +
		deg2rad(0.020)*math.Sin(2*g)

	eps := deg2rad(23.439 - 0.00000036*d)

	x := math.Cos(L)
	y := math.Cos(eps) * math.Sin(L)
	z := math.Sin(eps) * math.Sin(L)

	ra = math.Atan2(y, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec = math.Asin(z)
	return ra, dec
}

// SunAltitude returns the Sun's geometric altitude in degrees for the
// observer at time t. Pure function of its inputs; it is defined for any
// finite latitude and instant, including the poles.
func SunAltitude(obs Observer, t time.Time) float64 {
	ra, dec := sunEquatorial(t)

	latRad := deg2rad(obs.Lat)
	h := wrapPi(localSiderealRad(t, obs.Lon) - ra)

	sinAlt := math.Sin(latRad)*math.Sin(dec) + math.Cos(latRad)*math.Cos(dec)*math.Cos(h)
	return rad2deg(math.Asin(sinAlt))
}
