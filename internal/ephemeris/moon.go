package ephemeris

import (
	"math"
	"time"
)

// moonEquatorial returns the approximate geocentric RA and Dec of the Moon
// at t (radians) and the Earth-Moon distance in km.
//
// Truncated Meeus-style series over the standard fundamental arguments:
//
//	L' = mean longitude of the Moon
//	M  = mean anomaly of the Sun
//	Mm = mean anomaly of the Moon
//	D  = mean elongation of the Moon from the Sun
//	F  = argument of latitude
func moonEquatorial(t time.Time) (ra, dec, distanceKm float64) {
	d := daysSinceJ2000(t)

	Lprime := normalize360(218.3164477 + 13.17639648*d)
	M := normalize360(357.5291092 + 0.98560028*d)
	Mm := normalize360(134.9633964 + 13.06499295*d)
	D := normalize360(297.8501921 + 12.19074912*d)
	F := normalize360(93.2720950 + 13.22935024*d)

	Lr := deg2rad(Lprime)
	Mr := deg2rad(M)
	Mmr := deg2rad(Mm)
	Dr := deg2rad(D)
	Fr := deg2rad(F)

	// Ecliptic longitude, dominant terms only.
	lon := Lr +
		deg2rad(6.289)*math.Sin(Mmr) +
		deg2rad(1.274)*math.Sin(2*Dr-Mmr) +
		deg2rad(0.658)*math.Sin(2*Dr) +
		deg2rad(0.214)*math.Sin(2*Mmr) -
		deg2rad(0.186)*math.Sin(Mr) -
		deg2rad(0.114)*math.Sin(2*Fr)

	// Ecliptic latitude.
	lat := deg2rad(5.128)*math.Sin(Fr) +
		deg2rad(0.280)*math.Sin(Mmr+Fr) +
		deg2rad(0.277)*math.Sin(Mmr-Fr) +
		deg2rad(0.173)*math.Sin(2*Dr-Fr)

	eps := deg2rad(23.439291 - 0.0000137*d)

	x := math.Cos(lat) * math.Cos(lon)
	y := math.Cos(lat) * math.Sin(lon)
	z := math.Sin(lat)

	yEq := y*math.Cos(eps) - z*math.Sin(eps)
	zEq := y*math.Sin(eps) + z*math.Cos(eps)

	ra = math.Atan2(yEq, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec = math.Asin(zEq)

	// Earth-Moon distance, truncated series.
	distanceKm = 385000.56 -
		20905.0*math.Cos(Mmr) -
		3699.0*math.Cos(2*Dr-Mmr) -
		2956.0*math.Cos(2*Dr) -
		570.0*math.Cos(2*Mmr) -
		246.0*math.Cos(2*Dr+Mmr)

	return ra, dec, distanceKm
}

// MoonAltitude returns the Moon's topocentric altitude in degrees for the
// observer at time t. The horizontal-parallax correction matters here: the
// Moon is close enough that the geocentric altitude is off by up to ~1°.
func MoonAltitude(obs Observer, t time.Time) float64 {
	ra, dec, distKm := moonEquatorial(t)

	latRad := deg2rad(obs.Lat)
	lst := localSiderealRad(t, obs.Lon)
	h := wrapPi(lst - ra)

	pi := horizontalParallax(distKm)

	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)

	// Meeus sea-level observer factors.
	rhoSin := 0.99883 * sinLat
	rhoCos := 0.99883 * cosLat

	sinDec := math.Sin(dec)
	cosDec := math.Cos(dec)
	sinPi := math.Sin(pi)

	deltaRA := math.Atan2(
		-rhoCos*sinPi*math.Sin(h),
		cosDec-rhoCos*sinPi*math.Cos(h),
	)

	decTopo := math.Atan2(
		sinDec-rhoSin*sinPi,
		cosDec-rhoCos*sinPi*math.Cos(h),
	)

	hTopo := wrapPi(lst - (ra + deltaRA))

	sinAlt := sinLat*math.Sin(decTopo) + cosLat*math.Cos(decTopo)*math.Cos(hTopo)
	return rad2deg(math.Asin(sinAlt))
}

func horizontalParallax(distanceKm float64) float64 {
	const earthRadiusKm = 6378.14
	if distanceKm <= earthRadiusKm {
		// Invalid distance from a degenerate series evaluation; clamp.
		return deg2rad(1.0)
	}
	return math.Asin(earthRadiusKm / distanceKm)
}
