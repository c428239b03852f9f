package ephemeris

import (
	"math"
	"testing"
	"time"
)

var london = Observer{Lat: 51.5074, Lon: -0.1278}

func TestSunAltitudeLondonSolstice(t *testing.T) {
	// Летнее солнцестояние: солнце высоко в полдень, глубоко под горизонтом в полночь
	noon := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)
	alt := SunAltitude(london, noon)
	if alt < 55 || alt > 65 {
		t.Errorf("noon altitude = %f, want in [55, 65]", alt)
	}

	midnight := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	alt = SunAltitude(london, midnight)
	if alt > -5 {
		t.Errorf("midnight altitude = %f, want below -5", alt)
	}
}

func TestSunAltitudeEquatorEquinox(t *testing.T) {
	obs := Observer{Lat: 0, Lon: 0}
	noon := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	alt := SunAltitude(obs, noon)
	if alt < 85 {
		t.Errorf("equator equinox noon altitude = %f, want above 85", alt)
	}
}

func TestSunAltitudeFiniteEverywhere(t *testing.T) {
	observers := []Observer{
		{Lat: 90, Lon: 0},
		{Lat: -90, Lon: 0},
		{Lat: 0, Lon: 180},
		{Lat: 78, Lon: 15, Elevation: 2000},
		{Lat: -77.85, Lon: 166.67},
	}
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, obs := range observers {
		for i := 0; i < 12; i++ {
			at := start.AddDate(0, i, 0)
			alt := SunAltitude(obs, at)
			if math.IsNaN(alt) || math.IsInf(alt, 0) {
				t.Errorf("SunAltitude(%+v, %s) = %f", obs, at.Format("2006-01-02"), alt)
			}
			if alt < -90 || alt > 90 {
				t.Errorf("SunAltitude(%+v, %s) = %f, out of [-90, 90]", obs, at.Format("2006-01-02"), alt)
			}
		}
	}
}

func TestSunAltitudeDeterministic(t *testing.T) {
	at := time.Date(2024, time.September, 10, 15, 30, 0, 0, time.UTC)
	a := SunAltitude(london, at)
	b := SunAltitude(london, at)
	if a != b {
		t.Errorf("repeated evaluation differs: %f vs %f", a, b)
	}
}
