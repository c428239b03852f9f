package ephemeris

import (
	"math"
	"testing"
	"time"
)

func TestMoonAltitudeBounded(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i += 3 {
		at := start.AddDate(0, 0, i).Add(time.Duration(i%24) * time.Hour)
		alt := MoonAltitude(london, at)
		if math.IsNaN(alt) || math.IsInf(alt, 0) || alt < -90 || alt > 90 {
			t.Errorf("MoonAltitude at %s = %f", at.Format(time.RFC3339), alt)
		}
	}
}

func TestMoonAltitudeVariesOverDay(t *testing.T) {
	// На широте Лондона луна за сутки должна заметно менять высоту
	day := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	min, max := 90.0, -90.0
	for h := 0; h < 24; h++ {
		alt := MoonAltitude(london, day.Add(time.Duration(h)*time.Hour))
		if alt < min {
			min = alt
		}
		if alt > max {
			max = alt
		}
	}
	if max-min < 20 {
		t.Errorf("altitude span over a day = %f, want at least 20", max-min)
	}
}

func TestHorizontalParallax(t *testing.T) {
	// Для среднего расстояния до луны параллакс около 0.95°
	p := rad2deg(horizontalParallax(385000.56))
	if p < 0.8 || p > 1.1 {
		t.Errorf("horizontalParallax(385000.56) = %f deg, want ~0.95", p)
	}
	// Перигей даёт больший параллакс, чем апогей
	if horizontalParallax(356500) <= horizontalParallax(406700) {
		t.Error("parallax at perigee should exceed parallax at apogee")
	}
}

func TestMoonDistanceRange(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i += 2 {
		at := start.AddDate(0, 0, i)
		_, _, dist := moonEquatorial(at)
		if dist < 340000 || dist > 420000 {
			t.Errorf("moon distance at %s = %f km, want in [340000, 420000]", at.Format("2006-01-02"), dist)
		}
	}
}
