package ephemeris

import (
	"math"
	"time"
)

// SynodicMonth is the mean period between successive new moons, in days.
const SynodicMonth = 29.53059

// phaseEpoch is a reference new moon: 2000-01-06 18:14 UTC.
var phaseEpoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// Phase returns the lunar phase for the given date as days since the last
// new moon, in [0, SynodicMonth). The calendar date is read in the input's
// own location and evaluated at 00:00 UTC of that date, so a local midnight
// and a UTC midnight of the same date give the same phase; phase is a global
// property, independent of the observer.
func Phase(date time.Time) float64 {
	year, month, day := date.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	days := midnight.Sub(phaseEpoch).Hours() / 24.0
	p := math.Mod(days, SynodicMonth)
	if p < 0 {
		p += SynodicMonth
	}
	return p
}

// PhaseDay returns the phase rounded to a whole day of the cycle, in [0, 29].
func PhaseDay(date time.Time) int {
	return int(math.Round(Phase(date))) % 30
}

// PhaseName maps a whole phase day to a human-readable name. The boundaries
// are conventional, not physically exact; they are kept bit-for-bit to stay
// compatible with existing consumers.
func PhaseName(phaseDay int) string {
	d := ((phaseDay % 30) + 30) % 30
	switch {
	case d == 0:
		return "New Moon"
	case d <= 6:
		return "Waxing Crescent"
	case d == 7:
		return "First Quarter"
	case d <= 13:
		return "Waxing Gibbous"
	case d == 14:
		return "Full Moon"
	case d <= 20:
		return "Waning Gibbous"
	case d == 21:
		return "Last Quarter"
	default: // 22-29
		return "Waning Crescent"
	}
}

// Illumination estimates the illuminated fraction from a whole phase day:
// (1 - cos(2π·d/29.53)) / 2, clamped to [0, 1]. This is a smooth heuristic,
// not photometric phase; consumers rely on these exact values, so it must
// not be replaced with a true ephemeris calculation.
func Illumination(phaseDay int) float64 {
	d := float64(((phaseDay % 30) + 30) % 30)
	theta := d * (2 * math.Pi / 29.53)
	return clamp01((1 - math.Cos(theta)) / 2)
}

// NextPhaseDate returns the first date strictly after `from` whose rounded
// phase day equals target (mod 30), scanning day by day up to maxDays.
//
// A 60-day window spans more than two synodic months, which is enough to
// guarantee a hit for any target; the modular-offset estimate below is a
// deterministic fallback kept for a bounded worst case. A zero offset wraps
// to a full 30 days so the result is always strictly after `from`.
func NextPhaseDate(from time.Time, target, maxDays int) time.Time {
	target = ((target % 30) + 30) % 30

	for i := 1; i <= maxDays; i++ {
		d := from.AddDate(0, 0, i)
		if PhaseDay(d) == target {
			return d
		}
	}

	offset := ((target-PhaseDay(from))%30 + 30) % 30
	if offset == 0 {
		offset = 30
	}
	return from.AddDate(0, 0, offset)
}
