// Package solver finds the instants at which a celestial body's altitude
// crosses a target value within a local calendar day: sunrise/sunset,
// twilight boundaries, and the golden/blue hour band edges. Non-occurrence
// (polar day, polar night) is reported through ok flags, never as an error.
package solver

import (
	"time"
)

// AltitudeFunc returns altitude in degrees at time t.
type AltitudeFunc func(t time.Time) float64

// Direction says which way the altitude moves through the target.
type Direction int

const (
	// Rising means altitude increasing through the target (dawn-like).
	Rising Direction = iota
	// Setting means altitude decreasing through the target (dusk-like).
	Setting
)

// Crossing holds the result of an altitude-crossing search.
type Crossing struct {
	Time time.Time
	OK   bool
}

// FindCrossing searches [start, end] for a time where f crosses targetDeg in
// the given direction, by sampling for a sign change and then bisecting the
// bracket down to tol.
func FindCrossing(f AltitudeFunc, start, end time.Time, targetDeg float64, dir Direction, steps int, tol time.Duration) Crossing {
	if !start.Before(end) {
		return Crossing{}
	}
	if steps < 2 {
		steps = 2
	}

	interval := end.Sub(start) / time.Duration(steps-1)

	prevT := start
	prevAlt := f(prevT) - targetDeg

	for i := 1; i < steps; i++ {
		t := start.Add(time.Duration(i) * interval)
		alt := f(t) - targetDeg

		if crosses(prevAlt, alt, dir) {
			return bisect(f, prevT, t, targetDeg, dir, tol)
		}
		prevT, prevAlt = t, alt
	}

	return Crossing{}
}

func crosses(a1, a2 float64, dir Direction) bool {
	switch dir {
	case Rising:
		return a1 < 0 && a2 >= 0
	case Setting:
		return a1 > 0 && a2 <= 0
	default:
		return a1*a2 <= 0
	}
}

func bisect(f AltitudeFunc, a, b time.Time, targetDeg float64, dir Direction, tol time.Duration) Crossing {
	altA := f(a) - targetDeg
	altB := f(b) - targetDeg

	if !crosses(altA, altB, dir) {
		return Crossing{}
	}

	for b.Sub(a) > tol {
		mid := a.Add(b.Sub(a) / 2)
		altM := f(mid) - targetDeg

		if crosses(altA, altM, dir) {
			b = mid
			altB = altM
		} else {
			a = mid
			altA = altM
		}
	}

	return Crossing{Time: a.Add(b.Sub(a) / 2), OK: true}
}

// findMaximum locates the time of the altitude maximum on [start, end] by
// ternary search. The solar altitude over one day has a single maximum (the
// meridian transit), so this always converges; it exists even on polar
// nights when no horizon crossing does.
func findMaximum(f AltitudeFunc, start, end time.Time, tol time.Duration) time.Time {
	a, b := start, end
	for b.Sub(a) > tol {
		third := b.Sub(a) / 3
		m1 := a.Add(third)
		m2 := b.Add(-third)
		if f(m1) < f(m2) {
			a = m1
		} else {
			b = m2
		}
	}
	return a.Add(b.Sub(a) / 2)
}
