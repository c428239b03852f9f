package solver

import (
	"math"
	"testing"
	"time"
)

// sineDay models an altitude curve peaking at local noon: -A at 00:00,
// +A at 12:00, back down to -A at 24:00.
func sineDay(start time.Time, amplitude float64) AltitudeFunc {
	return func(t time.Time) float64 {
		frac := t.Sub(start).Hours() / 24
		return -amplitude * math.Cos(2*math.Pi*frac)
	}
}

func TestFindCrossingSine(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	f := sineDay(start, 60)

	rise := FindCrossing(f, start, end, 0, Rising, 48, time.Second)
	if !rise.OK {
		t.Fatal("rising zero crossing not found")
	}
	want := start.Add(6 * time.Hour)
	if d := rise.Time.Sub(want); d < -time.Minute || d > time.Minute {
		t.Errorf("rising crossing at %v, want ~%v", rise.Time, want)
	}

	set := FindCrossing(f, start, end, 0, Setting, 48, time.Second)
	if !set.OK {
		t.Fatal("setting zero crossing not found")
	}
	want = start.Add(18 * time.Hour)
	if d := set.Time.Sub(want); d < -time.Minute || d > time.Minute {
		t.Errorf("setting crossing at %v, want ~%v", set.Time, want)
	}
}

func TestFindCrossingAbsent(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	f := sineDay(start, 60)

	// Кривая никогда не достигает 80°
	if c := FindCrossing(f, start, end, 80, Rising, 48, time.Second); c.OK {
		t.Errorf("crossing above the curve maximum found at %v", c.Time)
	}
	if c := FindCrossing(f, start, end, -80, Setting, 48, time.Second); c.OK {
		t.Errorf("crossing below the curve minimum found at %v", c.Time)
	}
}

func TestFindCrossingDirection(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	f := sineDay(start, 60)

	rise := FindCrossing(f, start, end, 30, Rising, 48, time.Second)
	set := FindCrossing(f, start, end, 30, Setting, 48, time.Second)
	if !rise.OK || !set.OK {
		t.Fatal("both 30° crossings should exist")
	}
	if !rise.Time.Before(set.Time) {
		t.Error("rising crossing should precede the setting one")
	}
}

func TestFindCrossingDegenerateRange(t *testing.T) {
	at := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	f := sineDay(at, 60)
	if c := FindCrossing(f, at, at, 0, Rising, 48, time.Second); c.OK {
		t.Error("empty interval should yield no crossing")
	}
}

func TestFindMaximumSine(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	f := sineDay(start, 60)

	peak := findMaximum(f, start, end, time.Second)
	want := start.Add(12 * time.Hour)
	if d := peak.Sub(want); d < -time.Minute || d > time.Minute {
		t.Errorf("maximum at %v, want ~%v", peak, want)
	}
}
