package ephemeris

import (
	"fmt"
	"log"
	"math"
	"time"
)

// AltitudeFunc computes a body's altitude in degrees for an observer at an
// instant. Which body gets sampled is decided by the function value passed
// in, so the sampler works for the Sun, the Moon, or anything else.
type AltitudeFunc func(obs Observer, t time.Time) (float64, error)

// SunAltitudeFunc adapts SunAltitude to the sampler contract.
func SunAltitudeFunc(obs Observer, t time.Time) (float64, error) {
	return finite(SunAltitude(obs, t))
}

// MoonAltitudeFunc adapts MoonAltitude to the sampler contract.
func MoonAltitudeFunc(obs Observer, t time.Time) (float64, error) {
	return finite(MoonAltitude(obs, t))
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite altitude %v", v)
	}
	return v, nil
}

// HourlySeries samples fn at each of the 24 local hours (minute and second
// zero) of the given calendar date in loc, and returns ISO-8601 timestamp →
// altitude in degrees rounded to 4 decimal places.
//
// A failed hour is logged and skipped, not fatal: the series may carry fewer
// than 24 entries. Timestamps within one date sort chronologically, so the
// JSON object key order (encoding/json sorts map keys) is hour-ascending.
func HourlySeries(obs Observer, loc *time.Location, date time.Time, fn AltitudeFunc) map[string]float64 {
	series := make(map[string]float64, 24)
	year, month, day := date.Date()

	for hour := 0; hour < 24; hour++ {
		sample := time.Date(year, month, day, hour, 0, 0, 0, loc)
		v, err := fn(obs, sample)
		if err != nil {
			log.Printf("Elevation sample failed at %s: %v", sample.Format(time.RFC3339), err)
			continue
		}
		series[sample.Format(time.RFC3339)] = Round4(v)
	}
	return series
}
