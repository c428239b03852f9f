package solver

import (
	"time"

	"astrodash/internal/ephemeris"
)

// Twilight depression angles in degrees below the horizon.
const (
	DepressionCivil        = 6.0
	DepressionNautical     = 12.0
	DepressionAstronomical = 18.0
)

// Golden/blue hour altitude bands (degrees). The exact bounds are a
// photographic convention, there is no canonical definition; these match
// the usual -6..-4 (blue) and -4..+6 (golden) choice.
const (
	BlueHourLow    = -6.0
	BlueHourHigh   = -4.0
	GoldenHourLow  = -4.0
	GoldenHourHigh = 6.0
)

const (
	daySteps = 48 // every 30 minutes across the day
	eventTol = 30 * time.Second
	noonTol  = 15 * time.Second
)

// SunEvents is the solve result for one depression on one local day. Each
// event carries its own ok flag; a missing event is a normal outcome at
// high latitudes, not a failure.
type SunEvents struct {
	Dawn, Dusk       time.Time
	HasDawn, HasDusk bool

	// Populated only for the civil solve.
	Sunrise, Sunset       time.Time
	HasSunrise, HasSunset bool
	Noon                  time.Time
	HasNoon               bool
}

// Window is a continuous interval where the Sun's altitude stays inside an
// altitude band.
type Window struct {
	Start, End time.Time
}

// dayBounds returns local midnight of the date and local midnight of the
// next day. Built from calendar components, not start+24h, so DST transition
// days (23 or 25 hours) keep their true extent.
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day+1, 0, 0, 0, 0, loc)
	return start, end
}

func sunAltFunc(obs ephemeris.Observer) AltitudeFunc {
	return func(t time.Time) float64 {
		return ephemeris.SunAltitude(obs, t)
	}
}

// SunCrossings returns the rising and setting instants at which the Sun's
// altitude equals targetAlt (degrees) during the local calendar day of date
// in loc. Either crossing may be absent.
func SunCrossings(obs ephemeris.Observer, date time.Time, loc *time.Location, targetAlt float64) (rise, set time.Time, okRise, okSet bool) {
	start, end := dayBounds(date, loc)
	f := sunAltFunc(obs)

	r := FindCrossing(f, start, end, targetAlt, Rising, daySteps, eventTol)
	if r.OK {
		rise, okRise = r.Time.In(loc), true
	}
	s := FindCrossing(f, start, end, targetAlt, Setting, daySteps, eventTol)
	if s.OK {
		set, okSet = s.Time.In(loc), true
	}
	return rise, set, okRise, okSet
}

// SolarNoon returns the instant of the Sun's altitude maximum (the meridian
// transit) on the local calendar day. It always exists, polar night included.
func SolarNoon(obs ephemeris.Observer, date time.Time, loc *time.Location) time.Time {
	start, end := dayBounds(date, loc)
	return findMaximum(sunAltFunc(obs), start, end, noonTol).In(loc)
}

// SunEventsForDate solves the day's sun events for one depression angle.
// Dawn and dusk are the crossings of -depression. The civil solve (6°) also
// carries sunrise/sunset at the apparent horizon (lowered by the observer's
// elevation dip) and the solar noon; deeper depressions leave those unset.
func SunEventsForDate(obs ephemeris.Observer, date time.Time, loc *time.Location, depression float64) SunEvents {
	var ev SunEvents

	ev.Dawn, ev.Dusk, ev.HasDawn, ev.HasDusk = SunCrossings(obs, date, loc, -depression)

	if depression != DepressionCivil {
		return ev
	}

	horizon := ephemeris.HorizonAltitudeSun - ephemeris.HorizonDip(obs.Elevation)
	ev.Sunrise, ev.Sunset, ev.HasSunrise, ev.HasSunset = SunCrossings(obs, date, loc, horizon)
	ev.Noon = SolarNoon(obs, date, loc)
	ev.HasNoon = true

	return ev
}

// SunBand returns the morning (rising) and evening (setting) windows during
// which the Sun's altitude lies inside [lowAlt, highAlt]. A window exists
// only when both of its edges are crossed in the right order that day;
// otherwise it is absent as a whole, never half-open.
func SunBand(obs ephemeris.Observer, date time.Time, loc *time.Location, lowAlt, highAlt float64) (morning, evening Window, okMorning, okEvening bool) {
	riseLow, setLow, okRiseLow, okSetLow := SunCrossings(obs, date, loc, lowAlt)
	riseHigh, setHigh, okRiseHigh, okSetHigh := SunCrossings(obs, date, loc, highAlt)

	if okRiseLow && okRiseHigh && riseHigh.After(riseLow) {
		morning = Window{Start: riseLow, End: riseHigh}
		okMorning = true
	}
	if okSetHigh && okSetLow && setLow.After(setHigh) {
		evening = Window{Start: setHigh, End: setLow}
		okEvening = true
	}
	return morning, evening, okMorning, okEvening
}
