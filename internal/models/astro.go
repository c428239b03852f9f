package models

import "time"

// TimePeriod — окно времени (например, золотой час). Оба конца либо
// присутствуют, либо окно целиком отсутствует в ответе.
type TimePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AstroQuery — параметры запроса /astro. Lat и Lon — указатели, чтобы
// binding:"required" не резал нулевые координаты (экватор, Гринвич).
type AstroQuery struct {
	Lat        *float64 `form:"lat" json:"lat" binding:"required,min=-90,max=90"`
	Lon        *float64 `form:"lon" json:"lon" binding:"required,min=-180,max=180"`
	Date       string   `form:"date" json:"date,omitempty" binding:"omitempty,iso8601date"`
	TZOverride string   `form:"tz_override" json:"tz_override,omitempty"`
	ElevationM float64  `form:"elevation_m" json:"elevation_m" binding:"min=-430,max=9000"` // Мёртвое море .. Эверест
	Profile    bool     `form:"profile" json:"-"`
}

type SunTimes struct {
	Timezone          string      `json:"timezone"`
	Date              string      `json:"date"`
	Dawn              *time.Time  `json:"dawn,omitempty"`
	Sunrise           *time.Time  `json:"sunrise,omitempty"`
	SolarNoon         *time.Time  `json:"solar_noon,omitempty"`
	Sunset            *time.Time  `json:"sunset,omitempty"`
	Dusk              *time.Time  `json:"dusk,omitempty"`
	DayLengthSeconds  *int64      `json:"day_length_seconds,omitempty"`
	IsDaylightNow     *bool       `json:"is_daylight_now,omitempty"`
	CivilDawn         *time.Time  `json:"civil_dawn,omitempty"`
	CivilDusk         *time.Time  `json:"civil_dusk,omitempty"`
	NauticalDawn      *time.Time  `json:"nautical_dawn,omitempty"`
	NauticalDusk      *time.Time  `json:"nautical_dusk,omitempty"`
	AstronomicalDawn  *time.Time  `json:"astronomical_dawn,omitempty"`
	AstronomicalDusk  *time.Time  `json:"astronomical_dusk,omitempty"`
	BlueHourMorning   *TimePeriod `json:"blue_hour_morning,omitempty"`
	BlueHourEvening   *TimePeriod `json:"blue_hour_evening,omitempty"`
	GoldenHourMorning *TimePeriod `json:"golden_hour_morning,omitempty"`
	GoldenHourEvening *TimePeriod `json:"golden_hour_evening,omitempty"`
	// Ключи — локальные ISO-метки времени по часам; encoding/json сортирует
	// ключи карты, для меток одного дня это совпадает с хронологией.
	SolarElevationSeries map[string]float64 `json:"solar_elevation_series,omitempty"`
}

type MoonInfo struct {
	PhaseDay0_29            int                `json:"phase_day_0_29"`
	PhaseName               string             `json:"phase_name"`
	IlluminationFractionEst float64            `json:"illumination_fraction_est"`
	ElevationSeries         map[string]float64 `json:"elevation_series,omitempty"`
	NextNewMoon             string             `json:"next_new_moon,omitempty"`
	NextFullMoon            string             `json:"next_full_moon,omitempty"`
}

type AstroResponse struct {
	Query       AstroQuery         `json:"query"`
	Timezone    string             `json:"timezone"`
	NowLocal    time.Time          `json:"now_local"`
	Sun         SunTimes           `json:"sun"`
	Moon        MoonInfo           `json:"moon"`
	ProfilingMs map[string]float64 `json:"profiling_ms,omitempty"`
}

type HealthResponse struct {
	Status  string    `json:"status"`
	App     string    `json:"app"`
	TimeUTC time.Time `json:"time_utc"`
}
