package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"astrodash/internal/clients"
	"astrodash/internal/ephemeris"
	"astrodash/internal/models"
	"astrodash/internal/repository"
	"astrodash/internal/solver"
)

// Ошибки, по которым handler выбирает статус ответа.
var (
	// ErrInvalidDate — некорректная строка даты (клиентская ошибка).
	ErrInvalidDate = errors.New("invalid date")
	// ErrBadTimezone — не разрешилась таймзона.
	ErrBadTimezone = errors.New("unable to resolve timezone")
	// ErrMoonCompute — лунный расчёт упал; единственный путь, которому
	// разрешено завалить весь запрос (солнечный деградирует молча).
	ErrMoonCompute = errors.New("moon calculation failed")
)

type AstroService interface {
	GetAstro(ctx context.Context, query models.AstroQuery) (*models.AstroResponse, error)
}

type astroService struct {
	cacheRepo repository.CacheRepository
	resolver  clients.TimezoneResolver
	cacheTTL  time.Duration
	group     singleflight.Group
}

func NewAstroService(
	cacheRepo repository.CacheRepository,
	resolver clients.TimezoneResolver,
	cacheTTL time.Duration,
) AstroService {
	return &astroService{
		cacheRepo: cacheRepo,
		resolver:  resolver,
		cacheTTL:  cacheTTL,
	}
}

// astroData — кэшируемая часть результата. IsDaylightNow и now_local зависят
// от момента запроса и сюда не входят.
type astroData struct {
	Sun  models.SunTimes `json:"sun"`
	Moon models.MoonInfo `json:"moon"`
}

func (s *astroService) GetAstro(ctx context.Context, query models.AstroQuery) (*models.AstroResponse, error) {
	var prof Timings
	if query.Profile {
		prof = make(Timings)
	}
	requestStart := time.Now()

	lat, lon := *query.Lat, *query.Lon

	// Таймзона: явный override либо резолвер по координатам.
	tzName := query.TZOverride
	if tzName == "" {
		tzStart := time.Now()
		name, err := s.resolver.Resolve(lat, lon)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadTimezone, err)
		}
		tzName = name
		prof.Record("resolve_timezone_ms", tzStart)
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadTimezone, tzName)
	}

	// Дата: явная либо "сегодня" в разрешённой зоне.
	dateStart := time.Now()
	var onDate time.Time
	if query.Date != "" {
		onDate, err = time.ParseInLocation("2006-01-02", query.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, query.Date)
		}
	} else {
		now := time.Now().In(loc)
		onDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	}
	prof.Record("resolve_date_ms", dateStart)

	obs := ephemeris.Observer{Lat: lat, Lon: lon, Elevation: query.ElevationM}
	dateStr := onDate.Format("2006-01-02")

	data, err := s.lookupOrCompute(ctx, obs, tzName, loc, onDate, dateStr, prof)
	if err != nil {
		return nil, err
	}

	nowLocal := time.Now().In(loc)
	sun := data.Sun
	applyDaylight(&sun, nowLocal)

	query.Date = dateStr
	prof.Record("total_request_ms", requestStart)

	resp := &models.AstroResponse{
		Query:    query,
		Timezone: tzName,
		NowLocal: nowLocal,
		Sun:      sun,
		Moon:     data.Moon,
	}
	if query.Profile {
		resp.ProfilingMs = prof
	}
	return resp, nil
}

// cacheKey собирается из точных входов запроса, без округления координат:
// кэш не имеет права отдать результат для чужих входов.
func cacheKey(obs ephemeris.Observer, dateStr, tzName string) string {
	return fmt.Sprintf("astro:%s:%s:%s:%s:%s",
		strconv.FormatFloat(obs.Lat, 'f', -1, 64),
		strconv.FormatFloat(obs.Lon, 'f', -1, 64),
		strconv.FormatFloat(obs.Elevation, 'f', -1, 64),
		dateStr,
		tzName,
	)
}

func (s *astroService) lookupOrCompute(
	ctx context.Context,
	obs ephemeris.Observer,
	tzName string,
	loc *time.Location,
	onDate time.Time,
	dateStr string,
	prof Timings,
) (*astroData, error) {
	key := cacheKey(obs, dateStr, tzName)

	cacheStart := time.Now()
	var cached astroData
	if err := s.cacheRepo.GetJSON(ctx, key, &cached); err == nil && cached.Sun.Timezone != "" {
		prof.Record("cache_lookup_ms", cacheStart)
		return &cached, nil
	}
	prof.Record("cache_lookup_ms", cacheStart)

	// singleflight: конкурентные запросы с одним ключом считаем один раз.
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		sun := s.computeSunTimes(obs, tzName, loc, onDate, prof)
		moon, err := s.computeMoonInfo(obs, loc, onDate, prof)
		if err != nil {
			return nil, err
		}

		data := &astroData{Sun: sun, Moon: *moon}
		if err := s.cacheRepo.SetJSON(ctx, key, data, s.cacheTTL); err != nil {
			log.Printf("Failed to cache astro result: %v", err)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*astroData), nil
}

// computeSunTimes никогда не возвращает ошибку: при любом неожиданном сбое
// отдаём SunTimes только с датой и зоной, клиент всё равно получит луну.
func (s *astroService) computeSunTimes(
	obs ephemeris.Observer,
	tzName string,
	loc *time.Location,
	onDate time.Time,
	prof Timings,
) (st models.SunTimes) {
	defer prof.Record("sun.total_ms", time.Now())
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Sun computation failed, returning nulls: %v", r)
			st = models.SunTimes{Timezone: tzName, Date: onDate.Format("2006-01-02")}
		}
	}()

	st = models.SunTimes{Timezone: tzName, Date: onDate.Format("2006-01-02")}

	step := time.Now()
	civil := solver.SunEventsForDate(obs, onDate, loc, solver.DepressionCivil)
	prof.Record("sun.sun_civil_ms", step)

	step = time.Now()
	nautical := solver.SunEventsForDate(obs, onDate, loc, solver.DepressionNautical)
	prof.Record("sun.sun_nautical_ms", step)

	step = time.Now()
	astro := solver.SunEventsForDate(obs, onDate, loc, solver.DepressionAstronomical)
	prof.Record("sun.sun_astronomical_ms", step)

	st.Dawn = timePtr(civil.Dawn, civil.HasDawn)
	st.Dusk = timePtr(civil.Dusk, civil.HasDusk)
	st.CivilDawn = timePtr(civil.Dawn, civil.HasDawn)
	st.CivilDusk = timePtr(civil.Dusk, civil.HasDusk)
	st.NauticalDawn = timePtr(nautical.Dawn, nautical.HasDawn)
	st.NauticalDusk = timePtr(nautical.Dusk, nautical.HasDusk)
	st.AstronomicalDawn = timePtr(astro.Dawn, astro.HasDawn)
	st.AstronomicalDusk = timePtr(astro.Dusk, astro.HasDusk)
	st.Sunrise = timePtr(civil.Sunrise, civil.HasSunrise)
	st.Sunset = timePtr(civil.Sunset, civil.HasSunset)
	st.SolarNoon = timePtr(civil.Noon, civil.HasNoon)

	// Длина дня — только когда есть оба края; отрицательный интервал
	// трактуем как отсутствие, а не как минусовые секунды.
	if civil.HasSunrise && civil.HasSunset {
		secs := int64(civil.Sunset.Sub(civil.Sunrise).Seconds())
		if secs >= 0 {
			st.DayLengthSeconds = &secs
		}
	}

	step = time.Now()
	blueMorning, blueEvening, okBM, okBE := solver.SunBand(obs, onDate, loc, solver.BlueHourLow, solver.BlueHourHigh)
	prof.Record("sun.blue_hour_ms", step)

	step = time.Now()
	goldenMorning, goldenEvening, okGM, okGE := solver.SunBand(obs, onDate, loc, solver.GoldenHourLow, solver.GoldenHourHigh)
	prof.Record("sun.golden_hour_ms", step)

	st.BlueHourMorning = periodPtr(blueMorning, okBM)
	st.BlueHourEvening = periodPtr(blueEvening, okBE)
	st.GoldenHourMorning = periodPtr(goldenMorning, okGM)
	st.GoldenHourEvening = periodPtr(goldenEvening, okGE)

	step = time.Now()
	series := ephemeris.HourlySeries(obs, loc, onDate, ephemeris.SunAltitudeFunc)
	prof.Record("sun.elevation_series.total_ms", step)
	if len(series) > 0 {
		st.SolarElevationSeries = series
	}

	return st
}

// computeMoonInfo, в отличие от солнца, возвращает ошибку: неожиданный сбой
// лунного расчёта валит запрос целиком.
func (s *astroService) computeMoonInfo(
	obs ephemeris.Observer,
	loc *time.Location,
	onDate time.Time,
	prof Timings,
) (mi *models.MoonInfo, err error) {
	defer prof.Record("moon.total_ms", time.Now())
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Moon computation failed: %v", r)
			mi = nil
			err = fmt.Errorf("%w: %v", ErrMoonCompute, r)
		}
	}()

	step := time.Now()
	phaseDay := ephemeris.PhaseDay(onDate)
	prof.Record("moon.phase_ms", step)

	step = time.Now()
	series := ephemeris.HourlySeries(obs, loc, onDate, ephemeris.MoonAltitudeFunc)
	prof.Record("moon.elevation_series.total_ms", step)

	step = time.Now()
	nextNew := ephemeris.NextPhaseDate(onDate, 0, 60)
	nextFull := ephemeris.NextPhaseDate(onDate, 14, 60)
	prof.Record("moon.phase_search_ms", step)

	mi = &models.MoonInfo{
		PhaseDay0_29:            phaseDay,
		PhaseName:               ephemeris.PhaseName(phaseDay),
		IlluminationFractionEst: ephemeris.Round4(ephemeris.Illumination(phaseDay)),
		NextNewMoon:             nextNew.Format("2006-01-02"),
		NextFullMoon:            nextFull.Format("2006-01-02"),
	}
	if len(series) > 0 {
		mi.ElevationSeries = series
	}
	return mi, nil
}

// applyDaylight выставляет is_daylight_now только когда известны оба края дня.
func applyDaylight(st *models.SunTimes, now time.Time) {
	if st.Sunrise == nil || st.Sunset == nil {
		return
	}
	v := !now.Before(*st.Sunrise) && !now.After(*st.Sunset)
	st.IsDaylightNow = &v
}

func timePtr(t time.Time, ok bool) *time.Time {
	if !ok {
		return nil
	}
	return &t
}

func periodPtr(w solver.Window, ok bool) *models.TimePeriod {
	if !ok {
		return nil
	}
	return &models.TimePeriod{Start: w.Start, End: w.End}
}
