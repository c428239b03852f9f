package service

import (
	"time"

	"astrodash/internal/ephemeris"
)

// Timings — накопитель длительностей этапов запроса (мс, 4 знака).
// nil-карта безопасна: Record на ней ничего не делает, так что профилирование
// выключается простой передачей nil и не меняет поток вычислений.
type Timings map[string]float64

func (t Timings) Record(key string, start time.Time) {
	if t == nil {
		return
	}
	t[key] = ephemeris.Round4(float64(time.Since(start)) / float64(time.Millisecond))
}
