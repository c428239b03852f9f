package clients

import (
	"fmt"
	"log"

	"github.com/ringsaturn/tzf"
)

// TimezoneResolver отдаёт IANA-имя таймзоны по координатам. Контракт: имя
// возвращается всегда (в худшем случае "UTC"), ошибка — только внутренний
// сбой самого резолвера.
type TimezoneResolver interface {
	Resolve(lat, lon float64) (string, error)
}

type tzfResolver struct {
	finder tzf.F
}

// NewTimezoneResolver строит in-process индекс таймзон один раз на старте.
// Дальше finder только читается, поэтому его можно безопасно шарить между
// конкурентными запросами без блокировок.
func NewTimezoneResolver() (TimezoneResolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to build timezone finder: %w", err)
	}
	return &tzfResolver{finder: finder}, nil
}

func (r *tzfResolver) Resolve(lat, lon float64) (string, error) {
	// tzf принимает сначала долготу, потом широту.
	name := r.finder.GetTimezoneName(lon, lat)
	if name == "" {
		log.Printf("Exact TZ lookup failed for lat=%v, lon=%v - using UTC", lat, lon)
		return "UTC", nil
	}
	return name, nil
}
