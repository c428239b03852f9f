package worker

import (
	"context"
	"log"
	"time"

	"astrodash/internal/models"
	"astrodash/internal/service"
)

// AstroWorker периодически пересчитывает астроданные домашней локации,
// чтобы у дашборда всегда был тёплый кэш на сегодня.
type AstroWorker struct {
	service   service.AstroService
	lat       float64
	lon       float64
	elevM     float64
	interval  time.Duration
	stopChan  chan struct{}
	isRunning bool
}

func NewAstroWorker(service service.AstroService, lat, lon, elevM float64, interval time.Duration) *AstroWorker {
	return &AstroWorker{
		service:  service,
		lat:      lat,
		lon:      lon,
		elevM:    elevM,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (w *AstroWorker) Start() {
	if w.isRunning {
		return
	}

	w.isRunning = true
	log.Printf("Astro Worker started with interval %v", w.interval)

	go w.run()
}

func (w *AstroWorker) Stop() {
	if !w.isRunning {
		return
	}

	close(w.stopChan)
	w.isRunning = false
	log.Println("Astro Worker stopped")
}

func (w *AstroWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый прогрев сразу
	w.warmCache()

	for {
		select {
		case <-ticker.C:
			w.warmCache()
		case <-w.stopChan:
			return
		}
	}
}

func (w *AstroWorker) warmCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lat, lon := w.lat, w.lon
	query := models.AstroQuery{Lat: &lat, Lon: &lon, ElevationM: w.elevM}

	if _, err := w.service.GetAstro(ctx, query); err != nil {
		log.Printf("Astro Worker error: %v", err)
	} else {
		log.Printf("Astro Worker: home location warmed (lat=%.4f, lon=%.4f)", lat, lon)
	}
}
