package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astrodash/internal/clients"
	"astrodash/internal/config"
	"astrodash/internal/handlers"
	"astrodash/internal/middleware"
	"astrodash/internal/repository"
	"astrodash/internal/service"
	"astrodash/internal/worker"
	"astrodash/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	// Загрузка .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("=== Astro Dashboard Backend Starting ===")

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к Redis (кэш результатов)
	redisClient, err := redis.Connect(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	cacheRepo := repository.NewCacheRepository(redisClient)

	// Индекс таймзон строится один раз и дальше только читается
	tzResolver, err := clients.NewTimezoneResolver()
	if err != nil {
		log.Fatal("Failed to build timezone resolver:", err)
	}

	weatherClient := clients.NewWeatherClient(cfg.Weather.BaseURL, cfg.Weather.APIKey)

	// Инициализация сервисов
	astroService := service.NewAstroService(cacheRepo, tzResolver, cfg.Astro.CacheTTL)
	weatherService := service.NewWeatherService(cacheRepo, weatherClient, cfg.Weather.CacheTTL)
	linksService := service.NewLinksService(cfg.Links.File)

	// Прогрев кэша домашней локации (фоновая задача)
	scheduler := worker.NewScheduler()
	if cfg.Astro.WarmEnabled {
		scheduler.AddWorker(worker.NewAstroWorker(
			astroService,
			cfg.Astro.HomeLat,
			cfg.Astro.HomeLon,
			cfg.Astro.HomeElevM,
			cfg.Astro.WarmInterval,
		))
		log.Printf("Astro Warm Worker enabled (interval: %v)", cfg.Astro.WarmInterval)
	}

	go scheduler.Start()
	defer scheduler.Stop()

	// Инициализация Gin
	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in DEBUG mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers.RegisterValidations()

	r := gin.Default()

	// CORS для фронтенда
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiting (только для продакшена)
	if !cfg.App.Debug {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(middleware.RateLimitMiddleware(limiter))
		log.Printf("Rate limiting enabled: %d req/sec, burst: %d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	astroHandler := handlers.NewAstroHandler(astroService)
	weatherHandler := handlers.NewWeatherHandler(weatherService)
	linksHandler := handlers.NewLinksHandler(linksService)

	// Группа API v1
	api := r.Group("/api/v1")

	// 1. Астроданные: солнце, луна, таймзона
	api.GET("/astro", astroHandler.GetAstro)

	// 2. Погода (прокси weatherapi.com)
	api.GET("/weather", weatherHandler.GetWeather)

	// 3. Ссылки на сервисы из YAML
	api.GET("/links", linksHandler.GetLinks)

	// 4. Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"app":      cfg.App.Name,
			"time_utc": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// 5. Системные эндпоинты
	api.GET("/system/stats", func(c *gin.Context) {
		redisStats, _ := redis.GetStats(redisClient)

		c.JSON(http.StatusOK, gin.H{
			"redis": redisStats,
			"workers": gin.H{
				"astro_warm_enabled": cfg.Astro.WarmEnabled,
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.App.Port)
		log.Printf("API available at http://localhost:%s/api/v1", cfg.App.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited properly")
}
