package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	App struct {
		Name        string
		Port        string
		Debug       bool
		FrontendURL string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Astro struct {
		CacheTTL     time.Duration
		WarmEnabled  bool
		WarmInterval time.Duration
		HomeLat      float64
		HomeLon      float64
		HomeElevM    float64
	}
	Weather struct {
		APIKey   string
		BaseURL  string
		CacheTTL time.Duration
	}
	Links struct {
		File string
	}
	RateLimit struct {
		RequestsPerSecond int
		Burst             int
	}
}

func Load() *Config {
	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "Astro API")
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")

	// Redis
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	// Astro: кэш результатов и прогрев домашней локации
	cfg.Astro.CacheTTL = getEnvAsDuration("ASTRO_CACHE_TTL", 15*time.Minute)
	cfg.Astro.WarmEnabled = getEnvAsBool("ASTRO_WARM_ENABLED", false)
	cfg.Astro.WarmInterval = getEnvAsDuration("ASTRO_WARM_INTERVAL", 10*time.Minute)
	cfg.Astro.HomeLat = getEnvAsFloat("HOME_LAT", 55.7558)
	cfg.Astro.HomeLon = getEnvAsFloat("HOME_LON", 37.6176)
	cfg.Astro.HomeElevM = getEnvAsFloat("HOME_ELEVATION_M", 0)

	// Weather
	cfg.Weather.APIKey = getEnv("WEATHERAPI_KEY", "")
	cfg.Weather.BaseURL = getEnv("WEATHERAPI_URL", "https://api.weatherapi.com/v1")
	cfg.Weather.CacheTTL = getEnvAsDuration("WEATHER_CACHE_TTL", time.Hour)

	// Links
	cfg.Links.File = getEnv("LINKS_FILE", "./data/links.yaml")

	// Rate Limit
	cfg.RateLimit.RequestsPerSecond = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
