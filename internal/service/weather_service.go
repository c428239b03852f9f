package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"astrodash/internal/clients"
	"astrodash/internal/models"
	"astrodash/internal/repository"
)

type WeatherService interface {
	GetCurrent(ctx context.Context, query string) (*models.WeatherResponse, error)
}

type weatherService struct {
	cacheRepo repository.CacheRepository
	client    clients.WeatherClient
	cacheTTL  time.Duration
}

func NewWeatherService(
	cacheRepo repository.CacheRepository,
	client clients.WeatherClient,
	cacheTTL time.Duration,
) WeatherService {
	return &weatherService{
		cacheRepo: cacheRepo,
		client:    client,
		cacheTTL:  cacheTTL,
	}
}

func (s *weatherService) GetCurrent(ctx context.Context, query string) (*models.WeatherResponse, error) {
	cacheKey := fmt.Sprintf("weather:%s", strings.ToLower(strings.TrimSpace(query)))

	// Пробуем кэш: провайдер платный и медленный.
	var cached models.WeatherResponse
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && cached.Location != "" {
		return &cached, nil
	}

	current, err := s.client.GetCurrent(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, current, s.cacheTTL); err != nil {
		log.Printf("Failed to cache weather response: %v", err)
	}

	return current, nil
}
