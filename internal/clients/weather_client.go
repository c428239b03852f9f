package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"astrodash/internal/models"
)

type WeatherClient interface {
	GetCurrent(ctx context.Context, query string) (*models.WeatherResponse, error)
}

type weatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewWeatherClient(baseURL, apiKey string) WeatherClient {
	return &weatherClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// weatherAPIResponse — сырой ответ weatherapi.com /current.json.
type weatherAPIResponse struct {
	Location struct {
		Name      string `json:"name"`
		Region    string `json:"region"`
		Country   string `json:"country"`
		Localtime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		TempF      float64 `json:"temp_f"`
		FeelsLikeC float64 `json:"feelslike_c"`
		FeelsLikeF float64 `json:"feelslike_f"`
		Humidity   int     `json:"humidity"`
		WindKph    float64 `json:"wind_kph"`
		WindMph    float64 `json:"wind_mph"`
		WindDir    string  `json:"wind_dir"`
		PressureMb float64 `json:"pressure_mb"`
		PrecipMm   float64 `json:"precip_mm"`
		UV         float64 `json:"uv"`
		Condition  struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
			Code int    `json:"code"`
		} `json:"condition"`
	} `json:"current"`
}

// GetCurrent ходит в weatherapi.com и нормализует ответ в нашу стабильную
// схему, чтобы фронтенд не зависел от формата провайдера.
func (c *weatherClient) GetCurrent(ctx context.Context, query string) (*models.WeatherResponse, error) {
	reqURL := fmt.Sprintf("%s/current.json?key=%s&q=%s",
		c.baseURL, c.apiKey, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("weather API returned status %d: %s", resp.StatusCode, string(body))
	}

	var raw weatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	return &models.WeatherResponse{
		Location:  raw.Location.Name,
		Region:    raw.Location.Region,
		Country:   raw.Location.Country,
		Localtime: raw.Location.Localtime,
		Current: models.WeatherCurrent{
			TempC:      raw.Current.TempC,
			TempF:      raw.Current.TempF,
			FeelsLikeC: raw.Current.FeelsLikeC,
			FeelsLikeF: raw.Current.FeelsLikeF,
			Humidity:   raw.Current.Humidity,
			WindKph:    raw.Current.WindKph,
			WindMph:    raw.Current.WindMph,
			WindDir:    raw.Current.WindDir,
			PressureMb: raw.Current.PressureMb,
			PrecipMm:   raw.Current.PrecipMm,
			Condition: models.WeatherCondition{
				Text: raw.Current.Condition.Text,
				Icon: raw.Current.Condition.Icon,
				Code: raw.Current.Condition.Code,
			},
			UV: raw.Current.UV,
		},
	}, nil
}
