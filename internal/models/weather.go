package models

// Нормализованная схема погоды поверх weatherapi.com.

type WeatherCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type WeatherCurrent struct {
	TempC      float64          `json:"temp_c"`
	TempF      float64          `json:"temp_f"`
	FeelsLikeC float64          `json:"feels_like_c"`
	FeelsLikeF float64          `json:"feels_like_f"`
	Humidity   int              `json:"humidity"`
	WindKph    float64          `json:"wind_kph"`
	WindMph    float64          `json:"wind_mph"`
	WindDir    string           `json:"wind_dir"`
	PressureMb float64          `json:"pressure_mb"`
	PrecipMm   float64          `json:"precip_mm"`
	Condition  WeatherCondition `json:"condition"`
	UV         float64          `json:"uv"`
}

type WeatherResponse struct {
	Location  string         `json:"location"`
	Region    string         `json:"region,omitempty"`
	Country   string         `json:"country"`
	Localtime string         `json:"localtime"`
	Current   WeatherCurrent `json:"current"`
}
