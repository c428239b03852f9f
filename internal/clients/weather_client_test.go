package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleWeatherJSON = `{
	"location": {
		"name": "London",
		"region": "City of London, Greater London",
		"country": "United Kingdom",
		"localtime": "2024-06-21 14:30"
	},
	"current": {
		"temp_c": 21.5,
		"temp_f": 70.7,
		"feelslike_c": 20.9,
		"feelslike_f": 69.6,
		"humidity": 56,
		"wind_kph": 13.0,
		"wind_mph": 8.1,
		"wind_dir": "SW",
		"pressure_mb": 1016.0,
		"precip_mm": 0.0,
		"uv": 5.0,
		"condition": {
			"text": "Partly cloudy",
			"icon": "//cdn.weatherapi.com/weather/64x64/day/116.png",
			"code": 1003
		}
	}
}`

func TestGetCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/current.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "London" {
			t.Errorf("q = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleWeatherJSON))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "test-key")
	resp, err := client.GetCurrent(context.Background(), "London")
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}

	if resp.Location != "London" || resp.Country != "United Kingdom" {
		t.Errorf("location = %q, country = %q", resp.Location, resp.Country)
	}
	if resp.Current.TempC != 21.5 || resp.Current.FeelsLikeC != 20.9 {
		t.Errorf("temp = %f, feels like = %f", resp.Current.TempC, resp.Current.FeelsLikeC)
	}
	if resp.Current.Humidity != 56 {
		t.Errorf("humidity = %d", resp.Current.Humidity)
	}
	if resp.Current.Condition.Text != "Partly cloudy" || resp.Current.Condition.Code != 1003 {
		t.Errorf("condition = %+v", resp.Current.Condition)
	}
}

func TestGetCurrentQueryEscaping(t *testing.T) {
	var gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		w.Write([]byte(sampleWeatherJSON))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "test-key")
	if _, err := client.GetCurrent(context.Background(), "New York"); err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if gotQ != "New York" {
		t.Errorf("q decoded to %q, want %q", gotQ, "New York")
	}
}

func TestGetCurrentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":1006,"message":"No matching location found."}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "test-key")
	if _, err := client.GetCurrent(context.Background(), "Nowhereville"); err == nil {
		t.Error("expected an error for a non-200 upstream status")
	}
}

func TestGetCurrentBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "test-key")
	if _, err := client.GetCurrent(context.Background(), "London"); err == nil {
		t.Error("expected a decode error for non-JSON body")
	}
}
