package geo

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"skycast/config"
	"skycast/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherTestConfig(weatherURL string) *config.Config {
	return &config.Config{
		Weather: &config.WeatherConfig{
			WeatherBaseURL: weatherURL,
			APIKey:         "test-key",
		},
	}
}

func TestWeatherAPIClient_FetchWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "41.015137,28.97953", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {
				"temp_c": 21.4,
				"feelslike_c": 19.8,
				"condition": {"text": "Partly cloudy"},
				"last_updated": "2025-06-01 14:30"
			}
		}`))
	}))
	defer server.Close()

	client := NewWeatherAPIClient(newWeatherTestConfig(server.URL), slog.Default())

	snapshot, err := client.FetchWeather(context.Background(), entity.Coordinate{
		Latitude:  41.015137,
		Longitude: 28.97953,
	})
	require.NoError(t, err)
	assert.InDelta(t, 21.4, snapshot.Temperature, 1e-9)
	assert.InDelta(t, 19.8, snapshot.FeelsLike, 1e-9)
	assert.Equal(t, "Partly cloudy", snapshot.Condition)
	assert.Equal(t, "2025-06-01 14:30", snapshot.LastUpdated)
}

func TestWeatherAPIClient_FetchWeather_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":2006,"message":"API key is invalid."}}`))
	}))
	defer server.Close()

	client := NewWeatherAPIClient(newWeatherTestConfig(server.URL), slog.Default())

	_, err := client.FetchWeather(context.Background(), entity.Coordinate{Latitude: 41, Longitude: 28})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestWeatherAPIClient_FetchWeather_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewWeatherAPIClient(newWeatherTestConfig(server.URL), slog.Default())

	_, err := client.FetchWeather(context.Background(), entity.Coordinate{Latitude: 41, Longitude: 28})
	assert.Error(t, err)
}
