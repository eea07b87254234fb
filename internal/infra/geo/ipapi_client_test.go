package geo

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"skycast/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeoTestConfig(geoURL string) *config.Config {
	return &config.Config{
		Weather: &config.WeatherConfig{
			GeoBaseURL: geoURL,
		},
	}
}

func TestIPAPIClient_ResolveCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/78.160.1.1/latlong/", r.URL.Path)
		_, _ = w.Write([]byte("41.015137,28.979530"))
	}))
	defer server.Close()

	client := NewIPAPIClient(newGeoTestConfig(server.URL), slog.Default())

	coord, err := client.ResolveCoordinates(context.Background(), "78.160.1.1")
	require.NoError(t, err)
	assert.InDelta(t, 41.015137, coord.Latitude, 1e-9)
	assert.InDelta(t, 28.979530, coord.Longitude, 1e-9)
}

func TestIPAPIClient_ResolveCoordinates_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewIPAPIClient(newGeoTestConfig(server.URL), slog.Default())

	_, err := client.ResolveCoordinates(context.Background(), "78.160.1.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestIPAPIClient_ResolveCoordinates_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing separator", body: "41.015137"},
		{name: "too many fields", body: "41.0,28.9,0.0"},
		{name: "non numeric latitude", body: "abc,28.9"},
		{name: "non numeric longitude", body: "41.0,xyz"},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewIPAPIClient(newGeoTestConfig(server.URL), slog.Default())

			_, err := client.ResolveCoordinates(context.Background(), "78.160.1.1")
			assert.Error(t, err)
		})
	}
}

func TestParseLatLong_TrimsWhitespace(t *testing.T) {
	coord, err := parseLatLong("  41.0, 28.9\n")
	require.NoError(t, err)
	assert.InDelta(t, 41.0, coord.Latitude, 1e-9)
	assert.InDelta(t, 28.9, coord.Longitude, 1e-9)
}
