package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skycast/config"
	"skycast/internal/domain/entity"
	"skycast/internal/domain/service"
	"skycast/internal/errors"
)

const weatherRequestTimeout = 10 * time.Second

// weatherAPIClient fetches current conditions from the weatherapi.com
// current.json endpoint.
type weatherAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// currentConditionsResponse mirrors the subset of the current.json
// payload the service exposes.
type currentConditionsResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		FeelsLike float64 `json:"feelslike_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
		LastUpdated string `json:"last_updated"`
	} `json:"current"`
}

// NewWeatherAPIClient creates the weatherapi.com backed weather provider.
func NewWeatherAPIClient(cfg *config.Config, logger *slog.Logger) service.WeatherProvider {
	return &weatherAPIClient{
		baseURL: strings.TrimRight(cfg.Weather.WeatherBaseURL, "/"),
		apiKey:  cfg.Weather.APIKey,
		httpClient: &http.Client{
			Timeout: weatherRequestTimeout,
		},
		logger: logger,
	}
}

func (c *weatherAPIClient) FetchWeather(ctx context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", fmt.Sprintf("%v,%v", coord.Latitude, coord.Longitude))

	endpoint := fmt.Sprintf("%s/current.json?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("weather service returned status %d", resp.StatusCode)
	}

	var payload currentConditionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode weather response")
	}

	c.logger.Debug("fetched weather",
		slog.Float64("latitude", coord.Latitude),
		slog.Float64("longitude", coord.Longitude),
		slog.String("condition", payload.Current.Condition.Text),
	)

	return &entity.WeatherSnapshot{
		Temperature: payload.Current.TempC,
		FeelsLike:   payload.Current.FeelsLike,
		Condition:   payload.Current.Condition.Text,
		LastUpdated: payload.Current.LastUpdated,
	}, nil
}
