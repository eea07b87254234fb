package geo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"skycast/config"
	"skycast/internal/domain/entity"
	"skycast/internal/domain/service"
	"skycast/internal/errors"
)

const geoRequestTimeout = 10 * time.Second

// ipAPIClient resolves an IP address to coordinates through the
// ipapi.co plain-text latlong endpoint.
type ipAPIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewIPAPIClient creates the ipapi.co backed location resolver.
func NewIPAPIClient(cfg *config.Config, logger *slog.Logger) service.LocationResolver {
	return &ipAPIClient{
		baseURL: strings.TrimRight(cfg.Weather.GeoBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: geoRequestTimeout,
		},
		logger: logger,
	}
}

func (c *ipAPIClient) ResolveCoordinates(ctx context.Context, locationKey string) (entity.Coordinate, error) {
	url := fmt.Sprintf("%s/%s/latlong/", c.baseURL, locationKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.Coordinate{}, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Coordinate{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.Coordinate{}, errors.Errorf("geolocation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Coordinate{}, errors.WithStack(err)
	}

	coord, err := parseLatLong(string(body))
	if err != nil {
		return entity.Coordinate{}, err
	}

	c.logger.Debug("resolved coordinates",
		slog.String("ip", locationKey),
		slog.Float64("latitude", coord.Latitude),
		slog.Float64("longitude", coord.Longitude),
	)

	return coord, nil
}

// parseLatLong parses the "lat,long" body returned by the latlong endpoint.
func parseLatLong(body string) (entity.Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(body), ",")
	if len(parts) != 2 {
		return entity.Coordinate{}, errors.Errorf("unexpected geolocation response: %q", body)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to parse latitude")
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to parse longitude")
	}

	return entity.Coordinate{Latitude: latitude, Longitude: longitude}, nil
}
