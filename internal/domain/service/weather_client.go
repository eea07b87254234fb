package service

import (
	"context"

	"skycast/internal/domain/entity"
)

// LocationResolver resolves a location key (an IP address literal) to a
// geographic coordinate via an external geolocation service. A non-success
// response or an unparseable body is an error, never a silent default.
type LocationResolver interface {
	ResolveCoordinates(ctx context.Context, locationKey string) (entity.Coordinate, error)
}

// WeatherProvider fetches the current weather for a coordinate from an
// external weather service.
type WeatherProvider interface {
	FetchWeather(ctx context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error)
}
