package usecase

import (
	"context"

	"skycast/internal/domain/entity"
)

// CurrentWeatherInput defines the data required to fetch weather for a caller.
// Token is the raw bearer token from the request; RemoteIP is the caller's
// address as seen by the server.
type CurrentWeatherInput struct {
	Token    string
	RemoteIP string
}

// WeatherUsecase defines the interface for the weather retrieval flow:
// verify the session token, resolve the caller's coordinates, then fetch
// the current conditions for them.
type WeatherUsecase interface {
	CurrentWeather(ctx context.Context, input *CurrentWeatherInput) (*entity.WeatherSnapshot, error)
}
