package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"skycast/internal/delivery/http/response"
	"skycast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// WeatherHandler holds dependencies for the weather endpoint.
type WeatherHandler struct {
	uc     usecase.WeatherUsecase
	logger *slog.Logger
}

// NewWeatherHandler is the constructor for WeatherHandler, injected by Fx.
func NewWeatherHandler(uc usecase.WeatherUsecase, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		uc:     uc,
		logger: logger,
	}
}

// Current returns the current weather at the caller's location. The bearer
// token is handed to the usecase raw; a missing or malformed header simply
// fails verification there.
func (h *WeatherHandler) Current(c echo.Context) error {
	token := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)

	output, err := h.uc.CurrentWeather(c.Request().Context(), &usecase.CurrentWeatherInput{
		Token:    token,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Weather retrieved successfully")
}
