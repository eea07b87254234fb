package impl

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/netip"

	"skycast/config"
	deliverycontext "skycast/internal/delivery/context"
	"skycast/internal/domain/entity"
	domainerrors "skycast/internal/domain/errors"
	"skycast/internal/domain/service"
	"skycast/internal/usecase"

	"go.uber.org/fx"
)

// spoofBlockStart and spoofBlockSize bound the address range substituted for
// loopback callers when spoofing is enabled, a public /11 that geolocation
// services resolve without complaint.
const (
	spoofBlockStart = "78.160.0.0"
	spoofBlockSize  = 2_097_152
)

// weatherService implements the WeatherUsecase interface.
type weatherService struct {
	tokenService  service.TokenService
	resolver      service.LocationResolver
	provider      service.WeatherProvider
	spoofLoopback bool
	logger        *slog.Logger
}

// WeatherServiceParams holds dependencies for weatherService, injected by Fx.
type WeatherServiceParams struct {
	fx.In

	TokenService service.TokenService
	Resolver     service.LocationResolver
	Provider     service.WeatherProvider
	Config       *config.Config
	Logger       *slog.Logger
}

// NewWeatherService is the constructor for weatherService.
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	spoofLoopback := false
	if params.Config != nil && params.Config.Weather != nil {
		spoofLoopback = params.Config.Weather.SpoofLoopback
	}

	return &weatherService{
		tokenService:  params.TokenService,
		resolver:      params.Resolver,
		provider:      params.Provider,
		spoofLoopback: spoofLoopback,
		logger:        params.Logger,
	}
}

func (srv *weatherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentWeather verifies the caller's token, then resolves their address to
// coordinates and fetches the current conditions. The two external calls are
// strictly sequential; either one failing ends the request with its own outcome.
func (srv *weatherService) CurrentWeather(ctx context.Context, input *usecase.CurrentWeatherInput) (*entity.WeatherSnapshot, error) {
	if !srv.tokenService.Verify(input.Token) {
		srv.log(ctx).Warn("Rejected weather request with invalid token")

		return nil, domainerrors.ErrUnauthorized
	}

	locationKey := srv.locationKey(ctx, input.RemoteIP)

	coord, err := srv.resolver.ResolveCoordinates(ctx, locationKey)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve coordinates",
			slog.String("ip", locationKey),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrGeolocationQuery
	}

	snapshot, err := srv.provider.FetchWeather(ctx, coord)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch weather",
			slog.Float64("latitude", coord.Latitude),
			slog.Float64("longitude", coord.Longitude),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrWeatherQuery
	}

	return snapshot, nil
}

// locationKey derives the geolocation query key from the caller's address.
// When loopback spoofing is enabled, a loopback caller (local development,
// port-forwarded clients) is replaced with a random address from a public
// block so the geolocation service does not reject the query.
func (srv *weatherService) locationKey(ctx context.Context, remoteIP string) string {
	if !srv.spoofLoopback {
		return remoteIP
	}

	addr, err := netip.ParseAddr(remoteIP)
	if err != nil || !addr.IsLoopback() {
		return remoteIP
	}

	spoofed := randomSpoofAddr()
	srv.log(ctx).Debug("Substituted loopback caller address",
		slog.String("original", remoteIP),
		slog.String("substitute", spoofed),
	)

	return spoofed
}

func randomSpoofAddr() string {
	base := binary.BigEndian.Uint32(net.ParseIP(spoofBlockStart).To4())
	offset := rand.Uint32N(spoofBlockSize)

	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], base+offset)

	return netip.AddrFrom4(raw).String()
}
