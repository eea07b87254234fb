package entity

// Coordinate is a geographic point produced by the geolocation lookup and
// consumed immediately by the weather lookup. It is never persisted.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// WeatherSnapshot is the assembled result of a weather lookup, returned to
// the caller as-is. LastUpdated carries the provider's own timestamp string.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Condition   string  `json:"condition"`
	LastUpdated string  `json:"last_updated"`
}
