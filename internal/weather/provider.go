package weather

import (
	"context"
)

// Provider abstracts the remote weather data source (OpenWeatherMap).
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (Reading, error)
}
