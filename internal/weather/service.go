package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service resolves the current reading for a city through a single provider.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a new Service. A nil logger falls back to slog.Default.
func NewService(provider Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Current performs exactly one provider call. Failures are returned as-is;
// there is no retry and no fallback reading.
func (s *Service) Current(ctx context.Context, city string) (Reading, error) {
	if s.provider == nil {
		return Reading{}, fmt.Errorf("no weather provider configured")
	}

	start := time.Now()
	s.logger.Debug("fetching current weather", "provider", s.provider.Name(), "city", city)

	r, err := s.provider.Current(ctx, city)
	if err != nil {
		s.logger.Debug("provider call failed",
			"provider", s.provider.Name(),
			"city", city,
			"elapsed", time.Since(start),
			"error", err,
		)
		return Reading{}, err
	}

	s.logger.Debug("provider call succeeded",
		"provider", s.provider.Name(),
		"location", r.Location,
		"conditions", len(r.Conditions),
		"elapsed", time.Since(start),
	)
	return r, nil
}
