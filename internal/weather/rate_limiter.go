package weather

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"skyglance/internal/domain"
)

// RateLimitedClient wraps a Client with one limiter per API operation
type RateLimitedClient struct {
	client          Client
	searchLimiter   *rate.Limiter
	forecastLimiter *rate.Limiter
}

// NewRateLimitedClient creates a rate limited client.
// rps is the maximum requests per second per operation, burst the maximum burst size.
func NewRateLimitedClient(client Client, rps float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		client:          client,
		searchLimiter:   rate.NewLimiter(rate.Limit(rps), burst),
		forecastLimiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// SearchLocations waits for the search limiter and forwards the call
func (r *RateLimitedClient) SearchLocations(ctx context.Context, prefix string) ([]domain.LocationCandidate, error) {
	if err := r.searchLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait canceled: %w", domain.ErrNetwork, err)
	}
	return r.client.SearchLocations(ctx, prefix)
}

// GetForecast waits for the forecast limiter and forwards the call
func (r *RateLimitedClient) GetForecast(ctx context.Context, city string, days int) (domain.ForecastState, error) {
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return domain.ForecastState{}, fmt.Errorf("%w: rate limit wait canceled: %w", domain.ErrNetwork, err)
	}
	return r.client.GetForecast(ctx, city, days)
}

var _ Client = (*RateLimitedClient)(nil)
