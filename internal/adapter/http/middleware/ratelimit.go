package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/flight-search/flight-search-validator/internal/adapter/http/response"
)

// RateLimitConfig sets the per-client token bucket.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client IP
	RequestsPerSecond float64

	// Burst is the bucket size
	Burst int

	// ExpiresIn drops idle client buckets; defaults to 3 minutes
	ExpiresIn time.Duration
}

// RateLimit returns middleware that limits requests per client IP.
// Rejected requests get a 429 with the standard error body.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.BadRequest(c, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.TooManyRequests(c)
		},
	})
}
