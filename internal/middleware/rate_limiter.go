package middleware

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimiter limits each client IP to perSecond requests per second.
// Bursts up to perSecond (rounded up, at least one) are allowed, so rates below
// one request per second still let a fresh client through.
// Clients are keyed by c.RealIP(), which depends on the Echo instance's IPExtractor.
func RateLimiter(perSecond float64) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// In-memory store, suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(perSecond),
			Burst: max(1, int(math.Ceil(perSecond))),
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
