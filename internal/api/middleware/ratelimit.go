package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/DhairyaPatel2210/portfolio/internal/api/metrics"
)

// HitCounter records a hit for key within scope and returns the count in
// the current window and the time until it resets.
type HitCounter interface {
	Hit(ctx context.Context, scope, key string) (int64, time.Duration, error)
}

// RateLimit rejects clients that exceed max requests per window on a route.
// Counter failures let the request through.
func RateLimit(counter HitCounter, max int64, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if max <= 0 {
				return next(c)
			}

			n, retryAfter, err := counter.Hit(c.Request().Context(), c.Path(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("path", c.Path()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if n > max {
				metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
				secs := int(retryAfter.Round(time.Second) / time.Second)
				if secs < 1 {
					secs = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later")
			}
			return next(c)
		}
	}
}
