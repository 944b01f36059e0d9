package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/DhairyaPatel2210/portfolio/internal/api/metrics"
)

const corsLookupTimeout = 3 * time.Second

// OriginChecker decides whether a web origin is on the allow-list.
type OriginChecker interface {
	IsAllowed(ctx context.Context, origin string) (bool, error)
}

// CORS consults the dynamic allow-list on every cross-origin request. When
// the list cannot be computed the request fails closed with a 500 and no
// Access-Control-Allow-Origin header.
func CORS(checker OriginChecker, log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			ctx, cancel := context.WithTimeout(context.Background(), corsLookupTimeout)
			defer cancel()

			allowed, err := checker.IsAllowed(ctx, origin)
			if err != nil {
				metrics.CORSDecisionsTotal.WithLabelValues("error").Inc()
				return false, echo.NewHTTPError(http.StatusInternalServerError, "Not allowed by CORS").SetInternal(err)
			}
			if !allowed {
				metrics.CORSDecisionsTotal.WithLabelValues("denied").Inc()
				log.Debug().Str("origin", origin).Msg("origin not allowed")
				return false, nil
			}
			metrics.CORSDecisionsTotal.WithLabelValues("allowed").Inc()
			return true, nil
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
		},
		AllowCredentials: true,
	})
}
