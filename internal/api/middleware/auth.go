package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DhairyaPatel2210/portfolio/internal/api/metrics"
	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
	"github.com/DhairyaPatel2210/portfolio/internal/pkg/originhost"
	"github.com/DhairyaPatel2210/portfolio/internal/pkg/token"
)

// TokenVerifier validates a session token's signature and expiry.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Auth validates the bearer token, binds it to the request's origin hostname
// and injects the verified domain.Identity into the request context.
//
//	no token                      → 401 Authentication required
//	bad signature / expired       → 403 Invalid token
//	hostname != token domain      → 403 Invalid domain
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
			}

			if originhost.FromRequest(c.Request()) != claims.Domain {
				metrics.TokenRejectionsTotal.WithLabelValues("domain").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid domain")
			}

			id := domain.Identity{UserID: claims.UserID, Email: claims.Email, Domain: claims.Domain}
			c.SetRequest(c.Request().WithContext(domain.WithIdentity(c.Request().Context(), id)))

			return next(c)
		}
	}
}

// bearerToken extracts the token from "Bearer <token>"; anything else is
// treated as absent.
func bearerToken(header string) string {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(tok)
}
