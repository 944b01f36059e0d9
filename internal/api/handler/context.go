package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

// ctxIdentity returns the caller attached by the Auth middleware. A missing
// identity means the route was mounted without the guard.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := domain.IdentityFromContext(c.Request().Context())
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return c.Validate(req)
}
