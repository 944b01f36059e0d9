package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
)

// OriginHandler manages the CORS allow-list entries owned by the caller.
type OriginHandler struct {
	service ports.OriginService
}

func NewOriginHandler(service ports.OriginService) *OriginHandler {
	return &OriginHandler{service: service}
}

// List returns the caller's origins.
//
// @Summary      List own origins
// @Tags         origins
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Origin
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /origins [get]
func (h *OriginHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	origins, err := h.service.List(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	if origins == nil {
		origins = []*domain.Origin{}
	}
	return c.JSON(http.StatusOK, origins)
}

// ListAll returns every stored origin string across users.
//
// @Summary      List all allowed origins
// @Tags         origins
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  errorResponse
// @Router       /origins/all [get]
func (h *OriginHandler) ListAll(c echo.Context) error {
	values, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if values == nil {
		values = []string{}
	}
	return c.JSON(http.StatusOK, values)
}

// Add stores a new origin for the caller.
//
// @Summary      Add an origin
// @Tags         origins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addOriginRequest  true  "Origin and description"
// @Success      201   {object}  domain.Origin
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /origins [post]
func (h *OriginHandler) Add(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addOriginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	origin, err := h.service.Add(c.Request().Context(), id.UserID, req.Origin, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, origin)
}

// Remove deletes one of the caller's origins.
//
// @Summary      Delete an origin
// @Tags         origins
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Origin ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /origins/{id} [delete]
func (h *OriginHandler) Remove(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), id.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Origin deleted successfully"})
}
