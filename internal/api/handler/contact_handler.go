package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Get returns the caller's public contact details.
//
// @Summary      Get own contact details
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  contactResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/contact [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	contact, err := h.service.Get(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contactResponse{Contact: contact})
}

// Update replaces the caller's contact block. The emails and the SendGrid
// key are stored but never echoed back.
//
// @Summary      Update own contact details
// @Tags         contact
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateContactRequest  true  "Contact block"
// @Success      200   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/contact [put]
func (h *ContactHandler) Update(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.service.Update(c.Request().Context(), id.UserID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contactResponse{
		Message: "Contact information updated successfully",
		Contact: contact,
	})
}
