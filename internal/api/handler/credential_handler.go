package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DhairyaPatel2210/portfolio/internal/api/metrics"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
)

// CredentialHandler exposes the caller's RSA public key and API key.
type CredentialHandler struct {
	service ports.CredentialService
}

func NewCredentialHandler(service ports.CredentialService) *CredentialHandler {
	return &CredentialHandler{service: service}
}

// GetPublicKey returns the caller's public key, provisioning a pair on the
// first call.
//
// @Summary      Get the public key
// @Tags         credentials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  publicKeyResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/public-key [get]
func (h *CredentialHandler) GetPublicKey(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	key, err := h.service.PublicKey(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, publicKeyResponse{PublicKey: key})
}

// RegeneratePublicKey replaces the caller's key pair. Ciphertexts produced
// with the previous public key can no longer be exchanged.
//
// @Summary      Regenerate the key pair
// @Tags         credentials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  publicKeyResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/public-key [post]
func (h *CredentialHandler) RegeneratePublicKey(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	key, err := h.service.RegeneratePublicKey(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	metrics.KeyRotationsTotal.WithLabelValues("key_pair").Inc()
	return c.JSON(http.StatusOK, publicKeyResponse{PublicKey: key})
}

// GetAPIKey returns the caller's API key, or 204 when none was issued.
//
// @Summary      Get the API key
// @Tags         credentials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiKeyResponse
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/api-key [get]
func (h *CredentialHandler) GetAPIKey(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	key, err := h.service.APIKey(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	if key == "" {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, apiKeyResponse{APIKey: key})
}

// RegenerateAPIKey issues a new API key, replacing any previous one.
//
// @Summary      Regenerate the API key
// @Tags         credentials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiKeyResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/api-key [post]
func (h *CredentialHandler) RegenerateAPIKey(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	key, err := h.service.RegenerateAPIKey(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	metrics.KeyRotationsTotal.WithLabelValues("api_key").Inc()
	return c.JSON(http.StatusOK, apiKeyResponse{APIKey: key})
}
