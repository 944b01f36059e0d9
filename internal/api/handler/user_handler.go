package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DhairyaPatel2210/portfolio/internal/api/metrics"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
	"github.com/DhairyaPatel2210/portfolio/internal/pkg/originhost"
)

// SessionCookie is the name of the cookie mirroring the bearer token.
const SessionCookie = "jwt"

// CookieOptions controls the session cookie written on successful auth.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// UserHandler serves account creation and the token-issuing endpoints.
type UserHandler struct {
	auth   ports.AuthService
	cookie CookieOptions
}

func NewUserHandler(auth ports.AuthService, cookie CookieOptions) *UserHandler {
	return &UserHandler{auth: auth, cookie: cookie}
}

// Signup creates an account and returns a token bound to the caller's origin.
//
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}, originhost.FromRequest(c.Request()))
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()

	return h.respond(c, http.StatusCreated, res)
}

// Login verifies email and password.
//
// @Summary      Log in with a password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.auth.Login(c.Request().Context(), req.Email, req.Password, originhost.FromRequest(c.Request()))
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("password", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("password", "success").Inc()

	return h.respond(c, http.StatusOK, res)
}

// APIKeyAuth exchanges an API key encrypted with the user's public key for a
// token.
//
// @Summary      Log in with an encrypted API key
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      apiKeyAuthRequest  true  "Email and base64 RSA-OAEP ciphertext"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /users/auth/api-key [post]
func (h *UserHandler) APIKeyAuth(c echo.Context) error {
	var req apiKeyAuthRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.auth.AuthenticateWithAPIKey(c.Request().Context(), req.Email, req.EncryptedKey, originhost.FromRequest(c.Request()))
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("api_key", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("api_key", "success").Inc()

	return h.respond(c, http.StatusOK, res)
}

// Logout clears the session cookie. Bearer tokens already handed out stay
// valid until they expire.
//
// @Summary      Log out
// @Tags         users
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

// CheckAuth reports that the presented token passed the guard.
//
// @Summary      Validate the current session
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkAuthResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/check-auth [get]
func (h *UserHandler) CheckAuth(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkAuthResponse{IsAuthenticated: true})
}

func (h *UserHandler) respond(c echo.Context, status int, res *ports.AuthResult) error {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    res.Token,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(status, authResponse{Token: res.Token, User: res.User})
}
