package api

import (
	"net"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/DhairyaPatel2210/portfolio/docs"
	"github.com/DhairyaPatel2210/portfolio/internal/api/handler"
	"github.com/DhairyaPatel2210/portfolio/internal/api/middleware"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
)

const bodyLimit = "5M"

// Dependencies is everything the router needs to mount the API.
type Dependencies struct {
	Auth        ports.AuthService
	Credentials ports.CredentialService
	Origins     ports.OriginService
	Profiles    ports.ProfileService
	Contacts    ports.ContactService
	Tokens      middleware.TokenVerifier

	// RateLimiter guards the public credential endpoints. Nil disables it.
	RateLimiter  middleware.HitCounter
	RateLimitMax int64

	// TrustedProxies are the peers allowed to report the client address in
	// X-Forwarded-For. Empty means the socket peer is the client.
	TrustedProxies []*net.IPNet

	Health     map[string]handler.Pinger
	Cookie     handler.CookieOptions
	Production bool
	Log        zerolog.Logger

	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log, deps.Production)
	e.IPExtractor = clientIPExtractor(deps.TrustedProxies)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(middleware.CORS(deps.Origins, deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "portfolio",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	users := handler.NewUserHandler(deps.Auth, deps.Cookie)
	creds := handler.NewCredentialHandler(deps.Credentials)
	origins := handler.NewOriginHandler(deps.Origins)
	profiles := handler.NewProfileHandler(deps.Profiles)
	contacts := handler.NewContactHandler(deps.Contacts)
	health := handler.NewHealthHandler(deps.Health)

	requireAuth := middleware.Auth(deps.Tokens)

	var throttle []echo.MiddlewareFunc
	if deps.RateLimiter != nil {
		throttle = append(throttle, middleware.RateLimit(deps.RateLimiter, deps.RateLimitMax, deps.Log))
	}

	// --- Users ---
	u := e.Group("/users")
	u.POST("/signup", users.Signup, throttle...)
	u.POST("/login", users.Login, throttle...)
	u.POST("/auth/api-key", users.APIKeyAuth, throttle...)
	u.POST("/logout", users.Logout)

	u.GET("/check-auth", users.CheckAuth, requireAuth)
	u.GET("/public-key", creds.GetPublicKey, requireAuth)
	u.POST("/public-key", creds.RegeneratePublicKey, requireAuth)
	u.GET("/api-key", creds.GetAPIKey, requireAuth)
	u.POST("/api-key", creds.RegenerateAPIKey, requireAuth)
	u.GET("/profile", profiles.Get, requireAuth)
	u.PUT("/profile", profiles.Update, requireAuth)
	u.GET("/contact", contacts.Get, requireAuth)
	u.PUT("/contact", contacts.Update, requireAuth)

	// --- Origins ---
	o := e.Group("/origins")
	o.GET("/all", origins.ListAll)
	o.GET("", origins.List, requireAuth)
	o.POST("", origins.Add, requireAuth)
	o.DELETE("/:id", origins.Remove, requireAuth)

	// --- Operations ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// clientIPExtractor reads X-Forwarded-For only when it was appended by one of
// the trusted proxies; otherwise the socket peer is the client.
func clientIPExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range trusted {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
