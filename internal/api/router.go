package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/muhammad-sayem/Tech-Horizon-Server/docs"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/handler"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/middleware"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

// Policy toggles the configurable route gates.
type Policy struct {
	// UsersListRequiresAdmin puts GET /users behind the Admin role.
	UsersListRequiresAdmin bool
	// EnforceModerationRoles gates the moderation and back-office routes.
	EnforceModerationRoles bool
}

// Deps is everything the router needs. Limiter may be nil, which disables
// rate limiting. Registry defaults to the global Prometheus registry.
type Deps struct {
	Logger zerolog.Logger

	JWTSecret      string
	TokenPolicy    string
	RequestTimeout time.Duration
	AllowOrigins   []string
	Policy         Policy

	Roles      ports.RoleReader
	Auth       ports.AuthService
	Accounts   ports.AccountService
	Listings   ports.ListingService
	Spotlights ports.SpotlightService
	Reviews    ports.ReviewService
	Coupons    ports.CouponService
	Stats      ports.StatsService
	Payments   ports.PaymentService

	Limiter middleware.Limiter
	Pingers map[string]handler.Pinger

	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	e.Validator = handler.NewValidator()

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.AllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "no-referrer",
		HSTSMaxAge:         31536000,
	}))
	if d.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
			Timeout: d.RequestTimeout,
		}))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "techhorizon",
		Registerer: registerer,
	}))

	// --- Gates ---
	authn := middleware.Auth(d.JWTSecret)
	admin := []echo.MiddlewareFunc{authn, middleware.RequireRole(d.Roles, domain.RoleAdmin)}
	moderator := []echo.MiddlewareFunc{authn, middleware.RequireRole(d.Roles, domain.RoleModerator, domain.RoleAdmin)}
	limited := []echo.MiddlewareFunc{}
	if d.Limiter != nil {
		limited = append(limited, middleware.RateLimit(d.Limiter, d.Logger))
	}

	usersList := []echo.MiddlewareFunc{authn}
	if d.Policy.UsersListRequiresAdmin {
		usersList = admin
	}

	// Moderation and back-office routes stay open unless enforcement is on.
	// Under enforcement, reporting and generic edits still only need a token;
	// the listing service then refuses moderation fields on those edits.
	var moderation, backOffice, signedIn []echo.MiddlewareFunc
	if d.Policy.EnforceModerationRoles {
		moderation, backOffice, signedIn = moderator, admin, []echo.MiddlewareFunc{authn}
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.TokenPolicy)
	accountHandler := handler.NewAccountHandler(d.Accounts)
	listingHandler := handler.NewListingHandler(d.Listings)
	spotlightHandler := handler.NewSpotlightHandler(d.Spotlights)
	reviewHandler := handler.NewReviewHandler(d.Reviews)
	couponHandler := handler.NewCouponHandler(d.Coupons)
	statsHandler := handler.NewStatsHandler(d.Stats)
	paymentHandler := handler.NewPaymentHandler(d.Payments)

	e.GET("/", handler.Root)

	// --- Auth ---
	e.POST("/jwt", authHandler.IssueToken, limited...)

	// --- Accounts ---
	e.POST("/users", accountHandler.Create)
	e.GET("/users", accountHandler.List, usersList...)
	e.GET("/user/role/:email", accountHandler.Role)
	e.PATCH("/user/status-subscribed/:id", accountHandler.MarkSubscribed)
	e.PATCH("/users/admin/:id", accountHandler.MakeAdmin, admin...)
	e.PATCH("/users/moderator/:id", accountHandler.MakeModerator, admin...)

	// --- Listings ---
	e.POST("/products", listingHandler.Create, authn)
	e.GET("/products", listingHandler.ListAccepted)
	e.GET("/all-products", listingHandler.ListAll)
	e.GET("/products/reported", listingHandler.ListReported)
	e.GET("/products/:email", listingHandler.ListByOwner)
	e.GET("/trending-products", listingHandler.Trending)
	e.GET("/product/:id", listingHandler.Get)
	e.PATCH("/product/upvote/:id", listingHandler.Upvote, authn)
	e.PATCH("/product/accept-status/:id", listingHandler.Accept, moderation...)
	e.PATCH("/product/reject-status/:id", listingHandler.Reject, moderation...)
	e.PATCH("/product/feature-true/:id", listingHandler.Feature, moderation...)
	e.PATCH("/product/report/:id", listingHandler.Report, signedIn...)
	e.PUT("/product/update/:id", listingHandler.Update, signedIn...)
	e.DELETE("/product/:id", listingHandler.Delete, moderation...)

	// --- Spotlight ---
	e.POST("/featured", spotlightHandler.Create, moderation...)
	e.GET("/featured", spotlightHandler.List)
	e.PATCH("/product/feature-upvote/:id", spotlightHandler.Upvote, authn)
	e.PUT("/featured/update/:id", spotlightHandler.Update, moderation...)
	e.DELETE("/featured/:id", spotlightHandler.Delete, moderation...)

	// --- Reviews ---
	e.POST("/reviews", reviewHandler.Create)
	e.GET("/review/:id", reviewHandler.ListByProduct)

	// --- Coupons ---
	e.POST("/add-coupon", couponHandler.Create, backOffice...)
	e.GET("/coupons", couponHandler.List)
	e.PUT("/coupon/:id", couponHandler.Update, backOffice...)
	e.DELETE("/coupon/:id", couponHandler.Delete, backOffice...)

	// --- Admin & payments ---
	e.GET("/admin-stats", statsHandler.AdminStats, backOffice...)
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, append([]echo.MiddlewareFunc{authn}, limited...)...)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Pingers)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "route not found")
	})

	return e
}
