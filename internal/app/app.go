// Package app wires configuration, storage, services and the HTTP router into
// a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/handler"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/middleware"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/service"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/infrastructure/config"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/infrastructure/db/mongo"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/infrastructure/db/redis"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/infrastructure/payment"
	applogger "github.com/muhammad-sayem/Tech-Horizon-Server/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// App owns the long-lived clients and the HTTP server built on them.
type App struct {
	cfg    *config.Config
	logger zerolog.Logger

	mongoClient *mongodriver.Client
	db          *mongodriver.Database
	redis       *goredis.Client

	Accounts *service.AccountService
	Echo     *echo.Echo
}

// Connect opens MongoDB and Redis without building the router. The command
// line tools use it directly.
func Connect(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.MongoURI(),
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	a := &App{
		cfg:         cfg,
		logger:      logger,
		mongoClient: client,
		db:          db,
		redis:       rdb,
	}
	a.Accounts = service.NewAccountService(mongo.NewAccountRepository(db), applogger.Component("accounts"))
	return a, nil
}

// New connects to the stores and builds the full HTTP stack.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := service.ParseIssuePolicy(cfg.Auth.IssuePolicy)
	if err != nil {
		return nil, err
	}

	a, err := Connect(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := mongo.EnsureIndexes(ctx, a.db); err != nil {
		a.Close(context.Background())
		return nil, err
	}

	accountRepo := mongo.NewAccountRepository(a.db)
	listingRepo := mongo.NewListingRepository(a.db)
	spotlightRepo := mongo.NewSpotlightRepository(a.db)
	reviewRepo := mongo.NewReviewRepository(a.db)
	couponRepo := mongo.NewCouponRepository(a.db)

	if policy == service.PolicyClaim {
		logger.Warn().Msg("TOKEN_ISSUE_POLICY=claim signs any posted email; use registered or password outside development")
	}

	var limiter middleware.Limiter
	if cfg.HTTP.RateLimitPerMinute > 0 {
		l, err := redis.NewFixedWindowLimiter(a.redis, "techhorizon:ratelimit", cfg.HTTP.RateLimitPerMinute, time.Minute)
		if err != nil {
			a.Close(context.Background())
			return nil, err
		}
		limiter = l
	}

	var gateway ports.PaymentGateway
	if cfg.Payment.SecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.Payment.SecretKey, nil)
	} else {
		logger.Warn().Msg("PAYMENT_SECRET_KEY not set; payment intents will answer 503")
	}

	a.Echo = api.NewRouter(api.Deps{
		Logger:         logger,
		JWTSecret:      cfg.Auth.Secret,
		TokenPolicy:    string(policy),
		RequestTimeout: cfg.HTTP.RequestTimeout,
		AllowOrigins:   cfg.HTTP.CORSAllowOrigins,
		Policy: api.Policy{
			UsersListRequiresAdmin: cfg.Policy.UsersListRequiresAdmin,
			EnforceModerationRoles: cfg.Policy.EnforceModerationRoles,
		},
		Roles:    accountRepo,
		Auth:     service.NewAuthService(accountRepo, cfg.Auth.Secret, cfg.Auth.TokenTTL, policy, applogger.Component("auth")),
		Accounts: a.Accounts,
		Listings: service.NewListingService(listingRepo, service.ListingOptions{
			DefaultStatus:  domain.ListingStatus(cfg.Policy.DefaultListingStatus),
			LockModeration: cfg.Policy.EnforceModerationRoles,
		}, applogger.Component("listings")),
		Spotlights: service.NewSpotlightService(spotlightRepo, applogger.Component("spotlight")),
		Reviews:    service.NewReviewService(reviewRepo, applogger.Component("reviews")),
		Coupons:    service.NewCouponService(couponRepo, applogger.Component("coupons")),
		Stats: service.NewStatsService(accountRepo, listingRepo, reviewRepo,
			redis.NewStatsCache(a.redis), cfg.HTTP.StatsCacheTTL, applogger.Component("stats")),
		Payments: service.NewPaymentService(gateway, cfg.Payment.Currency, applogger.Component("payments")),
		Limiter:  limiter,
		Pingers: map[string]handler.Pinger{
			"mongodb": func(ctx context.Context) error { return a.mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return a.redis.Ping(ctx).Err() },
		},
	})

	return a, nil
}

// Database exposes the selected MongoDB database.
func (a *App) Database() *mongodriver.Database { return a.db }

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a.Echo == nil {
		return errors.New("app: router not built, use New")
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           a.Echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", srv.Addr).Msg("tech horizon is listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close releases the store clients.
func (a *App) Close(ctx context.Context) {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("redis close")
		}
	}
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("mongo disconnect")
		}
	}
}
