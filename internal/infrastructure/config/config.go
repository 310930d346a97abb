package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth    AuthConfig
	HTTP    HTTPConfig
	Policy  PolicyConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Payment PaymentConfig
}

type AuthConfig struct {
	Secret      string        `env:"ACCESS_TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL,   default=1h"`
	IssuePolicy string        `env:"TOKEN_ISSUE_POLICY, default=claim"`
}

type HTTPConfig struct {
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT,       default=10s"`
	CORSAllowOrigins   []string      `env:"CORS_ALLOW_ORIGINS,    default=*"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE, default=30"`
	StatsCacheTTL      time.Duration `env:"STATS_CACHE_TTL,       default=15s"`
}

// PolicyConfig toggles the authorization rules that are off by default.
type PolicyConfig struct {
	UsersListRequiresAdmin bool   `env:"USERS_LIST_REQUIRES_ADMIN, default=false"`
	EnforceModerationRoles bool   `env:"ENFORCE_MODERATION_ROLES,  default=false"`
	DefaultListingStatus   string `env:"DEFAULT_LISTING_STATUS,    default=Pending"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`
	Host     string `env:"MONGO_HOST, default=cluster0.crzce.mongodb.net"`
	Database string `env:"MONGO_DB,   default=techHorizon"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type PaymentConfig struct {
	SecretKey string `env:"PAYMENT_SECRET_KEY"`
	Currency  string `env:"PAYMENT_CURRENCY, default=usd"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from an arbitrary lookuper. Tests use
// envconfig.MapLookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the API server cannot start without.
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if c.HTTP.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return nil
}

// MongoURI returns MONGO_URI when set, otherwise an Atlas SRV URI built from
// DB_USER, DB_PASS and MONGO_HOST, falling back to a local server.
func (m MongoConfig) MongoURI() string {
	if m.URI != "" {
		return m.URI
	}
	if m.User == "" {
		return "mongodb://localhost:27017"
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(m.User, m.Password),
		Host:     m.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	return u.String()
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }
