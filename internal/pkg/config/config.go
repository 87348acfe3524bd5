package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   commerce credentials) and security settings
// - default: Values common across all environments (claim window, tick
//   interval, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Commerce CommerceConfig
	Auction  AuctionConfig
	CORS     CORSConfig
	Log      LogConfig
	Token    TokenConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type NATSConfig struct {
	URL string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
}

type CommerceConfig struct {
	BaseURL       string        `envconfig:"COMMERCE_BASE_URL" required:"true"`
	APIToken      string        `envconfig:"COMMERCE_API_TOKEN" required:"true"`
	Timeout       time.Duration `envconfig:"COMMERCE_TIMEOUT" default:"15s"`
	RatePerSec    int           `envconfig:"COMMERCE_RATE_PER_SEC" default:"2"`
	StorefrontURL string        `envconfig:"COMMERCE_STOREFRONT_URL" required:"true"`
}

type AuctionConfig struct {
	ClaimWindow   time.Duration `envconfig:"AUCTION_CLAIM_WINDOW" default:"30m"`
	TickInterval  time.Duration `envconfig:"AUCTION_TICK_INTERVAL" default:"5s"`
	BidRetries    int           `envconfig:"AUCTION_BID_RETRIES" default:"1"`
	BidRatePerSec float64       `envconfig:"AUCTION_BID_RATE_PER_SEC" default:"5"`
	BidRateBurst  int           `envconfig:"AUCTION_BID_RATE_BURST" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Admin-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type TokenConfig struct {
	Secret string        `envconfig:"LISTING_TOKEN_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"LISTING_TOKEN_TTL" default:"72h"`
}

type AdminConfig struct {
	APIToken string `envconfig:"ADMIN_API_TOKEN" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Commerce: CommerceConfig{
			BaseURL:       "http://localhost:18080",
			APIToken:      "test-token",
			Timeout:       time.Second,
			RatePerSec:    100,
			StorefrontURL: "http://localhost:18081",
		},
		Auction: AuctionConfig{
			ClaimWindow:   30 * time.Minute,
			TickInterval:  5 * time.Second,
			BidRetries:    1,
			BidRatePerSec: 100,
			BidRateBurst:  100,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Token: TokenConfig{
			Secret: "test-secret",
			TTL:    time.Hour,
		},
		Admin: AdminConfig{
			APIToken: "test-admin-token",
		},
	}
}
