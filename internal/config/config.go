package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// LogConfig controls the global slog logger.
type LogConfig struct {
	Level     string `envconfig:"LOG_LEVEL" default:"info"`
	Format    string `envconfig:"LOG_FORMAT" default:"text"`
	Component string `envconfig:"LOG_COMPONENT" default:"grpc_server"`
	Source    bool   `envconfig:"LOG_SOURCE" default:"false"`
}

// DBConfig selects the relational store. Driver is one of mysql, postgres or sqlite.
// When DSN is empty it is assembled from the individual parts.
type DBConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"mysql"`
	DSN      string `envconfig:"DB_DSN"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"3306"`
	User     string `envconfig:"DB_USER" default:"root"`
	Password string `envconfig:"DB_PASSWORD" default:"root"`
	Name     string `envconfig:"DB_NAME" default:"matchcore"`
	LogSQL   bool   `envconfig:"DB_LOG_SQL" default:"false"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type GRPCConfig struct {
	Host           string        `envconfig:"GRPC_HOST" default:"127.0.0.1"`
	Port           string        `envconfig:"GRPC_PORT" default:"50051"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`
}

type MetricsConfig struct {
	Addr string `envconfig:"METRICS_ADDR" default:":9102"`
}

type SentryConfig struct {
	DSN         string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
}

// RateLimitConfig holds the budgets of every abuse class.
type RateLimitConfig struct {
	GlobalMax     int           `envconfig:"RATE_GLOBAL_MAX" default:"100"`
	GlobalWindow  time.Duration `envconfig:"RATE_GLOBAL_WINDOW" default:"15m"`
	AuthMax       int           `envconfig:"RATE_AUTH_MAX" default:"5"`
	AuthWindow    time.Duration `envconfig:"RATE_AUTH_WINDOW" default:"15m"`
	SwipeMax      int           `envconfig:"RATE_SWIPE_MAX" default:"100"`
	SwipeWindow   time.Duration `envconfig:"RATE_SWIPE_WINDOW" default:"1h"`
	MessageMax    int           `envconfig:"RATE_MESSAGE_MAX" default:"30"`
	MessageWindow time.Duration `envconfig:"RATE_MESSAGE_WINDOW" default:"1m"`
	UploadMax     int           `envconfig:"RATE_UPLOAD_MAX" default:"10"`
	UploadWindow  time.Duration `envconfig:"RATE_UPLOAD_WINDOW" default:"1h"`
}

type PhotoConfig struct {
	MaxPerUser   int   `envconfig:"PHOTO_MAX_PER_USER" default:"6"`
	MaxSizeBytes int64 `envconfig:"PHOTO_MAX_SIZE_BYTES" default:"10485760"`
}

type Config struct {
	App struct {
		ENV string `envconfig:"APP_ENV" default:"development"`
	}

	Log       LogConfig
	DB        DBConfig
	Redis     RedisConfig
	GRPC      GRPCConfig
	Metrics   MetricsConfig
	Sentry    SentryConfig
	RateLimit RateLimitConfig
	Photos    PhotoConfig
}

// New loads configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in defaults without reading the environment.
func Default() *Config {
	cfg := &Config{}
	cfg.App.ENV = "development"
	cfg.Log = LogConfig{Level: "info", Format: "text", Component: "grpc_server"}
	cfg.DB = DBConfig{Driver: "sqlite", DSN: "file::memory:?cache=shared"}
	cfg.Redis = RedisConfig{Addr: "localhost:6379"}
	cfg.GRPC = GRPCConfig{Host: "127.0.0.1", Port: "50051", RequestTimeout: 5 * time.Second}
	cfg.Metrics = MetricsConfig{Addr: ":9102"}
	cfg.Sentry = SentryConfig{Environment: "development"}
	cfg.RateLimit = RateLimitConfig{
		GlobalMax: 100, GlobalWindow: 15 * time.Minute,
		AuthMax: 5, AuthWindow: 15 * time.Minute,
		SwipeMax: 100, SwipeWindow: time.Hour,
		MessageMax: 30, MessageWindow: time.Minute,
		UploadMax: 10, UploadWindow: time.Hour,
	}
	cfg.Photos = PhotoConfig{MaxPerUser: 6, MaxSizeBytes: 10 << 20}
	return cfg
}

func (c *Config) resolve() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	if c.DB.DSN != "" {
		return nil
	}
	switch c.DB.Driver {
	case "mysql":
		c.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name,
		)
	case "postgres":
		c.DB.DSN = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name,
		)
	case "sqlite":
		c.DB.DSN = c.DB.Name + ".db"
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DB.Driver)
	}
	return nil
}

// GRPCAddr returns host:port for the gRPC listener.
func (c *Config) GRPCAddr() string {
	return c.GRPC.Host + ":" + c.GRPC.Port
}

func (c *Config) IsDevelopment() bool {
	return c.App.ENV == "development"
}
