package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

const (
	MediaSourceFS = "fs"
	MediaSourceS3 = "s3"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"3000"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`

	// Media catalog settings
	Media MediaConfig

	// Storage configuration (S3-compatible media bucket)
	Storage StorageConfig

	// OpenTelemetry tracing
	Otel OtelConfig

	// Quote form settings
	Quote QuoteConfig

	// API rate limiting
	RateLimit RateLimitConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// MediaConfig controls where gallery and video assets come from
type MediaConfig struct {
	// Source is "fs" (local directory) or "s3" (bucket from StorageConfig)
	Source string `env:"MEDIA_SOURCE" envDefault:"fs"`
	// Root is the media directory for the fs source
	Root string `env:"MEDIA_ROOT" envDefault:"./media"`
	// URLPrefix is the path the fs source is served under
	URLPrefix string `env:"MEDIA_URL_PREFIX" envDefault:"/media"`
	// Concurrency bounds parallel asset resolution per catalog load
	Concurrency int `env:"MEDIA_RESOLVE_CONCURRENCY" envDefault:"8"`
	// VideoKeys is the number of numbered video folders (1..N) to look for
	VideoKeys int `env:"MEDIA_VIDEO_KEYS" envDefault:"10"`
	// FoldHeight is the assumed viewport height, in px, for first render
	FoldHeight int `env:"MEDIA_FOLD_HEIGHT" envDefault:"800"`
}

// UseS3 returns true when assets are listed from the storage bucket
func (m *MediaConfig) UseS3() bool {
	return m.Source == MediaSourceS3
}

// StorageConfig holds S3-compatible storage configuration
type StorageConfig struct {
	// Endpoint is the S3/MinIO endpoint URL
	Endpoint string `env:"STORAGE_ENDPOINT" envDefault:""`
	// AccessKey is the access key ID
	AccessKey string `env:"STORAGE_ACCESS_KEY" envDefault:""`
	// SecretKey is the secret access key
	SecretKey string `env:"STORAGE_SECRET_KEY" envDefault:""`
	// Region is the bucket region
	Region string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	// Bucket holds the media objects
	Bucket string `env:"STORAGE_BUCKET" envDefault:"zcmetal-media"`
	// Prefix is prepended to every media key, e.g. "assets/"
	Prefix string `env:"STORAGE_PREFIX" envDefault:""`
	// URLExpiry is the lifetime of presigned asset URLs
	URLExpiry time.Duration `env:"STORAGE_URL_EXPIRY" envDefault:"1h"`
}

// IsConfigured returns true if storage is configured
func (s *StorageConfig) IsConfigured() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != ""
}

// QuoteConfig holds the quote request form settings
type QuoteConfig struct {
	// Action is the external endpoint the form posts to
	Action string `env:"QUOTE_FORM_ACTION" envDefault:"https://formspree.io/f/xnqkvpyl"`
}

// RateLimitConfig throttles the JSON catalog API per client IP
type RateLimitConfig struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Rate    float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	Burst   int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	// IdleTTL is how long an idle client's limiter is kept
	IdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`
}

// Validate checks combinations env parsing cannot express
func (c *Config) Validate() error {
	switch c.Media.Source {
	case MediaSourceFS:
		if c.Media.Root == "" {
			return fmt.Errorf("MEDIA_ROOT is required for the fs media source")
		}
	case MediaSourceS3:
		if !c.Storage.IsConfigured() {
			return fmt.Errorf("STORAGE_ENDPOINT, STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required for the s3 media source")
		}
	default:
		return fmt.Errorf("MEDIA_SOURCE %q: want %q or %q", c.Media.Source, MediaSourceFS, MediaSourceS3)
	}
	if c.Media.Concurrency < 1 {
		return fmt.Errorf("MEDIA_RESOLVE_CONCURRENCY must be at least 1")
	}
	if c.Media.VideoKeys < 0 {
		return fmt.Errorf("MEDIA_VIDEO_KEYS must not be negative")
	}
	if c.Media.FoldHeight <= 0 {
		return fmt.Errorf("MEDIA_FOLD_HEIGHT must be positive")
	}
	return nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("media_source", cfg.Media.Source),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}
