package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Pipeline  PipelineConfig
	Storage   StorageConfig
	S3        S3Config
	Cleanup   CleanupConfig
	CORS      CORSConfig
	Redis     RedisConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"5m"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type GeminiConfig struct {
	APIKey         string        `envconfig:"GEMINI_API_KEY"`
	BaseURL        string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model          string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash-image"`
	MaxAttempts    int           `envconfig:"GEMINI_MAX_ATTEMPTS" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"GEMINI_RETRY_BASE_DELAY" default:"1s"`
	HTTPTimeout    time.Duration `envconfig:"GEMINI_HTTP_TIMEOUT" default:"2m"`
}

type PipelineConfig struct {
	MaxFileSize       int64         `envconfig:"MAX_FILE_SIZE" default:"20971520"`
	MaxImageDimension int           `envconfig:"MAX_IMAGE_DIMENSION" default:"4096"`
	PreviewMaxWidth   int           `envconfig:"PREVIEW_MAX_WIDTH" default:"800"`
	KeepPNG           bool          `envconfig:"OUTPUT_KEEP_PNG" default:"true"`
	ProcessTimeout    time.Duration `envconfig:"PROCESS_TIMEOUT" default:"3m"`
}

type StorageConfig struct {
	Driver       string `envconfig:"STORAGE_DRIVER" default:"local"`
	UploadsDir   string `envconfig:"UPLOADS_DIR" default:"./uploads"`
	ProcessedDir string `envconfig:"PROCESSED_DIR" default:"./processed"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	UploadsPrefix   string `envconfig:"S3_UPLOADS_PREFIX" default:"uploads/"`
	ProcessedPrefix string `envconfig:"S3_PROCESSED_PREFIX" default:"processed/"`
}

type CleanupConfig struct {
	MaxAge    time.Duration `envconfig:"CLEANUP_MAX_AGE" default:"1h"`
	Interval  time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h"`
	OnStartup bool          `envconfig:"CLEANUP_ON_STARTUP" default:"true"`
}

type CORSConfig struct {
	FrontendURLs []string `envconfig:"FRONTEND_URL"`
}

// AllowedOrigins returns the configured frontend origins followed by the
// local development servers.
func (c CORSConfig) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.FrontendURLs)+3)
	for _, u := range c.FrontendURLs {
		if u = strings.TrimSpace(u); u != "" {
			origins = append(origins, u)
		}
	}
	return append(origins,
		"http://localhost:5173",
		"http://localhost:4173",
		"http://127.0.0.1:5173",
	)
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int           `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
	Window         time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverLocal:
		if c.Storage.UploadsDir == "" || c.Storage.ProcessedDir == "" {
			return errors.New("UPLOADS_DIR and PROCESSED_DIR are required for the local storage driver")
		}
	case StorageDriverS3:
		if c.S3.Bucket == "" {
			return errors.New("S3_BUCKET is required for the s3 storage driver")
		}
		if c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "" {
			return errors.New("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required for the s3 storage driver")
		}
		if c.S3.UploadsPrefix == c.S3.ProcessedPrefix {
			return errors.New("S3_UPLOADS_PREFIX and S3_PROCESSED_PREFIX must differ")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Pipeline.MaxFileSize <= 0 {
		return errors.New("MAX_FILE_SIZE must be positive")
	}
	if c.Pipeline.MaxImageDimension <= 0 {
		return errors.New("MAX_IMAGE_DIMENSION must be positive")
	}
	if c.Gemini.MaxAttempts < 1 {
		return errors.New("GEMINI_MAX_ATTEMPTS must be at least 1")
	}
	if c.Cleanup.Interval <= 0 {
		return errors.New("CLEANUP_INTERVAL must be positive")
	}
	return nil
}
