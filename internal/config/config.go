package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// AppConfig configures the weather relay service.
type AppConfig struct {
	Port string `validate:"required,numeric"`

	// UpstreamBaseURL is the root of the forecast feed; the city path is appended.
	UpstreamBaseURL string `validate:"required,url"`
	CityID          string `validate:"required,numeric"`

	// HTTPTimeout bounds each outbound forecast request.
	HTTPTimeout time.Duration `validate:"gt=0"`

	LogLevel string `validate:"oneof=debug info warn error"`

	// Circuit breaker around the upstream feed.
	BreakerMaxFailures int           `validate:"gte=1"`
	BreakerOpenTimeout time.Duration `validate:"gt=0"`
}

// DisplayConfig configures the polling display client.
type DisplayConfig struct {
	RelayURL     string        `validate:"required,url"`
	PollInterval time.Duration `validate:"gt=0"`
	HTTPTimeout  time.Duration `validate:"gt=0"`
	LogLevel     string        `validate:"oneof=debug info warn error"`

	ImagePath string // optional PNG output; empty disables the image renderer
	FontPath  string // optional TTF used by the image renderer
}

// Load reads relay configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg := &AppConfig{
		Port:            getenvDefault("PORT", "3001"),
		UpstreamBaseURL: getenvDefault("UPSTREAM_BASE_URL", "https://weather.tsukumijima.net"),
		CityID:          getenvDefault("CITY_ID", "130010"), // Tokyo
		LogLevel:        getenvDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.BreakerOpenTimeout, err = getenvDuration("BREAKER_OPEN_TIMEOUT", "1m"); err != nil {
		return nil, err
	}
	cfg.BreakerMaxFailures = getenvInt("BREAKER_MAX_FAILURES", 5)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid relay config: %w", err)
	}
	return cfg, nil
}

// LoadDisplay reads display client configuration from environment.
func LoadDisplay() (*DisplayConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg := &DisplayConfig{
		RelayURL:  getenvDefault("RELAY_URL", "http://localhost:3001"),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		ImagePath: os.Getenv("DISPLAY_IMAGE_PATH"),
		FontPath:  os.Getenv("DISPLAY_FONT_PATH"),
	}

	var err error
	if cfg.PollInterval, err = getenvDuration("POLL_INTERVAL", "1m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid display config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads .env when present. A missing file is not an error.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
