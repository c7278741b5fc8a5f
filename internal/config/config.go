package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Data  DataConfig
	Sheet SheetConfig
	Sync  SyncConfig
	JWT   JWTConfig
	Piket PiketConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// DataConfig locates the on-disk key-value store.
type DataConfig struct {
	Dir string
}

// SheetConfig describes the remote spreadsheet endpoint.
type SheetConfig struct {
	URL     string
	Timeout time.Duration
	Enabled bool
}

// SyncConfig drives the poll loop and the request cache.
type SyncConfig struct {
	Interval time.Duration
	Debounce time.Duration
	CacheTTL time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// PiketConfig carries class-level settings used for QR validation.
type PiketConfig struct {
	ClassCode string
}

func Load() (*Config, error) {
	// A missing .env is fine; environment variables take over.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.Data = DataConfig{
		Dir: getEnv("DATA_DIR", "./data"),
	}

	sheetTimeout, err := time.ParseDuration(getEnv("SHEET_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHEET_TIMEOUT: %w", err)
	}

	config.Sheet = SheetConfig{
		URL:     getEnv("SHEET_API_URL", ""),
		Timeout: sheetTimeout,
		Enabled: getEnv("SHEET_SYNC_ENABLED", "true") == "true",
	}

	syncInterval, err := time.ParseDuration(getEnv("SYNC_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_INTERVAL: %w", err)
	}

	syncDebounce, err := time.ParseDuration(getEnv("SYNC_DEBOUNCE", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_DEBOUNCE: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	config.Sync = SyncConfig{
		Interval: syncInterval,
		Debounce: syncDebounce,
		CacheTTL: cacheTTL,
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Piket = PiketConfig{
		ClassCode: getEnv("PIKET_CLASS_CODE", "XE8"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Sheet.Enabled && c.Sheet.URL == "" {
		return fmt.Errorf("SHEET_API_URL is required when sheet sync is enabled")
	}
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
