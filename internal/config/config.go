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

const (
	defaultAddr            = ":8080"
	defaultAppName         = "Financeiro"
	defaultLogFormat       = "text"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
	defaultRateLimit       = 20
)

// Config holds all configuration for the application.
type Config struct {
	Addr            string        `validate:"required"`
	AppName         string        `validate:"required"`
	LogFormat       string        `validate:"oneof=text json"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	// RateLimit is the number of requests per second allowed per client IP. Zero disables limiting.
	RateLimit float64 `validate:"gte=0"`
}

// Load reads configuration from the environment, after loading a .env file if one exists.
// Variables already set in the environment take precedence over the .env file.
func Load() (*Config, error) {
	// A missing .env file is fine; we rely on the environment in that case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:      getEnv("SERVER_ADDR", defaultAddr),
		AppName:   getEnv("APP_NAME", defaultAppName),
		LogFormat: getEnv("LOG_FORMAT", defaultLogFormat),
		LogLevel:  getEnv("LOG_LEVEL", defaultLogLevel),
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	limit, err := strconv.ParseFloat(getEnv("RATE_LIMIT", strconv.Itoa(defaultRateLimit)), 64)
	if err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT: %w", err)
	}
	cfg.RateLimit = limit

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
