package config

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
)

const (
	defaultEnv      = "development"
	defaultAddr     = ":8080"
	defaultLogLevel = "warn"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env       string
	LogLevel  string
	LogFormat string
	Addr      string
	APIToken  string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: production injects the environment directly.
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("warning: %v", err)
	}

	cfg := Config{
		Env:       getEnv("APP_ENV", defaultEnv),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		LogFormat: strings.ToLower(os.Getenv("LOG_FORMAT")),
		Addr:      getEnv("CLT_ADDR", defaultAddr),
		APIToken:  os.Getenv("CLT_API_TOKEN"),
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
		if cfg.IsDev() {
			cfg.LogFormat = "console"
		}
	}

	return cfg
}

// IsDev reports whether the application runs in a development environment.
func (c Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Validate rejects values the logger or server cannot use.
func (c Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("LOG_FORMAT must be one of %s, got %q", strings.Join(logFormats, ", "), c.LogFormat)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("CLT_ADDR must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

