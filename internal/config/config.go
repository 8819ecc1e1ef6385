package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultUpstreamTracksURL is the musicfun endpoint that lists playlist tracks.
const DefaultUpstreamTracksURL = "https://musicfun.it-incubator.app/api/playlists/tracks"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Upstream catalog configuration
	Upstream UpstreamConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int
	Host            string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for net/http.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// UpstreamConfig holds settings for the third-party tracks API
type UpstreamConfig struct {
	TracksURL string
	Timeout   time.Duration
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from environment variables. Values from
// config/local.env are used for anything the environment does not set.
func Load() (*Config, error) {
	_ = godotenv.Load("config/local.env")

	cfg := &Config{}

	if err := cfg.loadServer(); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}

	if err := cfg.loadUpstream(); err != nil {
		return nil, fmt.Errorf("load upstream config: %w", err)
	}

	cfg.loadCORS()
	cfg.loadLogging()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadServer() error {
	portStr := getEnvOrDefault("PORT", "3001")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = os.Getenv("HOST")

	timeout, err := time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "15s"))
	if err != nil {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	c.Server.ShutdownTimeout = timeout
	return nil
}

func (c *Config) loadUpstream() error {
	c.Upstream.TracksURL = strings.TrimSpace(getEnvOrDefault("UPSTREAM_TRACKS_URL", DefaultUpstreamTracksURL))

	timeout, err := time.ParseDuration(getEnvOrDefault("UPSTREAM_TIMEOUT", "5s"))
	if err != nil {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	c.Upstream.Timeout = timeout
	return nil
}

func (c *Config) loadCORS() {
	c.CORS.AllowedOrigins = parseList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"))
}

func (c *Config) loadLogging() {
	c.Logging.Level = strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	c.Logging.Format = strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json"))
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errors = append(errors, "SHUTDOWN_TIMEOUT must be positive")
	}

	if !strings.HasPrefix(c.Upstream.TracksURL, "http://") && !strings.HasPrefix(c.Upstream.TracksURL, "https://") {
		errors = append(errors, "UPSTREAM_TRACKS_URL must be an http(s) URL")
	}
	if c.Upstream.Timeout <= 0 {
		errors = append(errors, "UPSTREAM_TIMEOUT must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
