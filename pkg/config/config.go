// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, upstream client, and stream collection

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Upstream contains configuration for outbound requests
	Upstream UpstreamConfig

	// Stream contains page collection limits
	Stream StreamConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel is the minimum log level (debug/info/warn/error)
	LogLevel string

	// RateLimitRPS is the allowed requests per second per client IP.
	// Zero disables rate limiting.
	RateLimitRPS float64

	// RateLimitBurst is the burst size for the per-IP limiter
	RateLimitBurst int
}

// UpstreamConfig holds configuration for outbound requests
type UpstreamConfig struct {
	// Timeout is the per-request timeout for upstream calls
	Timeout time.Duration
}

// StreamConfig holds page collection limits
type StreamConfig struct {
	// MinItems is the item count at which collection stops
	MinItems int

	// MaxPages is the number of extra pages fetched beyond the first
	MaxPages int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
			RateLimitRPS:   getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 5),
			RateLimitBurst: getEnvAsIntOrDefault("RATE_LIMIT_BURST", 10),
		},
		Upstream: UpstreamConfig{
			Timeout: time.Duration(getEnvAsIntOrDefault("UPSTREAM_TIMEOUT", 30)) * time.Second,
		},
		Stream: StreamConfig{
			MinItems: getEnvAsIntOrDefault("STREAM_MIN_ITEMS", 20),
			MaxPages: getEnvAsIntOrDefault("STREAM_MAX_PAGES", 3),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimitRPS < 0 {
		return errors.New("rate limit rps cannot be negative")
	}

	if c.Upstream.Timeout < time.Second {
		return errors.New("upstream timeout must be at least 1 second")
	}

	if c.Stream.MinItems < 1 {
		return errors.New("stream min items must be at least 1")
	}

	if c.Stream.MaxPages < 0 {
		return errors.New("stream max pages cannot be negative")
	}

	return nil
}
