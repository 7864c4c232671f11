// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, platform credentials, upstream limits and logging

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"twitch-vod-rss/core/domain"
)

// DefaultEnvFile is loaded when ENV_FILE is unset; a missing file is ignored
const DefaultEnvFile = ".env"

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Twitch contains platform credentials and endpoints
	Twitch TwitchConfig

	// Upstream contains outbound HTTP settings
	Upstream UpstreamConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// TwitchConfig holds the credential pair and API locations
type TwitchConfig struct {
	ClientID     string
	ClientSecret string

	// AuthURL is the OAuth2 token endpoint
	AuthURL string

	// HelixURL is the REST API base
	HelixURL string

	// VideoPageSize is the number of videos requested per feed
	VideoPageSize int
}

// UpstreamConfig holds outbound HTTP configuration
type UpstreamConfig struct {
	// RateLimit is the sustained outbound requests per second
	RateLimit float64

	// RateBurst is the number of requests allowed above the sustained rate
	RateBurst int

	// Timeout bounds a single outbound request
	Timeout time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Backend is logrus or zap
	Backend string

	// Level is debug, info, warn or error
	Level string

	// Format is text or json
	Format string

	// File enables rotated file output when set
	File string
}

// Credentials returns the configured credential pair
func (c *Config) Credentials() domain.Credentials {
	return domain.Credentials{
		ClientID:     c.Twitch.ClientID,
		ClientSecret: c.Twitch.ClientSecret,
	}
}

// LoadFromEnv loads configuration from environment variables, after
// merging the dotenv file named by ENV_FILE. Variables already set in the
// environment win over the file.
func LoadFromEnv() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Twitch: TwitchConfig{
			ClientID:      os.Getenv("TWITCH_CLIENT_ID"),
			ClientSecret:  os.Getenv("TWITCH_CLIENT_SECRET"),
			AuthURL:       getEnvOrDefault("TWITCH_AUTH_URL", "https://id.twitch.tv/oauth2/token"),
			HelixURL:      getEnvOrDefault("TWITCH_HELIX_URL", "https://api.twitch.tv/helix"),
			VideoPageSize: getEnvAsIntOrDefault("TWITCH_VIDEO_PAGE_SIZE", 20),
		},
		Upstream: UpstreamConfig{
			RateLimit: getEnvAsFloatOrDefault("UPSTREAM_RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("UPSTREAM_RATE_BURST", 20),
			Timeout:   time.Duration(getEnvAsIntOrDefault("HTTP_CLIENT_TIMEOUT", 30)) * time.Second,
		},
		Log: LogConfig{
			Backend: getEnvOrDefault("LOG_BACKEND", "logrus"),
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
			Format:  getEnvOrDefault("LOG_FORMAT", "text"),
			File:    os.Getenv("LOG_FILE"),
		},
	}

	return cfg, nil
}

func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading env file %s: %w", path, err)
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
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Twitch.ClientID == "" || c.Twitch.ClientSecret == "" {
		return errors.New("TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET are required")
	}

	if c.Twitch.AuthURL == "" || c.Twitch.HelixURL == "" {
		return errors.New("twitch endpoints cannot be empty")
	}

	if c.Twitch.VideoPageSize < 1 || c.Twitch.VideoPageSize > 100 {
		return errors.New("video page size must be between 1 and 100")
	}

	if c.Upstream.RateLimit <= 0 {
		return errors.New("upstream rate limit must be positive")
	}

	if c.Upstream.RateBurst < 1 {
		return errors.New("upstream rate burst must be at least 1")
	}

	if c.Upstream.Timeout < time.Second {
		return errors.New("http client timeout must be at least 1 second")
	}

	if c.Log.Backend != "logrus" && c.Log.Backend != "zap" {
		return errors.New("log backend must be 'logrus' or 'zap'")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
