package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL        = "http://localhost:8000/api"
	DefaultTimeoutSeconds = 15
	DefaultMaxDistance    = 10.0
)

// Config represents the client configuration
type Config struct {
	API         APIConfig         `yaml:"api"`
	Store       StoreConfig       `yaml:"store"`
	Log         LogConfig         `yaml:"log"`
	Marketplace MarketplaceConfig `yaml:"marketplace"`
}

// APIConfig contains backend connection settings
type APIConfig struct {
	BaseURL        string  `yaml:"base_url"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	RatePerSecond  float64 `yaml:"rate_per_second"` // 0 disables client-side throttling
	Burst          int     `yaml:"burst"`
}

// StoreConfig contains client-side credential storage settings
type StoreConfig struct {
	Type string `yaml:"type"` // "sqlite" or "memory"
	Path string `yaml:"path"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// MarketplaceConfig contains browse defaults
type MarketplaceConfig struct {
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	MaxDistance float64 `yaml:"max_distance"`
}

// Load reads configuration from a YAML file. A missing file is not an error:
// defaults plus environment overrides are used instead.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// API
	if val := os.Getenv("RENTALS_API_URL"); val != "" {
		c.API.BaseURL = val
	}
	if val := os.Getenv("RENTALS_API_TIMEOUT"); val != "" {
		fmt.Sscanf(val, "%d", &c.API.TimeoutSeconds)
	}
	if val := os.Getenv("RENTALS_API_RATE"); val != "" {
		fmt.Sscanf(val, "%g", &c.API.RatePerSecond)
	}

	// Store
	if val := os.Getenv("RENTALS_STORE_TYPE"); val != "" {
		c.Store.Type = val
	}
	if val := os.Getenv("RENTALS_STORE_PATH"); val != "" {
		c.Store.Path = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills defaults
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid API timeout: %d", c.API.TimeoutSeconds)
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.API.RatePerSecond < 0 {
		return fmt.Errorf("invalid API rate: %g", c.API.RatePerSecond)
	}
	if c.API.Burst <= 0 {
		c.API.Burst = 1
	}

	switch c.Store.Type {
	case "":
		c.Store.Type = "sqlite"
	case "sqlite", "memory":
	default:
		return fmt.Errorf("unsupported store type: %s", c.Store.Type)
	}
	if c.Store.Type == "sqlite" && c.Store.Path == "" {
		c.Store.Path = defaultStorePath()
	}

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Marketplace.MaxDistance < 0 {
		return fmt.Errorf("invalid max distance: %g", c.Marketplace.MaxDistance)
	}
	if c.Marketplace.MaxDistance == 0 {
		c.Marketplace.MaxDistance = DefaultMaxDistance
	}

	return nil
}

// Timeout returns the HTTP client timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rentctl.db"
	}
	return filepath.Join(dir, "rentctl", "session.db")
}

// DefaultPath is where the CLI looks for its config file
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "rentctl", "config.yaml")
}
