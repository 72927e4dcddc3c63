// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/SAbotsup/hindi-mapper/internal/constants"
)

const defaultConfigFile = "config.json"

// Config holds the application configuration.
// It supports loading from environment variables and JSON files.
type Config struct {
	Port     string `json:"PORT"`
	LogLevel string `json:"LOG_LEVEL"`

	// Remote services; overridable mainly for tests.
	AniListURL string `json:"ANILIST_URL"`
	SatoruURL  string `json:"SATORU_URL"`

	// Matching policy. The threshold separates confident matches from
	// best-effort fallbacks; it is policy, not a hard correctness boundary.
	SimilarityThreshold float64 `json:"SIMILARITY_THRESHOLD"`

	// Storage settings
	DatabasePath string        `json:"DATABASE_PATH"`
	CacheSize    int           `json:"CACHE_SIZE"`
	CacheTTL     time.Duration `json:"CACHE_TTL"`

	// RequestTimeout bounds one full mapper request.
	RequestTimeout time.Duration `json:"REQUEST_TIMEOUT"`
}

// Load reads configuration from environment variables and optional JSON file.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                constants.DefaultPort,
		LogLevel:            constants.DefaultLogLevel,
		AniListURL:          constants.AniListAPIURL,
		SatoruURL:           constants.SatoruBaseURL,
		SimilarityThreshold: constants.DefaultSimilarityThreshold,
		DatabasePath:        "",
		CacheSize:           constants.DefaultCacheSize,
		CacheTTL:            time.Duration(constants.DefaultCacheTTL) * time.Hour,
		RequestTimeout:      constants.DefaultRequestTimeout,
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		c.DatabasePath = dbPath
	}
	if anilist := os.Getenv("ANILIST_URL"); anilist != "" {
		c.AniListURL = anilist
	}
	if satoru := os.Getenv("SATORU_URL"); satoru != "" {
		c.SatoruURL = satoru
	}
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Validate checks the configuration and fills defaults for missing optional
// fields.
func (c *Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be within [0, 1], got %v", c.SimilarityThreshold)
	}
	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Duration(constants.DefaultCacheTTL) * time.Hour
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = constants.DefaultRequestTimeout
	}
	if c.AniListURL == "" {
		c.AniListURL = constants.AniListAPIURL
	}
	if c.SatoruURL == "" {
		c.SatoruURL = constants.SatoruBaseURL
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
