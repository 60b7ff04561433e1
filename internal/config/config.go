// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/janime/gojanime/internal/constants"
)

// Default configuration file name
const defaultConfigFile = "config.json"

// Config holds the application configuration.
// It supports loading from environment variables and JSON files.
type Config struct {
	// TMDB API key used for metadata lookups
	TMDBAPIKey string `json:"TMDB_API_KEY"`

	// Upstream endpoints
	AniwatchAPIURL  string `json:"ANIWATCH_API_URL"`
	ExtractorAPIURL string `json:"EXTRACTOR_API_URL"`

	// Extractor selects which extraction response shape this deployment
	// speaks: "hls" or "megacloud".
	Extractor string `json:"EXTRACTOR"`

	// Port for the HTTP server
	Port string `json:"PORT"`
}

// Load reads configuration from environment variables and optional JSON file.
// Environment variables take precedence over file values.
// Returns an error if the configuration is invalid.
func Load() (*Config, error) {
	cfg := &Config{
		AniwatchAPIURL:  constants.DefaultAniwatchAPIURL,
		ExtractorAPIURL: constants.DefaultExtractorAPIURL,
		Extractor:       constants.ExtractorMegaCloud,
		Port:            constants.DefaultPort,
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

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() {
	if tmdbKey := os.Getenv("TMDB_API_KEY"); tmdbKey != "" {
		c.TMDBAPIKey = tmdbKey
	}

	if aniwatchURL := os.Getenv("ANIWATCH_API_URL"); aniwatchURL != "" {
		c.AniwatchAPIURL = aniwatchURL
	}

	if extractorURL := os.Getenv("EXTRACTOR_API_URL"); extractorURL != "" {
		c.ExtractorAPIURL = extractorURL
	}

	if extractor := os.Getenv("EXTRACTOR"); extractor != "" {
		c.Extractor = extractor
	}

	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
}

// loadFromFile loads configuration from a JSON file.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}

	switch c.Extractor {
	case constants.ExtractorHLS, constants.ExtractorMegaCloud:
	default:
		return fmt.Errorf("unknown EXTRACTOR %q (expected %q or %q)",
			c.Extractor, constants.ExtractorHLS, constants.ExtractorMegaCloud)
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
