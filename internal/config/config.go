// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment variable names read by FromEnv.
const (
	EnvAPIKey     = "JOBSCOUT_API_KEY"
	EnvListingURL = "JOBSCOUT_LISTING_URL"
	EnvScrapeURL  = "JOBSCOUT_SCRAPE_URL"
	EnvUserAgent  = "JOBSCOUT_USER_AGENT"
	EnvTimeout    = "JOBSCOUT_TIMEOUT"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultListingURL = "https://api.itjobs.pt/job/list.json"
	DefaultScrapeURL  = "https://www.ambitionbox.com"
	DefaultUserAgent  = "Mozilla/5.0"
	DefaultTimeout    = 30 * time.Second
)

// Config carries everything the clients need. It is built once in the
// command layer and passed explicitly; there is no package-level endpoint
// state anywhere in the codebase.
type Config struct {
	// APIKey authenticates requests to the listing resource.
	APIKey string `validate:"required"`

	// ListingURL is the paginated listing endpoint.
	ListingURL string `validate:"required,url"`

	// ScrapeURL is the base URL of the company/skills scrape target.
	ScrapeURL string `validate:"required,url"`

	// UserAgent is sent on every outbound request.
	UserAgent string `validate:"required"`

	// Timeout bounds each individual HTTP request.
	Timeout time.Duration `validate:"gt=0"`

	// UseBrowser renders scrape targets in a headless browser instead of
	// plain HTTP, for pages that only populate via JavaScript.
	UseBrowser bool
}

// FromEnv builds a Config from the environment, applying defaults for
// everything except the API key.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:     os.Getenv(EnvAPIKey),
		ListingURL: envOr(EnvListingURL, DefaultListingURL),
		ScrapeURL:  envOr(EnvScrapeURL, DefaultScrapeURL),
		UserAgent:  envOr(EnvUserAgent, DefaultUserAgent),
		Timeout:    DefaultTimeout,
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, raw, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if c.APIKey == "" {
			return fmt.Errorf("config error: %s is not set (export it or add it to .env): %w", EnvAPIKey, err)
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
