// Package polygon provides the price client for profit calculations.
package polygon

import (
	"os"
	"time"
)

// Config holds configuration for the Polygon price client. The profit
// endpoints run on a separate key so that heavy series traffic on the
// primary one cannot starve them.
type Config struct {
	APIKey  string        // API key sent as a Bearer token
	BaseURL string        // Base URL for the API (e.g. "https://api.polygon.io")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads price client configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("POLYGON_BASE_URL")
	if base == "" {
		base = "https://api.polygon.io"
	}
	return Config{
		APIKey:  os.Getenv("POLYGON_API_KEY_2"),
		BaseURL: base,
		Timeout: 30 * time.Second,
	}
}
