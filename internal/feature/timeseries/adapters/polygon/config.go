// Package polygon provides a client for the Polygon aggregates API.
package polygon

import (
	"os"
	"time"
)

// Config holds configuration for the Polygon API client.
type Config struct {
	APIKey  string        // API key sent as a Bearer token
	BaseURL string        // Base URL for the API (e.g. "https://api.polygon.io")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Polygon configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("POLYGON_BASE_URL")
	if base == "" {
		base = "https://api.polygon.io"
	}
	return Config{
		APIKey:  os.Getenv("POLYGON_API_KEY"),
		BaseURL: base,
		Timeout: 30 * time.Second,
	}
}
