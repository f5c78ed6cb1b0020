// Package alphavantage provides a client for the Alpha Vantage earnings
// estimates API.
package alphavantage

import (
	"os"
	"time"
)

// Config holds configuration for the Alpha Vantage API client.
type Config struct {
	APIKey  string        // API key passed as the apikey query parameter
	BaseURL string        // Base URL for the API (e.g. "https://www.alphavantage.co")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Alpha Vantage configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("ALPHAVANTAGE_BASE_URL")
	if base == "" {
		base = "https://www.alphavantage.co"
	}
	return Config{
		APIKey:  os.Getenv("ALPHAVANTAGE_API_KEY"),
		BaseURL: base,
		Timeout: 30 * time.Second,
	}
}
