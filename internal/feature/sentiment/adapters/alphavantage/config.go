// Package alphavantage provides a client for the Alpha Vantage news
// sentiment API.
package alphavantage

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the Alpha Vantage news client.
type Config struct {
	APIKey  string        // API key passed as the apikey query parameter
	BaseURL string        // Base URL for the API (e.g. "https://www.alphavantage.co")
	Timeout time.Duration // HTTP request timeout
	CallGap time.Duration // Minimum spacing between successive calls
}

// LoadConfig loads news client configuration from environment variables.
// AV_SECONDS_BETWEEN_CALLS tunes the spacing of the per-ticker loop; the
// default stays inside the provider's requests-per-minute allowance.
func LoadConfig() Config {
	base := os.Getenv("ALPHAVANTAGE_BASE_URL")
	if base == "" {
		base = "https://www.alphavantage.co"
	}
	gap := 12 * time.Second
	if raw := os.Getenv("AV_SECONDS_BETWEEN_CALLS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
			gap = time.Duration(secs) * time.Second
		}
	}
	return Config{
		APIKey:  os.Getenv("ALPHAVANTAGE_API_KEY"),
		BaseURL: base,
		Timeout: 30 * time.Second,
		CallGap: gap,
	}
}
