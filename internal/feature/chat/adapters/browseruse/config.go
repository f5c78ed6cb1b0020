// Package browseruse provides a client for the Browser Use cloud task API.
package browseruse

import (
	"os"
	"time"
)

// Config holds configuration for the browser-task client. Browser tasks
// run for minutes, so the HTTP timeout is much longer than the market
// providers use.
type Config struct {
	APIKey       string        // API key sent as a Bearer token
	BaseURL      string        // Base URL for the API
	Timeout      time.Duration // HTTP request timeout per call
	PollInterval time.Duration // Spacing between status polls
}

// LoadConfig loads browser-task client configuration from environment
// variables.
func LoadConfig() Config {
	base := os.Getenv("BROWSER_USE_BASE_URL")
	if base == "" {
		base = "https://api.browser-use.com/api/v1"
	}
	return Config{
		APIKey:       os.Getenv("BROWSER_USE_API_KEY"),
		BaseURL:      base,
		Timeout:      120 * time.Second,
		PollInterval: 2 * time.Second,
	}
}
