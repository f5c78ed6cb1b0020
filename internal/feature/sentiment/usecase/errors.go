package usecase

import "errors"

var (
	// ErrNoTickers is returned when the caller supplied no tickers.
	ErrNoTickers = errors.New("at least one ticker is required")

	// ErrNotConfigured is wrapped by adapters whose API key is absent.
	ErrNotConfigured = errors.New("provider API key is not configured")
)
