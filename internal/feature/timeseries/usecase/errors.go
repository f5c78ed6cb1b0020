package usecase

import "errors"

var (
	// ErrUnsupportedInterval is returned for any interval other than 1d.
	ErrUnsupportedInterval = errors.New("only interval '1d' is supported at this time")

	// ErrUnknownSource is returned for an unrecognized source parameter.
	ErrUnknownSource = errors.New("unknown time series source")

	// ErrNotConfigured is wrapped by adapters whose API key is absent.
	ErrNotConfigured = errors.New("provider API key is not configured")
)
