package usecase

import "errors"

var (
	// ErrInvalidAsOf is returned when as_of is neither a date nor a
	// datetime.
	ErrInvalidAsOf = errors.New("as_of must be YYYY-MM-DD or an RFC 3339 datetime")

	// ErrNotConfigured is wrapped by adapters whose API key is absent.
	ErrNotConfigured = errors.New("provider API key is not configured")
)
