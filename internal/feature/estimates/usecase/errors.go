package usecase

import "errors"

var (
	// ErrInvalidPeriod is returned for a period other than annual,
	// quarterly or both.
	ErrInvalidPeriod = errors.New("period must be one of annual, quarterly, both")

	// ErrNotConfigured is wrapped by adapters whose API key is absent.
	ErrNotConfigured = errors.New("provider API key is not configured")

	// ErrProviderRejected is wrapped when the provider answered 200 but
	// carried a throttling or error marker instead of data.
	ErrProviderRejected = errors.New("provider rejected the request")
)
