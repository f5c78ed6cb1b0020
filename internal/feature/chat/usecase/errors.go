package usecase

import "errors"

var (
	// ErrEmptyTask is returned when the caller supplied no task text.
	ErrEmptyTask = errors.New("task is required")

	// ErrNotConfigured is wrapped by adapters whose API key is absent.
	ErrNotConfigured = errors.New("provider API key is not configured")
)
