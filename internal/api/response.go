// Package api defines the shared HTTP response shapes returned by handlers.
package api

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
