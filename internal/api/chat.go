package api

import "github.com/guregu/null/v6"

// ChatResult carries the outcome of one browser task.
type ChatResult struct {
	TaskID       string      `json:"task_id"`
	Status       string      `json:"status"`
	OutputRaw    null.String `json:"output_raw"`
	OutputParsed any         `json:"output_parsed"` // second parse of OutputRaw when a schema was requested
	Model        string      `json:"model"`
}

// ChatResponse is the body for POST /chat.
type ChatResponse struct {
	Success bool        `json:"success"`
	Data    *ChatResult `json:"data,omitempty"`
	Error   null.String `json:"error"`
}
