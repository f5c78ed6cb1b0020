// Package entity defines the domain models for the chat feature.
package entity

import "github.com/guregu/null/v6"

// Terminal task states reported by the browser-task provider.
const (
	StatusFinished = "finished"
	StatusFailed   = "failed"
	StatusStopped  = "stopped"
)

// TaskRequest describes one browser task submission. Extra carries caller
// fields this gateway does not interpret; they pass through to the provider
// untouched.
type TaskRequest struct {
	Task             string
	LLM              string
	StructuredOutput any // JSON schema for the task output, object or pre-encoded string
	SaveBrowserData  null.Bool
	Metadata         map[string]any
	Extra            map[string]any
}

// TaskResult is the provider's account of a finished task.
type TaskResult struct {
	TaskID    string
	Status    string
	OutputRaw null.String
	Model     string
}
