// Package usecase implements the business rules for the chat feature.
package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/guregu/null/v6"

	"stock_gateway/internal/feature/chat/domain/entity"
)

// DefaultModel is the language model used when the caller names none.
const DefaultModel = "o3"

// TaskRunner abstracts the browser-task provider: submit, wait for a
// terminal state, fetch the result.
// Following Go convention, the interface is defined on the consumer side.
type TaskRunner interface {
	Run(ctx context.Context, req entity.TaskRequest) (entity.TaskResult, error)
}

// Result is one completed chat task with its decoded structured output.
type Result struct {
	TaskID       string
	Status       string
	OutputRaw    null.String
	OutputParsed any
	Model        string
}

type chatUsecase struct {
	runner TaskRunner
}

// NewChatUsecase creates a chat usecase over the browser-task client.
func NewChatUsecase(runner TaskRunner) *chatUsecase {
	return &chatUsecase{runner: runner}
}

// Execute runs one browser task to completion. When the caller requested a
// structured output schema, the provider returns the output as a
// JSON-encoded string; it is parsed a second time here. A parse failure
// leaves OutputParsed nil, it is never an error.
func (u *chatUsecase) Execute(ctx context.Context, req entity.TaskRequest) (Result, error) {
	if strings.TrimSpace(req.Task) == "" {
		return Result{}, ErrEmptyTask
	}
	if req.LLM == "" {
		req.LLM = DefaultModel
	}

	task, err := u.runner.Run(ctx, req)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		TaskID:    task.TaskID,
		Status:    task.Status,
		OutputRaw: task.OutputRaw,
		Model:     req.LLM,
	}
	if req.StructuredOutput != nil && task.OutputRaw.Valid {
		var parsed any
		if err := json.Unmarshal([]byte(task.OutputRaw.String), &parsed); err == nil {
			result.OutputParsed = parsed
		}
	}
	return result, nil
}
