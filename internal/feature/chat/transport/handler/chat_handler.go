// Package handler provides the HTTP handlers for the chat feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"

	"stock_gateway/internal/api"
	"stock_gateway/internal/feature/chat/domain/entity"
	"stock_gateway/internal/feature/chat/usecase"
)

// ChatUsecase defines the usecase interface for browser chat tasks.
// Following Go convention, the interface is defined on the consumer side.
type ChatUsecase interface {
	Execute(ctx context.Context, req entity.TaskRequest) (usecase.Result, error)
}

// ChatHandler handles HTTP requests for browser-automation chat tasks.
type ChatHandler struct {
	uc ChatUsecase
}

// NewChatHandler creates a ChatHandler with the given usecase.
func NewChatHandler(uc ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Keys this gateway interprets; everything else in the request body passes
// through to the provider untouched.
var knownKeys = map[string]struct{}{
	"task":                   {},
	"llm":                    {},
	"structured_output_json": {},
	"save_browser_data":      {},
	"metadata":               {},
}

// PostChat submits a browser task and waits for its result.
//
// Example:
// POST /api/v1/chat {"task": "find the latest AAPL filing", "llm": "o3"}
func (h *ChatHandler) PostChat(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, api.ChatResponse{
			Success: false,
			Error:   null.StringFrom("request body must be a JSON object"),
		})
		return
	}

	req := toTaskRequest(body)

	result, err := h.uc.Execute(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), api.ChatResponse{
			Success: false,
			Error:   null.StringFrom(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, api.ChatResponse{
		Success: true,
		Data: &api.ChatResult{
			TaskID:       result.TaskID,
			Status:       result.Status,
			OutputRaw:    result.OutputRaw,
			OutputParsed: result.OutputParsed,
			Model:        result.Model,
		},
	})
}

func toTaskRequest(body map[string]any) entity.TaskRequest {
	req := entity.TaskRequest{}
	if task, ok := body["task"].(string); ok {
		req.Task = task
	}
	if llm, ok := body["llm"].(string); ok {
		req.LLM = llm
	}
	if schema, ok := body["structured_output_json"]; ok {
		req.StructuredOutput = schema
	}
	if save, ok := body["save_browser_data"].(bool); ok {
		req.SaveBrowserData = null.BoolFrom(save)
	}
	if meta, ok := body["metadata"].(map[string]any); ok {
		req.Metadata = meta
	}
	for k, v := range body {
		if _, ok := knownKeys[k]; ok {
			continue
		}
		if req.Extra == nil {
			req.Extra = make(map[string]any)
		}
		req.Extra[k] = v
	}
	return req
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEmptyTask):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotConfigured):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
