package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"

	"stock_gateway/internal/feature/chat/domain/entity"
	"stock_gateway/internal/feature/chat/usecase"
)

type mockChatUsecase struct {
	executeFunc func(ctx context.Context, req entity.TaskRequest) (usecase.Result, error)
}

func (m *mockChatUsecase) Execute(ctx context.Context, req entity.TaskRequest) (usecase.Result, error) {
	return m.executeFunc(ctx, req)
}

func setupRouter(uc ChatUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", NewChatHandler(uc).PostChat)
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPostChat_Success(t *testing.T) {
	var got entity.TaskRequest
	uc := &mockChatUsecase{
		executeFunc: func(ctx context.Context, req entity.TaskRequest) (usecase.Result, error) {
			got = req
			return usecase.Result{
				TaskID:       "task-123",
				Status:       entity.StatusFinished,
				OutputRaw:    null.StringFrom(`{"price": 186.22}`),
				OutputParsed: map[string]any{"price": 186.22},
				Model:        "o3",
			}, nil
		},
	}

	w := postJSON(setupRouter(uc), `{
		"task": "extract the price",
		"llm": "o3",
		"structured_output_json": {"type": "object"},
		"save_browser_data": true,
		"metadata": {"origin": "test"},
		"max_steps": 20
	}`)

	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "extract the price", got.Task)
	assert.Equal(t, "o3", got.LLM)
	assert.Equal(t, map[string]any{"type": "object"}, got.StructuredOutput)
	assert.True(t, got.SaveBrowserData.Bool)
	assert.Equal(t, map[string]any{"origin": "test"}, got.Metadata)
	assert.Equal(t, map[string]any{"max_steps": float64(20)}, got.Extra)

	assert.JSONEq(t, `{
		"success": true,
		"error": null,
		"data": {
			"task_id": "task-123",
			"status": "finished",
			"output_raw": "{\"price\": 186.22}",
			"output_parsed": {"price": 186.22},
			"model": "o3"
		}
	}`, w.Body.String())
}

func TestPostChat_MalformedBody(t *testing.T) {
	uc := &mockChatUsecase{
		executeFunc: func(ctx context.Context, req entity.TaskRequest) (usecase.Result, error) {
			t.Fatal("usecase must not be called for a malformed body")
			return usecase.Result{}, nil
		},
	}

	w := postJSON(setupRouter(uc), `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestPostChat_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty task", usecase.ErrEmptyTask, http.StatusBadRequest},
		{"missing api key", usecase.ErrNotConfigured, http.StatusInternalServerError},
		{"provider failure", assert.AnError, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockChatUsecase{
				executeFunc: func(ctx context.Context, req entity.TaskRequest) (usecase.Result, error) {
					return usecase.Result{}, tt.err
				},
			}

			w := postJSON(setupRouter(uc), `{"task": ""}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, `{"success": false, "error": "`+tt.err.Error()+`"}`, w.Body.String())
		})
	}
}
