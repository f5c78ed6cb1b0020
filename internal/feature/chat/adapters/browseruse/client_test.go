package browseruse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"

	"stock_gateway/internal/feature/chat/domain/entity"
	"stock_gateway/internal/feature/chat/usecase"
)

// taskServer scripts the provider's submit/status/details endpoints.
type taskServer struct {
	t          *testing.T
	submits    []map[string]any
	statuses   []string // consumed one per status poll, last one repeats
	statusHits int
	reject422  func(payload map[string]any) bool
	details    map[string]any
}

func (s *taskServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /run-task", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			s.t.Errorf("decode submit payload: %v", err)
		}
		s.submits = append(s.submits, payload)
		if s.reject422 != nil && s.reject422(payload) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		if err := json.NewEncoder(w).Encode(map[string]string{"id": "task-123"}); err != nil {
			s.t.Errorf("encode submit response: %v", err)
		}
	})
	mux.HandleFunc("GET /task/task-123/status", func(w http.ResponseWriter, r *http.Request) {
		i := s.statusHits
		if i >= len(s.statuses) {
			i = len(s.statuses) - 1
		}
		s.statusHits++
		if err := json.NewEncoder(w).Encode(s.statuses[i]); err != nil {
			s.t.Errorf("encode status response: %v", err)
		}
	})
	mux.HandleFunc("GET /task/task-123", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(s.details); err != nil {
			s.t.Errorf("encode details response: %v", err)
		}
	})
	return mux
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(Config{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		PollInterval: time.Millisecond,
	}, server.Client())
}

func TestRun_PollsUntilFinished(t *testing.T) {
	ts := &taskServer{
		t:        t,
		statuses: []string{"created", "running", "finished"},
		details:  map[string]any{"id": "task-123", "output": "all done", "llm": "o3"},
	}
	server := httptest.NewServer(ts.handler())
	defer server.Close()

	result, err := newTestClient(server).Run(context.Background(), entity.TaskRequest{Task: "look it up", LLM: "o3"})
	assert.NoError(t, err)

	assert.Equal(t, "task-123", result.TaskID)
	assert.Equal(t, entity.StatusFinished, result.Status)
	assert.Equal(t, "all done", result.OutputRaw.String)
	assert.Equal(t, "o3", result.Model)
	assert.Equal(t, 3, ts.statusHits)

	assert.Len(t, ts.submits, 1)
	assert.Equal(t, "look it up", ts.submits[0]["task"])
	assert.Equal(t, "o3", ts.submits[0]["llm"])
}

func TestRun_RetriesOnceWithStringEncodedSchema(t *testing.T) {
	schema := map[string]any{"type": "object", "properties": map[string]any{"price": map[string]any{"type": "number"}}}
	ts := &taskServer{
		t:        t,
		statuses: []string{"finished"},
		details:  map[string]any{"id": "task-123", "output": `{"price": 1.5}`},
		reject422: func(payload map[string]any) bool {
			_, isString := payload["structured_output_json"].(string)
			return !isString
		},
	}
	server := httptest.NewServer(ts.handler())
	defer server.Close()

	result, err := newTestClient(server).Run(context.Background(), entity.TaskRequest{
		Task:             "extract the price",
		LLM:              "o3",
		StructuredOutput: schema,
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusFinished, result.Status)

	assert.Len(t, ts.submits, 2)
	_, firstIsString := ts.submits[0]["structured_output_json"].(string)
	assert.False(t, firstIsString)

	encoded, ok := ts.submits[1]["structured_output_json"].(string)
	assert.True(t, ok)
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
	assert.Equal(t, "object", decoded["type"])
}

func TestRun_NoRetryWhenSchemaAlreadyString(t *testing.T) {
	ts := &taskServer{
		t:         t,
		statuses:  []string{"finished"},
		details:   map[string]any{"id": "task-123"},
		reject422: func(map[string]any) bool { return true },
	}
	server := httptest.NewServer(ts.handler())
	defer server.Close()

	_, err := newTestClient(server).Run(context.Background(), entity.TaskRequest{
		Task:             "extract the price",
		StructuredOutput: `{"type": "object"}`,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Len(t, ts.submits, 1)
}

func TestRun_PassthroughAndOptionalFields(t *testing.T) {
	ts := &taskServer{
		t:        t,
		statuses: []string{"stopped"},
		details:  map[string]any{"id": "task-123"},
	}
	server := httptest.NewServer(ts.handler())
	defer server.Close()

	result, err := newTestClient(server).Run(context.Background(), entity.TaskRequest{
		Task:            "look it up",
		LLM:             "o3",
		SaveBrowserData: null.BoolFrom(true),
		Metadata:        map[string]any{"origin": "test"},
		Extra:           map[string]any{"max_steps": float64(20)},
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusStopped, result.Status)
	assert.False(t, result.OutputRaw.Valid)

	payload := ts.submits[0]
	assert.Equal(t, true, payload["save_browser_data"])
	assert.Equal(t, map[string]any{"origin": "test"}, payload["metadata"])
	assert.Equal(t, float64(20), payload["max_steps"])
}

func TestRun_ContextCancelStopsPolling(t *testing.T) {
	ts := &taskServer{
		t:        t,
		statuses: []string{"running"},
		details:  map[string]any{"id": "task-123"},
	}
	server := httptest.NewServer(ts.handler())
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server).Run(ctx, entity.TaskRequest{Task: "look it up"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_MissingAPIKey(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://example.com"}, http.DefaultClient)

	_, err := client.Run(context.Background(), entity.TaskRequest{Task: "look it up"})
	assert.ErrorIs(t, err, usecase.ErrNotConfigured)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("BROWSER_USE_API_KEY", "abc")
	t.Setenv("BROWSER_USE_BASE_URL", "")

	cfg := LoadConfig()
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, "https://api.browser-use.com/api/v1", cfg.BaseURL)
	assert.Equal(t, 120*time.Second, cfg.Timeout)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
}
