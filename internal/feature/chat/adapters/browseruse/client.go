package browseruse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/guregu/null/v6"

	"stock_gateway/internal/feature/chat/domain/entity"
	"stock_gateway/internal/feature/chat/usecase"
)

// Client drives one browser task through the provider's lifecycle: submit,
// poll until a terminal state, fetch the result. Construct it once at
// startup; it holds no per-task state and is safe to reuse across requests.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements TaskRunner.
var _ usecase.TaskRunner = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Run submits the task and blocks until the provider reports a terminal
// state, then fetches the task details.
func (c *Client) Run(ctx context.Context, req entity.TaskRequest) (entity.TaskResult, error) {
	if c.cfg.APIKey == "" {
		return entity.TaskResult{}, fmt.Errorf("BROWSER_USE_API_KEY: %w", usecase.ErrNotConfigured)
	}

	id, err := c.submit(ctx, req)
	if err != nil {
		return entity.TaskResult{}, err
	}

	status, err := c.waitForTerminal(ctx, id)
	if err != nil {
		return entity.TaskResult{}, err
	}

	details, err := c.fetchDetails(ctx, id)
	if err != nil {
		return entity.TaskResult{}, err
	}

	result := entity.TaskResult{TaskID: id, Status: status}
	if output, ok := details["output"].(string); ok {
		result.OutputRaw = null.StringFrom(output)
	}
	if model, ok := details["llm"].(string); ok {
		result.Model = model
	}
	return result, nil
}

// submit posts the task. Some provider versions reject an object-valued
// structured_output_json with a 422 and want the schema as a JSON-encoded
// string instead; that case is retried exactly once with the schema
// re-encoded.
func (c *Client) submit(ctx context.Context, req entity.TaskRequest) (string, error) {
	payload := buildPayload(req)

	status, body, err := c.do(ctx, http.MethodPost, "/run-task", payload)
	if err != nil {
		return "", err
	}

	if status == http.StatusUnprocessableEntity {
		if _, isString := req.StructuredOutput.(string); req.StructuredOutput != nil && !isString {
			encoded, err := json.Marshal(req.StructuredOutput)
			if err != nil {
				return "", err
			}
			payload["structured_output_json"] = string(encoded)
			slog.Info("resubmitting task with string-encoded schema")
			status, body, err = c.do(ctx, http.MethodPost, "/run-task", payload)
			if err != nil {
				return "", err
			}
		}
	}
	if status >= 400 {
		return "", fmt.Errorf("browser task submit http %d", status)
	}

	var submitted struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &submitted); err != nil {
		return "", err
	}
	if submitted.ID == "" {
		return "", fmt.Errorf("browser task submit returned no id")
	}
	return submitted.ID, nil
}

// waitForTerminal polls the status endpoint, which answers with a bare
// JSON string, until the task finishes, fails or is stopped.
func (c *Client) waitForTerminal(ctx context.Context, id string) (string, error) {
	for {
		status, body, err := c.do(ctx, http.MethodGet, "/task/"+id+"/status", nil)
		if err != nil {
			return "", err
		}
		if status >= 400 {
			return "", fmt.Errorf("browser task status http %d", status)
		}

		var state string
		if err := json.Unmarshal(body, &state); err != nil {
			return "", err
		}

		switch state {
		case entity.StatusFinished, entity.StatusFailed, entity.StatusStopped:
			return state, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}
	}
}

func (c *Client) fetchDetails(ctx context.Context, id string) (map[string]any, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/task/"+id, nil)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, fmt.Errorf("browser task fetch http %d", status)
	}

	var details map[string]any
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload map[string]any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.cfg.BaseURL, "/")+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, err
	}
	return res.StatusCode, body, nil
}

// buildPayload assembles the submit body. Unknown caller fields go in
// first so that the named ones always win on key collisions.
func buildPayload(req entity.TaskRequest) map[string]any {
	payload := make(map[string]any, len(req.Extra)+5)
	for k, v := range req.Extra {
		payload[k] = v
	}
	payload["task"] = req.Task
	payload["llm"] = req.LLM
	if req.StructuredOutput != nil {
		payload["structured_output_json"] = req.StructuredOutput
	}
	if req.SaveBrowserData.Valid {
		payload["save_browser_data"] = req.SaveBrowserData.Bool
	}
	if len(req.Metadata) > 0 {
		payload["metadata"] = req.Metadata
	}
	return payload
}
