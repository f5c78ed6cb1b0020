package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"stock_gateway/internal/feature/estimates/domain/entity"
	"stock_gateway/internal/feature/estimates/usecase"
)

// Repository fetches and normalizes the Alpha Vantage EARNINGS_ESTIMATES
// endpoint.
type Repository struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Repository implements EstimatesRepository.
var _ usecase.EstimatesRepository = (*Repository)(nil)

// NewRepository creates a Repository with the given configuration and HTTP
// client.
func NewRepository(cfg Config, client *http.Client) *Repository {
	return &Repository{cfg: cfg, client: client}
}

// FetchEstimates retrieves the earnings-estimate payload for a symbol and
// normalizes every located annual and quarterly record. A 200 response
// carrying a throttle or error marker is an upstream rejection, surfaced
// with the provider's own message.
func (r *Repository) FetchEstimates(ctx context.Context, symbol string) (entity.Set, error) {
	if r.cfg.APIKey == "" {
		return entity.Set{}, fmt.Errorf("ALPHAVANTAGE_API_KEY: %w", usecase.ErrNotConfigured)
	}

	q := url.Values{}
	q.Set("function", "EARNINGS_ESTIMATES")
	q.Set("symbol", symbol)
	q.Set("apikey", r.cfg.APIKey)

	u := fmt.Sprintf("%s/query?%s", strings.TrimRight(r.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Set{}, err
	}

	res, err := r.client.Do(req)
	if err != nil {
		return entity.Set{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Set{}, fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return entity.Set{}, err
	}

	if msg := throttleMessage(payload); msg != "" {
		return entity.Set{}, fmt.Errorf("%w: %s", usecase.ErrProviderRejected, msg)
	}

	annual, quarterly := pluckLists(payload)
	return entity.Set{
		Annual:    parseNodes(annual, entity.PeriodAnnual),
		Quarterly: parseNodes(quarterly, entity.PeriodQuarterly),
	}, nil
}

// throttleMessage returns the provider's throttling or error text, if any.
func throttleMessage(payload map[string]any) string {
	for _, key := range []string{"Information", "Note", "Error Message"} {
		if msg, ok := payload[key].(string); ok && msg != "" {
			return msg
		}
	}
	return ""
}
