package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guregu/null/v6"

	"stock_gateway/internal/feature/profit/usecase"
	"stock_gateway/internal/shared/jsonprobe"
)

// Prices fetches closing prices from the Polygon aggregates endpoints.
type Prices struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Prices implements PriceRepository.
var _ usecase.PriceRepository = (*Prices)(nil)

// NewPrices creates a Prices adapter with the given configuration and HTTP
// client.
func NewPrices(cfg Config, client *http.Client) *Prices {
	return &Prices{cfg: cfg, client: client}
}

type aggsResponse struct {
	Status  string           `json:"status"`
	Results []map[string]any `json:"results"`
}

// FetchDayClose returns the closing price on the given UTC day. The range
// query can return more than one row around holidays; rows are requested
// in ascending order so the last one is the day's final bar. No bar for
// the day is a null price, not an error.
func (p *Prices) FetchDayClose(ctx context.Context, symbol string, day time.Time) (null.Float, error) {
	date := day.UTC().Format("2006-01-02")
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/1/day/%s/%s", symbol, date, date)

	q := url.Values{}
	q.Set("sort", "asc")
	q.Set("limit", "5000")

	body, err := p.get(ctx, path, q)
	if err != nil {
		return null.Float{}, err
	}
	if len(body.Results) == 0 {
		return null.Float{}, nil
	}
	return jsonprobe.Float(body.Results[len(body.Results)-1]["c"]), nil
}

// FetchPreviousClose returns the most recent available closing price.
func (p *Prices) FetchPreviousClose(ctx context.Context, symbol string) (null.Float, error) {
	body, err := p.get(ctx, fmt.Sprintf("/v2/aggs/ticker/%s/prev", symbol), nil)
	if err != nil {
		return null.Float{}, err
	}
	if len(body.Results) == 0 {
		return null.Float{}, nil
	}
	return jsonprobe.Float(body.Results[0]["c"]), nil
}

func (p *Prices) get(ctx context.Context, path string, q url.Values) (aggsResponse, error) {
	if p.cfg.APIKey == "" {
		return aggsResponse{}, fmt.Errorf("POLYGON_API_KEY_2: %w", usecase.ErrNotConfigured)
	}

	if q == nil {
		q = url.Values{}
	}
	q.Set("adjusted", "true")
	u := fmt.Sprintf("%s%s?%s", strings.TrimRight(p.cfg.BaseURL, "/"), path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return aggsResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	res, err := p.client.Do(req)
	if err != nil {
		return aggsResponse{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return aggsResponse{}, fmt.Errorf("polygon http %d", res.StatusCode)
	}

	var body aggsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return aggsResponse{}, err
	}
	return body, nil
}
