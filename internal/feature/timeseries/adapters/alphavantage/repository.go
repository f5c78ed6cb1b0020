package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"stock_gateway/internal/feature/timeseries/domain/entity"
	"stock_gateway/internal/feature/timeseries/usecase"
	"stock_gateway/internal/shared/jsonprobe"
)

const (
	metaKey   = "Meta Data"
	seriesKey = "Time Series (Daily)"
)

// Daily fetches the Alpha Vantage TIME_SERIES_DAILY endpoint, whose series
// is a map keyed by ISO date string.
type Daily struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Daily implements MarketRepository.
var _ usecase.MarketRepository = (*Daily)(nil)

// NewDaily creates a Daily with the given configuration and HTTP client.
func NewDaily(cfg Config, client *http.Client) *Daily {
	return &Daily{cfg: cfg, client: client}
}

// GetDailySeries fetches the full daily series and normalizes the most
// recent limit points, ascending by date.
//
// A missing or empty series is only a valid empty result when the payload
// still carries the expected metadata and no error marker; otherwise the
// provider rejected the request and the call fails fast.
func (a *Daily) GetDailySeries(ctx context.Context, symbol string, limit int) ([]entity.Point, error) {
	if a.cfg.APIKey == "" {
		return nil, fmt.Errorf("ALPHAVANTAGE_API_KEY: %w", usecase.ErrNotConfigured)
	}

	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("outputsize", "full")
	q.Set("apikey", a.cfg.APIKey)

	u := fmt.Sprintf("%s/query?%s", strings.TrimRight(a.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}

	series, _ := payload[seriesKey].(map[string]any)
	if len(series) == 0 {
		if msg := providerMessage(payload); msg != "" {
			return nil, fmt.Errorf("alphavantage: %s", msg)
		}
		if _, ok := payload[metaKey]; !ok {
			return nil, fmt.Errorf("alphavantage: response carries no daily series for %s", symbol)
		}
		return []entity.Point{}, nil
	}

	return normalizeSeries(series, limit), nil
}

// providerMessage returns the provider's own error or informational text,
// if any.
func providerMessage(payload map[string]any) string {
	for _, key := range []string{"Error Message", "Note"} {
		if msg, ok := payload[key].(string); ok && msg != "" {
			return msg
		}
	}
	return ""
}

// normalizeSeries sorts the date keys ascending (ISO dates sort
// chronologically), keeps the most recent limit entries, and converts each
// record into a point at UTC midnight. A key that fails date parsing is
// skipped without aborting the batch.
func normalizeSeries(series map[string]any, limit int) []entity.Point {
	keys := make([]string, 0, len(series))
	for k := range series {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if limit > 0 && len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}

	points := make([]entity.Point, 0, len(keys))
	for _, day := range keys {
		ts, err := time.Parse("2006-01-02", day)
		if err != nil {
			slog.Warn("skipping unparseable series key", "key", day)
			continue
		}
		row, _ := series[day].(map[string]any)
		points = append(points, entity.Point{
			Time:  ts,
			Open:  jsonprobe.FirstFloat(row, []jsonprobe.Path{{"1. open"}}),
			High:  jsonprobe.FirstFloat(row, []jsonprobe.Path{{"2. high"}}),
			Low:   jsonprobe.FirstFloat(row, []jsonprobe.Path{{"3. low"}}),
			Close: jsonprobe.FirstFloat(row, []jsonprobe.Path{{"4. close"}}),
			// the volume key has drifted between API revisions
			Volume: jsonprobe.FirstFloat(row, []jsonprobe.Path{{"6. volume"}, {"5. volume"}}),
		})
	}
	return points
}
