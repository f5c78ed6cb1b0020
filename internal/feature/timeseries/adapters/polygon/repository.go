package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stock_gateway/internal/feature/timeseries/domain/entity"
	"stock_gateway/internal/feature/timeseries/usecase"
	"stock_gateway/internal/shared/jsonprobe"
)

// Market fetches daily bars from the Polygon aggregates endpoint.
type Market struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Market implements MarketRepository.
var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket creates a Market with the given configuration and HTTP client.
func NewMarket(cfg Config, client *http.Client) *Market {
	return &Market{cfg: cfg, client: client}
}

// aggsResponse mirrors the Polygon aggregates envelope. Rows stay loosely
// typed so that one malformed field never fails the whole batch.
type aggsResponse struct {
	Status  string           `json:"status"`
	Results []map[string]any `json:"results"`
}

// GetDailySeries fetches adjusted daily aggregates for the last 365 days
// ending today (UTC) and normalizes them into points. Rows arrive in
// ascending order because sort=asc is requested explicitly; they are not
// re-sorted here.
func (m *Market) GetDailySeries(ctx context.Context, symbol string, limit int) ([]entity.Point, error) {
	if m.cfg.APIKey == "" {
		return nil, fmt.Errorf("POLYGON_API_KEY: %w", usecase.ErrNotConfigured)
	}

	to := time.Now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -365)

	q := url.Values{}
	q.Set("adjusted", "true")
	q.Set("sort", "asc")
	q.Set("limit", strconv.Itoa(limit))

	u := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?%s",
		strings.TrimRight(m.cfg.BaseURL, "/"), symbol,
		from.Format("2006-01-02"), to.Format("2006-01-02"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("polygon http %d", res.StatusCode)
	}

	var body aggsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	return normalizeRows(body.Results), nil
}

// normalizeRows converts raw aggregate rows into points. A row without a
// millisecond timestamp cannot be placed on the timeline and is dropped
// entirely; any other field that fails to parse becomes null on that point
// only.
func normalizeRows(rows []map[string]any) []entity.Point {
	points := make([]entity.Point, 0, len(rows))
	for _, row := range rows {
		ts := jsonprobe.Int(row["t"])
		if !ts.Valid {
			continue
		}
		points = append(points, entity.Point{
			Time:   time.UnixMilli(ts.Int64).UTC(),
			Open:   jsonprobe.Float(row["o"]),
			High:   jsonprobe.Float(row["h"]),
			Low:    jsonprobe.Float(row["l"]),
			Close:  jsonprobe.Float(row["c"]),
			Volume: jsonprobe.Float(row["v"]),
		})
	}
	return points
}
