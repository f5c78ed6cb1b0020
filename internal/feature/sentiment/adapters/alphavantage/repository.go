package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"stock_gateway/internal/feature/sentiment/domain/entity"
	"stock_gateway/internal/feature/sentiment/usecase"
	"stock_gateway/internal/shared/jsonprobe"
)

// News fetches and normalizes the Alpha Vantage NEWS_SENTIMENT endpoint.
type News struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that News implements NewsRepository.
var _ usecase.NewsRepository = (*News)(nil)

// NewNews creates a News adapter with the given configuration and HTTP
// client.
func NewNews(cfg Config, client *http.Client) *News {
	return &News{cfg: cfg, client: client}
}

// FetchFeed retrieves the news feed for one ticker. A 200 response carrying
// an Information or Note key is the provider's throttle signal and comes
// back as a throttled feed, not an error, so one rate-limited ticker does
// not fail the whole aggregate.
func (n *News) FetchFeed(ctx context.Context, fq usecase.FeedQuery) (entity.Feed, error) {
	if n.cfg.APIKey == "" {
		return entity.Feed{}, fmt.Errorf("ALPHAVANTAGE_API_KEY: %w", usecase.ErrNotConfigured)
	}

	q := url.Values{}
	q.Set("function", "NEWS_SENTIMENT")
	q.Set("tickers", fq.Ticker)
	q.Set("limit", strconv.Itoa(fq.Limit))
	q.Set("sort", fq.Sort)
	q.Set("apikey", n.cfg.APIKey)
	if len(fq.Topics) > 0 {
		q.Set("topics", strings.Join(fq.Topics, ","))
	}
	if fq.TimeFrom != "" {
		q.Set("time_from", fq.TimeFrom)
	}
	if fq.TimeTo != "" {
		q.Set("time_to", fq.TimeTo)
	}

	u := fmt.Sprintf("%s/query?%s", strings.TrimRight(n.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Feed{}, err
	}

	res, err := n.client.Do(req)
	if err != nil {
		return entity.Feed{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Feed{}, fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return entity.Feed{}, err
	}

	// Throttling is signaled by key presence, whatever the value holds.
	for _, key := range []string{"Information", "Note"} {
		if _, ok := payload[key]; ok {
			slog.Warn("news provider throttled", "ticker", fq.Ticker, "marker", key)
			return entity.Feed{Throttled: true}, nil
		}
	}

	return normalizeFeed(payload), nil
}

var (
	scorePaths     = []jsonprobe.Path{{"ticker_sentiment_score"}}
	relevancePaths = []jsonprobe.Path{{"relevance_score"}}
)

// normalizeFeed converts the raw feed into articles. A feed entry that is
// not an object still yields an article, it counts toward article_count.
func normalizeFeed(payload map[string]any) entity.Feed {
	rawFeed, _ := payload["feed"].([]any)

	feed := entity.Feed{Articles: make([]entity.Article, 0, len(rawFeed))}
	for _, rawArticle := range rawFeed {
		article := entity.Article{}
		if m, ok := rawArticle.(map[string]any); ok {
			if rawEntries, ok := m["ticker_sentiment"].([]any); ok {
				for _, rawEntry := range rawEntries {
					entry, ok := rawEntry.(map[string]any)
					if !ok {
						continue
					}
					ticker, _ := entry["ticker"].(string)
					article.Sentiments = append(article.Sentiments, entity.TickerScore{
						Ticker:    ticker,
						Score:     jsonprobe.FirstFloat(entry, scorePaths),
						Relevance: jsonprobe.FirstFloat(entry, relevancePaths),
					})
				}
			}
		}
		feed.Articles = append(feed.Articles, article)
	}
	return feed
}
