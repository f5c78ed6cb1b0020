// Package usecase implements the business rules for the sentiment feature.
package usecase

import (
	"context"
	"strings"

	"github.com/guregu/null/v6"

	"stock_gateway/internal/feature/sentiment/domain/entity"
	"stock_gateway/internal/shared/ratelimiter"
)

const (
	// DefaultThreshold is the minimum average score that counts as good.
	DefaultThreshold = 0.07
	// DefaultLimit is the default number of feed articles requested.
	DefaultLimit = 50
	// MaxLimit is the provider's maximum feed size.
	MaxLimit = 1000
	// DefaultSort is the provider's default feed ordering.
	DefaultSort = "LATEST"
)

// Query holds the caller's aggregate request.
type Query struct {
	Tickers       []string
	GoodThreshold float64
	Limit         int
	Topics        []string
	TimeFrom      string
	TimeTo        string
	Sort          string
	MinRelevance  float64
}

// FeedQuery is the per-ticker provider request derived from a Query.
type FeedQuery struct {
	Ticker   string
	Limit    int
	Topics   []string
	TimeFrom string
	TimeTo   string
	Sort     string
}

// NewsRepository abstracts the news sentiment provider.
// Following Go convention, the interface is defined on the consumer side.
type NewsRepository interface {
	FetchFeed(ctx context.Context, q FeedQuery) (entity.Feed, error)
}

type sentimentUsecase struct {
	repo  NewsRepository
	pacer ratelimiter.Pacer
}

// NewSentimentUsecase creates a sentiment usecase over the provider adapter
// and the pacer that spaces successive provider calls.
func NewSentimentUsecase(repo NewsRepository, pacer ratelimiter.Pacer) *sentimentUsecase {
	return &sentimentUsecase{repo: repo, pacer: pacer}
}

// Aggregate produces one item per deduplicated, uppercased input ticker in
// first-seen order. Tickers are processed strictly sequentially; the pacer
// runs before every fetch and itself lets the first call through without
// waiting. A throttled feed yields a data-free item rather than failing
// the whole request.
func (u *sentimentUsecase) Aggregate(ctx context.Context, q Query) ([]entity.Item, error) {
	tickers := dedupUpper(q.Tickers)
	if len(tickers) == 0 {
		return nil, ErrNoTickers
	}
	if q.Limit <= 0 || q.Limit > MaxLimit {
		q.Limit = DefaultLimit
	}
	if q.Sort == "" {
		q.Sort = DefaultSort
	}

	items := make([]entity.Item, 0, len(tickers))
	for _, ticker := range tickers {
		u.pacer.WaitIfNeeded()

		feed, err := u.repo.FetchFeed(ctx, FeedQuery{
			Ticker:   ticker,
			Limit:    q.Limit,
			Topics:   q.Topics,
			TimeFrom: q.TimeFrom,
			TimeTo:   q.TimeTo,
			Sort:     q.Sort,
		})
		if err != nil {
			return nil, err
		}

		items = append(items, aggregateTicker(ticker, feed, q.GoodThreshold, q.MinRelevance))
	}
	return items, nil
}

// aggregateTicker reduces one ticker's feed to an item. Entries below the
// relevance floor are excluded from the average but their articles still
// count, article_count reflects feed size by contract.
func aggregateTicker(ticker string, feed entity.Feed, threshold, minRelevance float64) entity.Item {
	if feed.Throttled {
		return entity.Item{Ticker: ticker}
	}

	var sum float64
	var n int
	for _, article := range feed.Articles {
		for _, ts := range article.Sentiments {
			if ts.Ticker != ticker {
				continue
			}
			if minRelevance > 0 && ts.Relevance.ValueOrZero() < minRelevance {
				continue
			}
			if !ts.Score.Valid {
				continue
			}
			sum += ts.Score.Float64
			n++
		}
	}

	item := entity.Item{
		Ticker:       ticker,
		ArticleCount: len(feed.Articles),
		Good:         null.BoolFrom(false),
	}
	if n > 0 {
		avg := sum / float64(n)
		item.AvgSentiment = null.FloatFrom(avg)
		item.Label = null.StringFrom(labelFor(avg))
		item.Good = null.BoolFrom(avg >= threshold)
	}
	return item
}

func labelFor(avg float64) string {
	switch {
	case avg > 0:
		return entity.LabelPositive
	case avg < 0:
		return entity.LabelNegative
	default:
		return entity.LabelNeutral
	}
}

// dedupUpper uppercases tickers and drops duplicates and blanks, keeping
// first-seen order.
func dedupUpper(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		upper := strings.ToUpper(strings.TrimSpace(t))
		if upper == "" {
			continue
		}
		if _, ok := seen[upper]; ok {
			continue
		}
		seen[upper] = struct{}{}
		out = append(out, upper)
	}
	return out
}
