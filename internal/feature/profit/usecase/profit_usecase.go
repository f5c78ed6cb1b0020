// Package usecase implements the business rules for the profit feature.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/guregu/null/v6"

	"stock_gateway/internal/feature/profit/domain/entity"
)

// PriceRepository abstracts the historical price provider.
// Following Go convention, the interface is defined on the consumer side.
type PriceRepository interface {
	// FetchDayClose returns the closing price on the given UTC day, null
	// when the market produced no bar for it.
	FetchDayClose(ctx context.Context, symbol string, day time.Time) (null.Float, error)
	// FetchPreviousClose returns the most recent available closing price.
	FetchPreviousClose(ctx context.Context, symbol string) (null.Float, error)
}

type profitUsecase struct {
	repo PriceRepository
}

// NewProfitUsecase creates a profit usecase over the price adapter.
func NewProfitUsecase(repo PriceRepository) *profitUsecase {
	return &profitUsecase{repo: repo}
}

// GetProfit computes the price move of a symbol between the as_of day and
// the most recent close. Either price may be missing, the difference is
// null unless both are present.
func (u *profitUsecase) GetProfit(ctx context.Context, symbol, asOf string) (entity.Result, error) {
	ref, err := ParseAsOf(asOf)
	if err != nil {
		return entity.Result{}, err
	}
	symbol = strings.ToUpper(symbol)

	day := ref.Truncate(24 * time.Hour)
	then, err := u.repo.FetchDayClose(ctx, symbol, day)
	if err != nil {
		return entity.Result{}, err
	}
	now, err := u.repo.FetchPreviousClose(ctx, symbol)
	if err != nil {
		return entity.Result{}, err
	}

	result := entity.Result{AsOf: ref, PriceThen: then, PriceNow: now}
	if then.Valid && now.Valid {
		result.Profit = null.FloatFrom(now.Float64 - then.Float64)
	}
	return result, nil
}

// asOfLayouts are tried in order. A bare date normalizes to UTC midnight;
// a zoneless datetime is taken as UTC.
var asOfLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseAsOf normalizes the caller's reference instant to UTC.
func ParseAsOf(raw string) (time.Time, error) {
	for _, layout := range asOfLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidAsOf
}
