// Package usecase implements the business rules for the timeseries feature.
package usecase

import (
	"context"
	"strings"

	"stock_gateway/internal/feature/timeseries/domain/entity"
)

const (
	// IntervalDaily is the only interval currently supported.
	IntervalDaily = "1d"
	// DefaultLimit is the default number of points returned.
	DefaultLimit = 100
	// MaxLimit is the maximum number of points returned.
	MaxLimit = 5000

	// SourcePolygon selects the epoch-millisecond aggregate provider.
	SourcePolygon = "polygon"
	// SourceAlphaVantage selects the date-keyed daily series provider.
	SourceAlphaVantage = "alphavantage"
)

// MarketRepository abstracts one daily-bar provider. Implementations fetch
// and normalize; the returned points are ascending by time.
// Following Go convention, the interface is defined on the consumer side.
type MarketRepository interface {
	GetDailySeries(ctx context.Context, symbol string, limit int) ([]entity.Point, error)
}

type timeseriesUsecase struct {
	polygon      MarketRepository
	alphavantage MarketRepository
}

// NewTimeseriesUsecase creates a timeseries usecase over the two provider
// adapters.
func NewTimeseriesUsecase(polygon, alphavantage MarketRepository) *timeseriesUsecase {
	return &timeseriesUsecase{polygon: polygon, alphavantage: alphavantage}
}

// GetTimeSeries validates the caller input and fetches the daily series
// from the selected provider. An out-of-range limit falls back to the
// default.
func (u *timeseriesUsecase) GetTimeSeries(ctx context.Context, symbol, interval, source string, limit int) ([]entity.Point, error) {
	if interval != IntervalDaily {
		return nil, ErrUnsupportedInterval
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	symbol = strings.ToUpper(symbol)

	switch source {
	case "", SourcePolygon:
		return u.polygon.GetDailySeries(ctx, symbol, limit)
	case SourceAlphaVantage:
		return u.alphavantage.GetDailySeries(ctx, symbol, limit)
	default:
		return nil, ErrUnknownSource
	}
}
