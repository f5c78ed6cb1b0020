// Package usecase implements the business rules for the estimates feature.
package usecase

import (
	"context"
	"strings"

	"stock_gateway/internal/feature/estimates/domain/entity"
)

const (
	// PeriodBoth selects annual and quarterly estimates together.
	PeriodBoth = "both"
	// DefaultLimit is the default number of entries returned per period.
	DefaultLimit = 4
	// MaxLimit is the maximum number of entries returned per period.
	MaxLimit = 20
)

// EstimatesRepository abstracts the earnings-estimate provider.
// Following Go convention, the interface is defined on the consumer side.
type EstimatesRepository interface {
	FetchEstimates(ctx context.Context, symbol string) (entity.Set, error)
}

type estimatesUsecase struct {
	repo EstimatesRepository
}

// NewEstimatesUsecase creates an estimates usecase over the provider
// adapter.
func NewEstimatesUsecase(repo EstimatesRepository) *estimatesUsecase {
	return &estimatesUsecase{repo: repo}
}

// GetEstimates fetches the estimate set for a symbol and returns the
// requested periods, each truncated to limit entries. Annual points come
// first when both periods are requested. An out-of-range limit falls back
// to the default.
func (u *estimatesUsecase) GetEstimates(ctx context.Context, symbol, period string, limit int) ([]entity.EstimatePoint, error) {
	switch period {
	case entity.PeriodAnnual, entity.PeriodQuarterly, PeriodBoth:
	default:
		return nil, ErrInvalidPeriod
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	set, err := u.repo.FetchEstimates(ctx, strings.ToUpper(symbol))
	if err != nil {
		return nil, err
	}

	points := make([]entity.EstimatePoint, 0, 2*limit)
	if period == entity.PeriodAnnual || period == PeriodBoth {
		points = append(points, head(set.Annual, limit)...)
	}
	if period == entity.PeriodQuarterly || period == PeriodBoth {
		points = append(points, head(set.Quarterly, limit)...)
	}
	return points, nil
}

func head(points []entity.EstimatePoint, n int) []entity.EstimatePoint {
	if len(points) > n {
		return points[:n]
	}
	return points
}
