// Package handler provides the HTTP handlers for the estimates feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_gateway/internal/api"
	"stock_gateway/internal/feature/estimates/domain/entity"
	"stock_gateway/internal/feature/estimates/usecase"
)

// EstimatesUsecase defines the usecase interface for estimate queries.
// Following Go convention, the interface is defined on the consumer side.
type EstimatesUsecase interface {
	GetEstimates(ctx context.Context, symbol, period string, limit int) ([]entity.EstimatePoint, error)
}

// EstimatesHandler handles HTTP requests for earnings estimates.
type EstimatesHandler struct {
	uc EstimatesUsecase
}

// NewEstimatesHandler creates an EstimatesHandler with the given usecase.
func NewEstimatesHandler(uc EstimatesUsecase) *EstimatesHandler {
	return &EstimatesHandler{uc: uc}
}

// GetEstimates returns EPS and revenue estimates with revision trend
// signals.
//
// Example:
// GET /api/v1/estimates/AAPL?period=both&limit=4
func (h *EstimatesHandler) GetEstimates(c *gin.Context) {
	symbol := c.Param("symbol")
	period := c.DefaultQuery("period", usecase.PeriodBoth)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultLimit)))

	points, err := h.uc.GetEstimates(c.Request.Context(), symbol, period, limit)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	out := api.EstimatesResponse{
		Symbol: strings.ToUpper(symbol),
		Period: period,
		Points: make([]api.EstimatePoint, 0, len(points)),
	}
	for _, p := range points {
		out.Points = append(out.Points, api.EstimatePoint{
			FiscalDateEnding:   p.FiscalDateEnding,
			Period:             p.Period,
			Quarter:            p.Quarter,
			EpsAvg:             p.EpsAvg,
			EpsLow:             p.EpsLow,
			EpsHigh:            p.EpsHigh,
			EpsNumAnalysts:     p.EpsNumAnalysts,
			RevenueAvg:         p.RevenueAvg,
			RevenueLow:         p.RevenueLow,
			RevenueHigh:        p.RevenueHigh,
			RevenueNumAnalysts: p.RevenueNumAnalysts,
			EpsRevision:        toRevisionSignal(p.EpsRevision),
			RevenueRevision:    toRevisionSignal(p.RevenueRevision),
		})
	}

	c.JSON(http.StatusOK, out)
}

func toRevisionSignal(s entity.RevisionSignal) api.RevisionSignal {
	return api.RevisionSignal{
		Revised: s.Revised,
		First:   s.First,
		Last:    s.Last,
		Delta:   s.Delta,
		Sign:    s.Sign,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotConfigured):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
