// Package handler provides the HTTP handlers for the timeseries feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_gateway/internal/api"
	"stock_gateway/internal/feature/timeseries/domain/entity"
	"stock_gateway/internal/feature/timeseries/usecase"
)

// TimeseriesUsecase defines the usecase interface for time series queries.
// Following Go convention, the interface is defined on the consumer side.
type TimeseriesUsecase interface {
	GetTimeSeries(ctx context.Context, symbol, interval, source string, limit int) ([]entity.Point, error)
}

// TimeseriesHandler handles HTTP requests for time series data.
type TimeseriesHandler struct {
	uc TimeseriesUsecase
}

// NewTimeseriesHandler creates a TimeseriesHandler with the given usecase.
func NewTimeseriesHandler(uc TimeseriesUsecase) *TimeseriesHandler {
	return &TimeseriesHandler{uc: uc}
}

// GetTimeSeries returns normalized OHLCV points for a symbol.
//
// Example:
// GET /api/v1/timeseries/AAPL?interval=1d&limit=100&source=polygon
func (h *TimeseriesHandler) GetTimeSeries(c *gin.Context) {
	symbol := c.Param("symbol")
	interval := c.DefaultQuery("interval", usecase.IntervalDaily)
	source := c.DefaultQuery("source", usecase.SourcePolygon)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultLimit)))

	points, err := h.uc.GetTimeSeries(c.Request.Context(), symbol, interval, source, limit)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	out := api.TimeSeriesResponse{
		Symbol:   strings.ToUpper(symbol),
		Interval: interval,
		Points:   make([]api.TimeSeriesPoint, 0, len(points)),
	}
	for _, p := range points {
		out.Points = append(out.Points, api.TimeSeriesPoint{
			Timestamp: p.Time.UTC(),
			Open:      p.Open,
			High:      p.High,
			Low:       p.Low,
			Close:     p.Close,
			Volume:    p.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrUnsupportedInterval), errors.Is(err, usecase.ErrUnknownSource):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotConfigured):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
