// Package handler provides the HTTP handlers for the profit feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_gateway/internal/api"
	"stock_gateway/internal/feature/profit/domain/entity"
	"stock_gateway/internal/feature/profit/usecase"
)

// ProfitUsecase defines the usecase interface for profit queries.
// Following Go convention, the interface is defined on the consumer side.
type ProfitUsecase interface {
	GetProfit(ctx context.Context, symbol, asOf string) (entity.Result, error)
}

// ProfitHandler handles HTTP requests for profit-since-date calculations.
type ProfitHandler struct {
	uc ProfitUsecase
}

// NewProfitHandler creates a ProfitHandler with the given usecase.
func NewProfitHandler(uc ProfitUsecase) *ProfitHandler {
	return &ProfitHandler{uc: uc}
}

// GetProfit returns the price move of a symbol since a reference date.
//
// Example:
// GET /api/v1/profit/AAPL?as_of=2024-01-15
func (h *ProfitHandler) GetProfit(c *gin.Context) {
	symbol := c.Param("symbol")
	asOf := c.Query("as_of")

	result, err := h.uc.GetProfit(c.Request.Context(), symbol, asOf)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.ProfitResponse{
		Symbol:    strings.ToUpper(symbol),
		AsOf:      result.AsOf,
		PriceThen: result.PriceThen,
		PriceNow:  result.PriceNow,
		Profit:    result.Profit,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidAsOf):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotConfigured):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
