// Package handler provides the HTTP handlers for the sentiment feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_gateway/internal/api"
	"stock_gateway/internal/feature/sentiment/domain/entity"
	"stock_gateway/internal/feature/sentiment/usecase"
)

// SentimentUsecase defines the usecase interface for sentiment aggregation.
// Following Go convention, the interface is defined on the consumer side.
type SentimentUsecase interface {
	Aggregate(ctx context.Context, q usecase.Query) ([]entity.Item, error)
}

// SentimentHandler handles HTTP requests for news sentiment aggregates.
type SentimentHandler struct {
	uc SentimentUsecase
}

// NewSentimentHandler creates a SentimentHandler with the given usecase.
func NewSentimentHandler(uc SentimentUsecase) *SentimentHandler {
	return &SentimentHandler{uc: uc}
}

// GetSentiment aggregates news sentiment per requested ticker.
//
// Example:
// GET /api/v1/sentiment/?tickers=AAPL&tickers=MSFT&good_threshold=0.1
func (h *SentimentHandler) GetSentiment(c *gin.Context) {
	threshold, err := floatQuery(c, "good_threshold", usecase.DefaultThreshold)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	minRelevance, err := floatQuery(c, "min_relevance", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	limit, err := intQuery(c, "limit", usecase.DefaultLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	q := usecase.Query{
		Tickers:       c.QueryArray("tickers"),
		GoodThreshold: threshold,
		Limit:         limit,
		Topics:        c.QueryArray("topics"),
		TimeFrom:      c.Query("time_from"),
		TimeTo:        c.Query("time_to"),
		Sort:          c.DefaultQuery("sort", usecase.DefaultSort),
		MinRelevance:  minRelevance,
	}

	items, err := h.uc.Aggregate(c.Request.Context(), q)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	out := api.SentimentResponse{
		Tickers:       make([]string, 0, len(items)),
		UsedThreshold: threshold,
		Results:       make([]api.SentimentItem, 0, len(items)),
	}
	for _, item := range items {
		out.Tickers = append(out.Tickers, item.Ticker)
		out.Results = append(out.Results, api.SentimentItem{
			Ticker:       item.Ticker,
			ArticleCount: item.ArticleCount,
			AvgSentiment: item.AvgSentiment,
			Label:        item.Label,
			Good:         item.Good,
		})
	}

	c.JSON(http.StatusOK, out)
}

func floatQuery(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return v, nil
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNoTickers):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotConfigured):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
