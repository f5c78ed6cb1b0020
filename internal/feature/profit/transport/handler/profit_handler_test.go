package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"

	"stock_gateway/internal/feature/profit/domain/entity"
	"stock_gateway/internal/feature/profit/usecase"
)

type mockProfitUsecase struct {
	getFunc func(ctx context.Context, symbol, asOf string) (entity.Result, error)
}

func (m *mockProfitUsecase) GetProfit(ctx context.Context, symbol, asOf string) (entity.Result, error) {
	return m.getFunc(ctx, symbol, asOf)
}

func setupRouter(uc ProfitUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/profit/:symbol", NewProfitHandler(uc).GetProfit)
	return r
}

func TestGetProfit_Success(t *testing.T) {
	var gotSymbol, gotAsOf string
	uc := &mockProfitUsecase{
		getFunc: func(ctx context.Context, symbol, asOf string) (entity.Result, error) {
			gotSymbol, gotAsOf = symbol, asOf
			return entity.Result{
				AsOf:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				PriceThen: null.FloatFrom(186.22),
				PriceNow:  null.FloatFrom(221.14),
				Profit:    null.FloatFrom(34.92),
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profit/aapl?as_of=2024-01-15", nil)
	setupRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "aapl", gotSymbol)
	assert.Equal(t, "2024-01-15", gotAsOf)

	assert.JSONEq(t, `{
		"symbol": "AAPL",
		"as_of": "2024-01-15T00:00:00Z",
		"price_then": 186.22,
		"price_now": 221.14,
		"profit": 34.92
	}`, w.Body.String())
}

func TestGetProfit_NullPricesPassThrough(t *testing.T) {
	uc := &mockProfitUsecase{
		getFunc: func(ctx context.Context, symbol, asOf string) (entity.Result, error) {
			return entity.Result{
				AsOf:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				PriceNow: null.FloatFrom(221.14),
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profit/AAPL?as_of=2024-01-15", nil)
	setupRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"symbol": "AAPL",
		"as_of": "2024-01-15T00:00:00Z",
		"price_then": null,
		"price_now": 221.14,
		"profit": null
	}`, w.Body.String())
}

func TestGetProfit_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid as_of", usecase.ErrInvalidAsOf, http.StatusBadRequest},
		{"missing api key", usecase.ErrNotConfigured, http.StatusInternalServerError},
		{"provider failure", assert.AnError, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockProfitUsecase{
				getFunc: func(ctx context.Context, symbol, asOf string) (entity.Result, error) {
					return entity.Result{}, tt.err
				},
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/profit/AAPL", nil)
			setupRouter(uc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, `{"error": "`+tt.err.Error()+`"}`, w.Body.String())
		})
	}
}
