package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"

	"stock_gateway/internal/feature/estimates/domain/entity"
	"stock_gateway/internal/feature/estimates/usecase"
)

type mockEstimatesUsecase struct {
	getFunc func(ctx context.Context, symbol, period string, limit int) ([]entity.EstimatePoint, error)
}

func (m *mockEstimatesUsecase) GetEstimates(ctx context.Context, symbol, period string, limit int) ([]entity.EstimatePoint, error) {
	return m.getFunc(ctx, symbol, period, limit)
}

func setupRouter(uc EstimatesUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/estimates/:symbol", NewEstimatesHandler(uc).GetEstimates)
	return r
}

func TestGetEstimates_Success(t *testing.T) {
	var gotSymbol, gotPeriod string
	var gotLimit int
	uc := &mockEstimatesUsecase{
		getFunc: func(ctx context.Context, symbol, period string, limit int) ([]entity.EstimatePoint, error) {
			gotSymbol, gotPeriod, gotLimit = symbol, period, limit
			return []entity.EstimatePoint{
				{
					Period:           entity.PeriodAnnual,
					FiscalDateEnding: null.StringFrom("2025-09-30"),
					EpsAvg:           null.FloatFrom(5.2),
					EpsLow:           null.FloatFrom(5.0),
					EpsHigh:          null.FloatFrom(5.5),
					EpsNumAnalysts:   null.IntFrom(32),
					EpsRevision: entity.RevisionSignal{
						Revised: true,
						First:   null.FloatFrom(5.0),
						Last:    null.FloatFrom(5.3),
						Delta:   null.FloatFrom(0.3),
						Sign:    null.StringFrom(entity.SignGood),
					},
				},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/estimates/aapl?period=annual&limit=2", nil)
	setupRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "aapl", gotSymbol)
	assert.Equal(t, "annual", gotPeriod)
	assert.Equal(t, 2, gotLimit)

	assert.JSONEq(t, `{
		"symbol": "AAPL",
		"period": "annual",
		"points": [
			{
				"fiscal_date_ending": "2025-09-30",
				"period": "annual",
				"quarter": null,
				"eps_avg": 5.2,
				"eps_low": 5.0,
				"eps_high": 5.5,
				"eps_num_analysts": 32,
				"revenue_avg": null,
				"revenue_low": null,
				"revenue_high": null,
				"revenue_num_analysts": null,
				"eps_revision": {"revised": true, "first": 5.0, "last": 5.3, "delta": 0.3, "sign": "good"},
				"revenue_revision": {"revised": false, "first": null, "last": null, "delta": null, "sign": null}
			}
		]
	}`, w.Body.String())
}

func TestGetEstimates_DefaultsPeriodAndLimit(t *testing.T) {
	var gotPeriod string
	var gotLimit int
	uc := &mockEstimatesUsecase{
		getFunc: func(ctx context.Context, symbol, period string, limit int) ([]entity.EstimatePoint, error) {
			gotPeriod, gotLimit = period, limit
			return nil, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/estimates/AAPL", nil)
	setupRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecase.PeriodBoth, gotPeriod)
	assert.Equal(t, usecase.DefaultLimit, gotLimit)
	assert.JSONEq(t, `{"symbol": "AAPL", "period": "both", "points": []}`, w.Body.String())
}

func TestGetEstimates_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid period", usecase.ErrInvalidPeriod, http.StatusBadRequest},
		{"missing api key", usecase.ErrNotConfigured, http.StatusInternalServerError},
		{"provider throttle", usecase.ErrProviderRejected, http.StatusBadGateway},
		{"unexpected failure", errors.New("connection reset"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockEstimatesUsecase{
				getFunc: func(ctx context.Context, symbol, period string, limit int) ([]entity.EstimatePoint, error) {
					return nil, tt.err
				},
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/estimates/AAPL", nil)
			setupRouter(uc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, `{"error": "`+tt.err.Error()+`"}`, w.Body.String())
		})
	}
}
