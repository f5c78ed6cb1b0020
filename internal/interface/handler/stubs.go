package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_gateway/internal/api"
)

// Quarterly reserves the quarterly-fundamentals route. The response shape
// is final; the data source is not wired up yet.
//
// TODO: back this with an SEC company-facts fetch once a filings provider
// is chosen.
func Quarterly(c *gin.Context) {
	c.JSON(http.StatusOK, api.QuarterlyResponse{
		Symbol:   strings.ToUpper(c.Param("symbol")),
		Quarters: []api.QuarterlyMetrics{},
	})
}

// LatestEvents reserves the company-events route. The response shape is
// final; the data source is not wired up yet.
func LatestEvents(c *gin.Context) {
	c.JSON(http.StatusOK, api.LatestEventsResponse{
		Symbol: strings.ToUpper(c.Query("symbol")),
		Events: []api.EventItem{},
	})
}
