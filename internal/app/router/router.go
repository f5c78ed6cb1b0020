// Package router wires handlers to routes.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	chathandler "stock_gateway/internal/feature/chat/transport/handler"
	estimateshandler "stock_gateway/internal/feature/estimates/transport/handler"
	profithandler "stock_gateway/internal/feature/profit/transport/handler"
	sentimenthandler "stock_gateway/internal/feature/sentiment/transport/handler"
	timeserieshandler "stock_gateway/internal/feature/timeseries/transport/handler"
	"stock_gateway/internal/interface/handler"
)

// NewRouter assembles the gin engine with every route of the gateway.
func NewRouter(
	timeseries *timeserieshandler.TimeseriesHandler,
	estimates *estimateshandler.EstimatesHandler,
	sentiment *sentimenthandler.SentimentHandler,
	profit *profithandler.ProfitHandler,
	chat *chathandler.ChatHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// service metadata and liveness
	r.GET("/", handler.Root)
	for _, path := range []string{"/health", "/healthz"} {
		r.GET(path, handler.Health)
		r.HEAD(path, handler.Health)
		r.OPTIONS(path, handler.Health)
	}

	v1 := r.Group(handler.APIPrefix)
	{
		v1.GET("/timeseries/:symbol", timeseries.GetTimeSeries)
		v1.GET("/estimates/:symbol", estimates.GetEstimates)
		v1.GET("/sentiment/", sentiment.GetSentiment)
		v1.GET("/profit/:symbol", profit.GetProfit)
		v1.POST("/chat", chat.PostChat)
		v1.GET("/quarterly/:symbol", handler.Quarterly)
		v1.GET("/latestevents/", handler.LatestEvents)
	}

	return r
}
