package main

import (
	"log"

	"github.com/joho/godotenv"

	"stock_gateway/internal/app/router"
	browseruse "stock_gateway/internal/feature/chat/adapters/browseruse"
	chathandler "stock_gateway/internal/feature/chat/transport/handler"
	chatusecase "stock_gateway/internal/feature/chat/usecase"
	estimatesav "stock_gateway/internal/feature/estimates/adapters/alphavantage"
	estimateshandler "stock_gateway/internal/feature/estimates/transport/handler"
	estimatesusecase "stock_gateway/internal/feature/estimates/usecase"
	profitpolygon "stock_gateway/internal/feature/profit/adapters/polygon"
	profithandler "stock_gateway/internal/feature/profit/transport/handler"
	profitusecase "stock_gateway/internal/feature/profit/usecase"
	sentimentav "stock_gateway/internal/feature/sentiment/adapters/alphavantage"
	sentimenthandler "stock_gateway/internal/feature/sentiment/transport/handler"
	sentimentusecase "stock_gateway/internal/feature/sentiment/usecase"
	timeseriesav "stock_gateway/internal/feature/timeseries/adapters/alphavantage"
	timeseriespolygon "stock_gateway/internal/feature/timeseries/adapters/polygon"
	timeserieshandler "stock_gateway/internal/feature/timeseries/transport/handler"
	timeseriesusecase "stock_gateway/internal/feature/timeseries/usecase"
	platformhttp "stock_gateway/internal/platform/http"
	"stock_gateway/internal/shared/ratelimiter"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] no .env file found, relying on the environment")
	}

	// Config
	polygonCfg := timeseriespolygon.LoadConfig()
	alphaCfg := timeseriesav.LoadConfig()
	estimatesCfg := estimatesav.LoadConfig()
	sentimentCfg := sentimentav.LoadConfig()
	profitCfg := profitpolygon.LoadConfig()
	browserCfg := browseruse.LoadConfig()

	// HTTP clients: one shared client for the market providers, a
	// long-timeout one for browser tasks.
	marketClient := platformhttp.NewHTTPClient(polygonCfg.Timeout)
	browserClient := platformhttp.NewHTTPClient(browserCfg.Timeout)

	// Adapters
	polygonMarket := timeseriespolygon.NewMarket(polygonCfg, marketClient)
	alphaDaily := timeseriesav.NewDaily(alphaCfg, marketClient)
	estimatesRepo := estimatesav.NewRepository(estimatesCfg, marketClient)
	newsRepo := sentimentav.NewNews(sentimentCfg, marketClient)
	pricesRepo := profitpolygon.NewPrices(profitCfg, marketClient)
	browserTasks := browseruse.NewClient(browserCfg, browserClient)

	// Usecases
	timeseriesUC := timeseriesusecase.NewTimeseriesUsecase(polygonMarket, alphaDaily)
	estimatesUC := estimatesusecase.NewEstimatesUsecase(estimatesRepo)
	sentimentUC := sentimentusecase.NewSentimentUsecase(newsRepo, ratelimiter.NewInterval(sentimentCfg.CallGap))
	profitUC := profitusecase.NewProfitUsecase(pricesRepo)
	chatUC := chatusecase.NewChatUsecase(browserTasks)

	// Handlers
	timeseriesH := timeserieshandler.NewTimeseriesHandler(timeseriesUC)
	estimatesH := estimateshandler.NewEstimatesHandler(estimatesUC)
	sentimentH := sentimenthandler.NewSentimentHandler(sentimentUC)
	profitH := profithandler.NewProfitHandler(profitUC)
	chatH := chathandler.NewChatHandler(chatUC)

	r := router.NewRouter(timeseriesH, estimatesH, sentimentH, profitH, chatH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
