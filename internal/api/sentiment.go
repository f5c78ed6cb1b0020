package api

import "github.com/guregu/null/v6"

// SentimentItem is the per-ticker news sentiment aggregate. Every nullable
// field is null when the provider throttled the call for that ticker.
type SentimentItem struct {
	Ticker       string      `json:"ticker"`
	ArticleCount int         `json:"article_count"`
	AvgSentiment null.Float  `json:"avg_sentiment"`
	Label        null.String `json:"label"` // Positive | Negative | Neutral
	Good         null.Bool   `json:"good"`
}

// SentimentResponse is the body for GET /sentiment/.
type SentimentResponse struct {
	Tickers       []string        `json:"tickers"` // deduplicated, first-seen order
	UsedThreshold float64         `json:"used_threshold"`
	Results       []SentimentItem `json:"results"`
}
