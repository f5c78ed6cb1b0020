// Package entity defines the domain models for the sentiment feature.
package entity

import "github.com/guregu/null/v6"

// Sentiment labels derived from the sign of the average score.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// TickerScore is one per-ticker sentiment entry inside an article.
type TickerScore struct {
	Ticker    string
	Score     null.Float
	Relevance null.Float
}

// Article is one news feed item with its per-ticker sentiment entries.
type Article struct {
	Sentiments []TickerScore
}

// Feed is the provider response for one ticker query. Throttled marks a
// rate-limited call that returned a marker instead of articles; it is not
// an error, the caller emits a data-free item for the ticker.
type Feed struct {
	Throttled bool
	Articles  []Article
}

// Item is the per-ticker aggregate. ArticleCount counts feed articles, not
// matched sentiment entries. When the call was throttled every nullable
// field is null; a successful call with no matching scores keeps
// AvgSentiment and Label null but reports Good=false.
type Item struct {
	Ticker       string
	ArticleCount int
	AvgSentiment null.Float
	Label        null.String
	Good         null.Bool
}
