package api

import "github.com/guregu/null/v6"

// EventItem is a single event or news item related to a stock.
type EventItem struct {
	Title       string      `json:"title"`
	URL         null.String `json:"url"`
	Source      null.String `json:"source"`
	PublishedAt null.Time   `json:"published_at"` // UTC
	Summary     null.String `json:"summary"`
}

// LatestEventsResponse is the body for GET /latestevents/.
type LatestEventsResponse struct {
	Symbol string      `json:"symbol"`
	Events []EventItem `json:"events"`
}
