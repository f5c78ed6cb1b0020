package api

import (
	"time"

	"github.com/guregu/null/v6"
)

// TimeSeriesPoint is a single observation in a time series. Fields other
// than the timestamp are null when the provider value could not be parsed.
type TimeSeriesPoint struct {
	Timestamp time.Time  `json:"timestamp"` // UTC
	Open      null.Float `json:"open"`
	High      null.Float `json:"high"`
	Low       null.Float `json:"low"`
	Close     null.Float `json:"close"`
	Volume    null.Float `json:"volume"`
}

// TimeSeriesResponse is the body for GET /timeseries/:symbol.
type TimeSeriesResponse struct {
	Symbol   string            `json:"symbol"`
	Interval string            `json:"interval"`
	Points   []TimeSeriesPoint `json:"points"`
}
