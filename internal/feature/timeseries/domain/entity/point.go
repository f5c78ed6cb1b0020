// Package entity defines the domain models for the timeseries feature.
package entity

import (
	"time"

	"github.com/guregu/null/v6"
)

// Point is one OHLCV observation in a daily series. The timestamp is
// required; every price/volume field is null when the provider value could
// not be parsed. Points are ordered ascending by time and never mutated
// after construction.
type Point struct {
	Time   time.Time // UTC timestamp of the bar
	Open   null.Float
	High   null.Float
	Low    null.Float
	Close  null.Float
	Volume null.Float
}
