// Package entity defines the domain models for the profit feature.
package entity

import (
	"time"

	"github.com/guregu/null/v6"
)

// Result is the price move of a symbol since a reference instant, computed
// per request and never stored.
type Result struct {
	AsOf      time.Time // normalized reference instant, UTC
	PriceThen null.Float
	PriceNow  null.Float
	Profit    null.Float // PriceNow - PriceThen, null unless both are present
}
