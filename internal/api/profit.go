package api

import (
	"time"

	"github.com/guregu/null/v6"
)

// ProfitResponse is the body for GET /profit/:symbol.
type ProfitResponse struct {
	Symbol    string     `json:"symbol"`
	AsOf      time.Time  `json:"as_of"` // normalized reference timestamp, UTC
	PriceThen null.Float `json:"price_then"`
	PriceNow  null.Float `json:"price_now"`
	Profit    null.Float `json:"profit"` // price_now - price_then
}
