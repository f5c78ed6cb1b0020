package api

import "github.com/guregu/null/v6"

// RevisionSignal reports how a revision history trended.
type RevisionSignal struct {
	Revised bool        `json:"revised"` // true if >= 2 values were observed
	First   null.Float  `json:"first"`
	Last    null.Float  `json:"last"`
	Delta   null.Float  `json:"delta"` // last - first when both are available
	Sign    null.String `json:"sign"`  // good | bad | flat, null if insufficient data
}

// EstimatePoint is one fiscal period's consensus estimate.
type EstimatePoint struct {
	FiscalDateEnding   null.String    `json:"fiscal_date_ending"`
	Period             string         `json:"period"` // annual | quarterly
	Quarter            null.String    `json:"quarter"`
	EpsAvg             null.Float     `json:"eps_avg"`
	EpsLow             null.Float     `json:"eps_low"`
	EpsHigh            null.Float     `json:"eps_high"`
	EpsNumAnalysts     null.Int       `json:"eps_num_analysts"`
	RevenueAvg         null.Float     `json:"revenue_avg"`
	RevenueLow         null.Float     `json:"revenue_low"`
	RevenueHigh        null.Float     `json:"revenue_high"`
	RevenueNumAnalysts null.Int       `json:"revenue_num_analysts"`
	EpsRevision        RevisionSignal `json:"eps_revision"`
	RevenueRevision    RevisionSignal `json:"revenue_revision"`
}

// EstimatesResponse is the body for GET /estimates/:symbol.
type EstimatesResponse struct {
	Symbol string          `json:"symbol"`
	Period string          `json:"period"` // annual | quarterly | both
	Points []EstimatePoint `json:"points"`
}
