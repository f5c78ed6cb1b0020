package api

import "github.com/guregu/null/v6"

// QuarterlyMetrics holds key quarterly fundamentals for a company. Field
// names mirror the upstream filing taxonomy.
type QuarterlyMetrics struct {
	FiscalQuarter   string      `json:"fiscal_quarter"` // e.g. 2025Q1
	FilingDate      null.String `json:"filing_date"`
	PeriodEndDate   null.String `json:"period_end_date"`
	Revenue         null.Float  `json:"revenue"`
	SalesRevenueNet null.Float  `json:"salesRevenueNet"`
	NetIncomeLoss   null.Float  `json:"NetIncomeLoss"`
}

// QuarterlyResponse is the body for GET /quarterly/:symbol.
type QuarterlyResponse struct {
	Symbol   string             `json:"symbol"`
	Quarters []QuarterlyMetrics `json:"quarters"`
}
