// Package entity defines the domain models for the estimates feature.
package entity

import "github.com/guregu/null/v6"

// Period kinds for an estimate point.
const (
	PeriodAnnual    = "annual"
	PeriodQuarterly = "quarterly"
)

// Revision trend classifications.
const (
	SignGood = "good"
	SignBad  = "bad"
	SignFlat = "flat"
)

// RevisionSignal is a derived fact about a revision history. Sign is
// non-null exactly when Revised is true, and Delta equals Last minus First
// whenever both are present.
type RevisionSignal struct {
	Revised bool
	First   null.Float
	Last    null.Float
	Delta   null.Float
	Sign    null.String
}

// NewRevisionSignal derives a trend from a chronological revision history,
// oldest first. The ordering of values is significant: the signal compares
// the first and last elements, not min and max. Fewer than two values
// yields no signal; ties yield flat. No smoothing or outlier handling.
func NewRevisionSignal(values []float64) RevisionSignal {
	if len(values) < 2 {
		return RevisionSignal{}
	}
	first, last := values[0], values[len(values)-1]
	sign := SignFlat
	switch {
	case last > first:
		sign = SignGood
	case last < first:
		sign = SignBad
	}
	return RevisionSignal{
		Revised: true,
		First:   null.FloatFrom(first),
		Last:    null.FloatFrom(last),
		Delta:   null.FloatFrom(last - first),
		Sign:    null.StringFrom(sign),
	}
}

// EstimatePoint is one fiscal period's consensus earnings estimate,
// built fresh per request and never mutated after construction.
type EstimatePoint struct {
	FiscalDateEnding null.String
	Period           string // PeriodAnnual or PeriodQuarterly
	Quarter          null.String

	EpsAvg         null.Float
	EpsLow         null.Float
	EpsHigh        null.Float
	EpsNumAnalysts null.Int

	RevenueAvg         null.Float
	RevenueLow         null.Float
	RevenueHigh        null.Float
	RevenueNumAnalysts null.Int

	EpsRevision     RevisionSignal
	RevenueRevision RevisionSignal
}

// Set groups the located annual and quarterly estimate points of one
// provider payload.
type Set struct {
	Annual    []EstimatePoint
	Quarterly []EstimatePoint
}
