package alphavantage

import (
	"github.com/guregu/null/v6"

	"stock_gateway/internal/feature/estimates/domain/entity"
	"stock_gateway/internal/shared/jsonprobe"
)

// Alpha Vantage has shipped several shapes for the estimates payload:
// fields nested under "estimate", flattened camelCase, and snake_case.
// Each list below is ordered from most- to least-likely; adding a new
// schema variant means appending a path, nothing else.
var (
	fiscalDatePaths = []jsonprobe.Path{
		{"fiscalDateEnding"}, {"fiscal_date_ending"}, {"fiscal_date"},
	}
	quarterPaths = []jsonprobe.Path{
		{"quarter"}, {"fiscalQuarterEnding"},
	}

	epsAvgPaths = []jsonprobe.Path{
		{"estimate", "eps", "avg"}, {"eps", "avg"}, {"epsAvg"}, {"eps_avg"}, {"epsMean"},
	}
	epsLowPaths = []jsonprobe.Path{
		{"estimate", "eps", "low"}, {"eps", "low"}, {"epsLow"}, {"eps_low"},
	}
	epsHighPaths = []jsonprobe.Path{
		{"estimate", "eps", "high"}, {"eps", "high"}, {"epsHigh"}, {"eps_high"},
	}
	epsAnalystPaths = []jsonprobe.Path{
		{"estimate", "eps", "numAnalysts"}, {"eps", "numAnalysts"}, {"epsNumAnalysts"}, {"numAnalystsEPS"},
	}

	revenueAvgPaths = []jsonprobe.Path{
		{"estimate", "revenue", "avg"}, {"revenue", "avg"}, {"revenueAvg"}, {"revenue_avg"}, {"revenueMean"},
	}
	revenueLowPaths = []jsonprobe.Path{
		{"estimate", "revenue", "low"}, {"revenue", "low"}, {"revenueLow"}, {"revenue_low"},
	}
	revenueHighPaths = []jsonprobe.Path{
		{"estimate", "revenue", "high"}, {"revenue", "high"}, {"revenueHigh"}, {"revenue_high"},
	}
	revenueAnalystPaths = []jsonprobe.Path{
		{"estimate", "revenue", "numAnalysts"}, {"revenue", "numAnalysts"}, {"revenueNumAnalysts"}, {"numAnalystsRevenue"},
	}

	epsRevisionPaths = []jsonprobe.Path{
		{"eps", "avg"}, {"eps", "mean"}, {"epsAvg"}, {"eps_mean"}, {"eps_avg"},
		{"estimate", "eps", "avg"}, {"estimate_avg_eps"},
	}
	revenueRevisionPaths = []jsonprobe.Path{
		{"revenue", "avg"}, {"revenue", "mean"}, {"revenueAvg"}, {"revenue_mean"}, {"revenue_avg"},
		{"estimate", "revenue", "avg"}, {"estimate_avg_revenue"},
	}
)

// parseEstimateNode turns one raw provider estimate record into a canonical
// point. It never fails: a missing or malformed field degrades to null on
// that field only.
func parseEstimateNode(node map[string]any, period string) entity.EstimatePoint {
	point := entity.EstimatePoint{
		Period:           period,
		FiscalDateEnding: jsonprobe.FirstString(node, fiscalDatePaths),
		Quarter:          jsonprobe.FirstString(node, quarterPaths),

		EpsAvg:         jsonprobe.FirstFloat(node, epsAvgPaths),
		EpsLow:         jsonprobe.FirstFloat(node, epsLowPaths),
		EpsHigh:        jsonprobe.FirstFloat(node, epsHighPaths),
		EpsNumAnalysts: intFromFloat(jsonprobe.FirstFloat(node, epsAnalystPaths)),

		RevenueAvg:         jsonprobe.FirstFloat(node, revenueAvgPaths),
		RevenueLow:         jsonprobe.FirstFloat(node, revenueLowPaths),
		RevenueHigh:        jsonprobe.FirstFloat(node, revenueHighPaths),
		RevenueNumAnalysts: intFromFloat(jsonprobe.FirstFloat(node, revenueAnalystPaths)),
	}

	rev := revisionNode(node)
	point.EpsRevision = entity.NewRevisionSignal(extractRevisionValues(rev, "eps"))
	point.RevenueRevision = entity.NewRevisionSignal(extractRevisionValues(rev, "revenue"))

	return point
}

// Analyst counts arrive as floats or numeric strings; they go through the
// float coercion first and are truncated, matching the rest of the numeric
// probing.
func intFromFloat(f null.Float) null.Int {
	if !f.Valid {
		return null.Int{}
	}
	return null.IntFrom(int64(f.Float64))
}

// revisionNode locates the revision-history sub-structure under its known
// key variants. An empty list or map does not stop the probe; the next
// variant may still carry the history.
func revisionNode(node map[string]any) any {
	for _, key := range []string{"revisions", "revisionHistory", "revision_history"} {
		switch v := node[key].(type) {
		case []any:
			if len(v) > 0 {
				return v
			}
		case map[string]any:
			if len(v) > 0 {
				return v
			}
		}
	}
	return nil
}

// extractRevisionValues pulls the sequence of revision values for kind
// ("eps" or "revenue") out of the revision node, preserving provider order.
// The node is either a list of per-snapshot records, or a map keyed by kind
// holding such a list. Snapshots without a usable value are dropped.
func extractRevisionValues(rev any, kind string) []float64 {
	var values []float64

	appendSnapshots := func(snaps []any, paths []jsonprobe.Path) {
		for _, raw := range snaps {
			snap, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if v := jsonprobe.FirstFloat(snap, paths); v.Valid {
				values = append(values, v.Float64)
			}
		}
	}

	switch node := rev.(type) {
	case []any:
		paths := epsRevisionPaths
		if kind == "revenue" {
			paths = revenueRevisionPaths
		}
		appendSnapshots(node, paths)
	case map[string]any:
		if snaps, ok := node[kind].([]any); ok {
			appendSnapshots(snaps, []jsonprobe.Path{{"avg"}, {"mean"}, {kind + "Avg"}, {"value"}})
		}
	}

	return values
}

// pluckLists locates the annual and quarterly estimate lists, whose
// top-level key names vary across API versions. When either list is still
// missing after top-level probing, a nested data/estimates sub-mapping is
// probed for the same variants. A list that cannot be located, or whose
// located value is not actually a list, comes back empty, never nil-typed.
func pluckLists(payload map[string]any) (annual, quarterly []any) {
	annual = firstList(payload, "annualEarningsEstimates", "annual_estimates", "annual")
	quarterly = firstList(payload, "quarterlyEarningsEstimates", "quarterly_estimates", "quarterly")

	if len(annual) == 0 || len(quarterly) == 0 {
		var data map[string]any
		for _, key := range []string{"data", "estimates"} {
			if m, ok := payload[key].(map[string]any); ok && len(m) > 0 {
				data = m
				break
			}
		}
		if data != nil {
			if len(annual) == 0 {
				annual = firstList(data, "annualEarningsEstimates", "annual")
			}
			if len(quarterly) == 0 {
				quarterly = firstList(data, "quarterlyEarningsEstimates", "quarterly")
			}
		}
	}

	return annual, quarterly
}

func firstList(m map[string]any, keys ...string) []any {
	for _, key := range keys {
		if list, ok := m[key].([]any); ok && len(list) > 0 {
			return list
		}
	}
	return []any{}
}

// parseNodes normalizes every record of a located list. Entries that are
// not objects still produce a point, with every probed field null.
func parseNodes(nodes []any, period string) []entity.EstimatePoint {
	points := make([]entity.EstimatePoint, 0, len(nodes))
	for _, raw := range nodes {
		node, _ := raw.(map[string]any)
		points = append(points, parseEstimateNode(node, period))
	}
	return points
}
