package engine

import (
	"sort"

	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
)

// strategySpec pairs a strategy's screening predicate with the field
// its results are ranked by. The specs table covers every strategy in
// enum.Strategies, so dispatch never falls through on a valid tag.
type strategySpec struct {
	match   func(*models.Recommendation) bool
	rankKey func(*models.Recommendation) float64
	// narrowFetch controls whether the storage fetch is narrowed to
	// rows tagged with the strategy. The defensive screen is
	// strategy-agnostic: it screens the whole book on sector
	// membership and risk level.
	narrowFetch bool
}

var defensiveSectors = map[string]bool{
	"Healthcare":       true,
	"Consumer Staples": true,
	"Utilities":        true,
}

var growthSectors = map[string]bool{
	"Technology":             true,
	"Communication Services": true,
	"Healthcare":             true,
	"Consumer Discretionary": true,
}

func convictionKey(r *models.Recommendation) float64 {
	return r.ConvictionScore
}

func upsideKey(r *models.Recommendation) float64 {
	return r.UpsidePercent
}

var strategySpecs = map[enum.Strategy]strategySpec{
	enum.Defensive: {
		match: func(r *models.Recommendation) bool {
			return defensiveSectors[r.SectorName()] || r.RiskLevel == enum.RiskLow
		},
		rankKey: convictionKey,
	},
	enum.Growth: {
		match: func(r *models.Recommendation) bool {
			return growthSectors[r.SectorName()] && len(r.Catalysts) >= 3
		},
		rankKey:     convictionKey,
		narrowFetch: true,
	},
	enum.Value: {
		match: func(r *models.Recommendation) bool {
			// a record with no pe metric at all is not screenable as
			// value; it is excluded rather than treated as pe=0
			pe, ok := r.ValuationMetrics.PE()
			return ok && pe < 20 && r.UpsidePercent > 10
		},
		rankKey:     upsideKey,
		narrowFetch: true,
	},
	enum.Contrarian: {
		match: func(r *models.Recommendation) bool {
			return r.UpsidePercent > 15 && len(r.Catalysts) > len(r.Risks)
		},
		rankKey:     upsideKey,
		narrowFetch: true,
	},
}

// screen keeps the recommendations matching the predicate,
// preserving input order.
func screen(recs []*models.Recommendation, match func(*models.Recommendation) bool) []*models.Recommendation {
	out := make([]*models.Recommendation, 0, len(recs))
	for _, r := range recs {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// rank sorts descending by key. The sort is stable: ties keep their
// input order, which makes every ranking deterministic for a fixed
// snapshot.
func rank(recs []*models.Recommendation, key func(*models.Recommendation) float64) {
	sort.SliceStable(recs, func(i, j int) bool {
		return key(recs[i]) > key(recs[j])
	})
}

func head(recs []*models.Recommendation, limit int) []*models.Recommendation {
	if limit >= 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
