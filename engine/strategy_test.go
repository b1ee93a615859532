package engine

import (
	"testing"

	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func fixture(ticker, sector string, conviction, upside float64, risk enum.RiskLevel) *models.Recommendation {
	return &models.Recommendation{
		Ticker:          ticker,
		Sector:          &models.Sector{Name: sector},
		ConvictionScore: conviction,
		UpsidePercent:   upside,
		RiskLevel:       risk,
	}
}

func TestValuePredicate(t *testing.T) {
	match := strategySpecs[enum.Value].match

	r := fixture("XOM", "Energy", 8.8, 12, enum.RiskMedium)
	r.ValuationMetrics = models.ValuationMetrics{"pe": 15}
	assert.True(t, match(r))

	r = fixture("NVDA", "Technology", 8.2, 12, enum.RiskHigh)
	r.ValuationMetrics = models.ValuationMetrics{"pe": 25}
	assert.False(t, match(r))

	// upside must strictly exceed 10
	r = fixture("CVX", "Energy", 8.0, 10, enum.RiskMedium)
	r.ValuationMetrics = models.ValuationMetrics{"pe": 10}
	assert.False(t, match(r))

	// a record with no pe metric is excluded, not treated as pe=0
	r = fixture("AMZN", "Consumer Discretionary", 6.5, 30, enum.RiskMedium)
	r.ValuationMetrics = models.ValuationMetrics{"pb": 8}
	assert.False(t, match(r))

	r = fixture("GOOGL", "Communication Services", 7.0, 30, enum.RiskMedium)
	r.ValuationMetrics = nil
	assert.False(t, match(r))
}

func TestGrowthPredicate(t *testing.T) {
	match := strategySpecs[enum.Growth].match

	r := fixture("MSFT", "Technology", 8.5, 14.4, enum.RiskMedium)
	r.Catalysts = pq.StringArray{"AI leadership", "Copilot monetization", "Cloud secular growth"}
	assert.True(t, match(r))

	// two catalysts is not enough
	r.Catalysts = pq.StringArray{"AI leadership", "Copilot monetization"}
	assert.False(t, match(r))

	// sector outside the growth set
	r = fixture("XOM", "Energy", 8.8, 22.1, enum.RiskMedium)
	r.Catalysts = pq.StringArray{"a", "b", "c", "d"}
	assert.False(t, match(r))

	// no sector join matches nothing
	r = fixture("LLY", "Healthcare", 9.0, 23.2, enum.RiskMedium)
	r.Catalysts = pq.StringArray{"a", "b", "c"}
	r.Sector = nil
	assert.False(t, match(r))
}

func TestDefensivePredicate(t *testing.T) {
	match := strategySpecs[enum.Defensive].match

	// defensive sector, any risk
	assert.True(t, match(fixture("UNH", "Healthcare", 9.2, 17.3, enum.RiskHigh)))
	assert.True(t, match(fixture("PG", "Consumer Staples", 8.0, 10.2, enum.RiskMedium)))
	assert.True(t, match(fixture("NEE", "Utilities", 7.0, 11.7, enum.RiskMedium)))

	// low risk outside a defensive sector still matches
	assert.True(t, match(fixture("V", "Financials", 8.1, 13.6, enum.RiskLow)))

	assert.False(t, match(fixture("NVDA", "Technology", 8.2, 15.6, enum.RiskHigh)))
}

func TestContrarianPredicate(t *testing.T) {
	match := strategySpecs[enum.Contrarian].match

	r := fixture("NEM", "Materials", 7.3, 24.7, enum.RiskHigh)
	r.Catalysts = pq.StringArray{"gold hedge", "central bank buying", "supply constrained"}
	r.Risks = pq.StringArray{"cost inflation", "integration risk"}
	assert.True(t, match(r))

	// upside not deep enough
	r.UpsidePercent = 15
	assert.False(t, match(r))

	// catalysts must strictly outnumber risks
	r.UpsidePercent = 24.7
	r.Risks = pq.StringArray{"a", "b", "c"}
	assert.False(t, match(r))
}

func TestSpecsCoverEveryStrategy(t *testing.T) {
	assert.Len(t, strategySpecs, len(enum.Strategies))
	for _, s := range enum.Strategies {
		_, ok := strategySpecs[s]
		assert.True(t, ok, "missing spec for %v", s)
	}
}

func TestRankIsStableOnTies(t *testing.T) {
	recs := []*models.Recommendation{
		fixture("A", "Energy", 8.0, 10, enum.RiskMedium),
		fixture("B", "Energy", 9.0, 10, enum.RiskMedium),
		fixture("C", "Energy", 8.0, 10, enum.RiskMedium),
		fixture("D", "Energy", 8.0, 10, enum.RiskMedium),
	}

	rank(recs, convictionKey)

	tickers := make([]string, len(recs))
	for i, r := range recs {
		tickers[i] = r.Ticker
	}

	// ties broken by input order
	assert.Equal(t, []string{"B", "A", "C", "D"}, tickers)
}

func TestScreenPreservesOrder(t *testing.T) {
	recs := []*models.Recommendation{
		fixture("A", "Healthcare", 9, 0, enum.RiskLow),
		fixture("B", "Energy", 8, 0, enum.RiskHigh),
		fixture("C", "Utilities", 7, 0, enum.RiskLow),
	}

	out := screen(recs, strategySpecs[enum.Defensive].match)

	assert.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Ticker)
	assert.Equal(t, "C", out[1].Ticker)
}

func TestHead(t *testing.T) {
	recs := []*models.Recommendation{
		fixture("A", "Energy", 9, 0, enum.RiskLow),
		fixture("B", "Energy", 8, 0, enum.RiskLow),
	}

	assert.Len(t, head(recs, 1), 1)
	assert.Len(t, head(recs, 2), 2)
	assert.Len(t, head(recs, 5), 2)
	assert.Empty(t, head(recs, 0))
}

func TestNarrow(t *testing.T) {
	recs := []*models.Recommendation{
		fixture("A", "Healthcare", 9.2, 17, enum.RiskLow),
		fixture("B", "Energy", 8.8, 22, enum.RiskMedium),
		fixture("C", "Healthcare", 7.8, 13, enum.RiskLow),
		fixture("D", "Technology", 8.5, 14, enum.RiskMedium),
	}

	min := 8.0
	out := Narrow(recs, Filters{MinConviction: &min})
	assert.Len(t, out, 3)

	// sector match is case-insensitive
	sector := "healthcare"
	out = Narrow(recs, Filters{Sector: &sector})
	assert.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Ticker)
	assert.Equal(t, "C", out[1].Ticker)

	low := enum.RiskLow
	out = Narrow(recs, Filters{MinConviction: &min, RiskLevel: &low})
	assert.Len(t, out, 1)
	assert.Equal(t, "A", out[0].Ticker)

	// no criteria passes everything through untouched
	assert.Equal(t, recs, Narrow(recs, Filters{}))
}
