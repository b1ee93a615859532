package engine

import (
	"testing"

	"github.com/alphaoracle/alphaoracle/dbtest"
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/orareg"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	dbtest.Suite
	engine *Engine
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupSuite() {
	s.SetupDB()

	s.engine = New(orareg.Services)

	sectors := map[string]*models.Sector{}
	for _, sec := range []*models.Sector{
		{Name: "Healthcare", ConvictionScore: 8.5},
		{Name: "Technology", ConvictionScore: 6.8},
		{Name: "Energy", ConvictionScore: 7.5},
		{Name: "Financials", ConvictionScore: 5.8},
	} {
		require.Nil(s.T(), db.DB().Create(sec).Error)
		sectors[sec.Name] = sec
	}

	for _, r := range []*models.Recommendation{
		{
			Ticker: "UNH", SectorID: sectors["Healthcare"].ID,
			Strategy: enum.Defensive, ConvictionScore: 9.2, UpsidePercent: 17.3,
			RiskLevel: enum.RiskLow,
			Catalysts: pq.StringArray{"demographics", "optum", "pricing power"},
		},
		{
			Ticker: "LLY", SectorID: sectors["Healthcare"].ID,
			Strategy: enum.Growth, ConvictionScore: 9.0, UpsidePercent: 23.2,
			RiskLevel: enum.RiskMedium,
			Catalysts: pq.StringArray{"glp-1", "alzheimer's", "pipeline"},
			Risks:     pq.StringArray{"valuation"},
		},
		{
			Ticker: "XOM", SectorID: sectors["Energy"].ID,
			Strategy: enum.Value, ConvictionScore: 8.8, UpsidePercent: 22.1,
			RiskLevel:        enum.RiskMedium,
			Catalysts:        pq.StringArray{"supply", "buybacks"},
			Risks:            pq.StringArray{"transition"},
			ValuationMetrics: models.ValuationMetrics{"pe": 9.8},
		},
		{
			Ticker: "MSFT", SectorID: sectors["Technology"].ID,
			Strategy: enum.Growth, ConvictionScore: 8.5, UpsidePercent: 14.4,
			RiskLevel: enum.RiskMedium,
			Catalysts: pq.StringArray{"ai", "copilot", "cloud"},
			Risks:     pq.StringArray{"valuation"},
		},
		{
			Ticker: "NVDA", SectorID: sectors["Technology"].ID,
			Strategy: enum.Growth, ConvictionScore: 8.2, UpsidePercent: 15.6,
			RiskLevel: enum.RiskHigh,
			Catalysts: pq.StringArray{"ai", "datacenter"},
			Risks:     pq.StringArray{"valuation", "competition"},
		},
		{
			Ticker: "JPM", SectorID: sectors["Financials"].ID,
			Strategy: enum.Value, ConvictionScore: 8.3, UpsidePercent: 15.7,
			RiskLevel:        enum.RiskMedium,
			Catalysts:        pq.StringArray{"nim", "share gains", "balance sheet"},
			Risks:            pq.StringArray{"credit"},
			ValuationMetrics: models.ValuationMetrics{"pe": 11.2},
		},
		{
			Ticker: "AMZN", SectorID: sectors["Technology"].ID,
			Strategy: enum.Value, ConvictionScore: 6.5, UpsidePercent: 30,
			RiskLevel: enum.RiskMedium,
			Catalysts: pq.StringArray{"aws", "ads"},
			// no pe metric at all
			ValuationMetrics: models.ValuationMetrics{"pb": 8},
		},
	} {
		require.Nil(s.T(), db.DB().Create(r).Error)
	}
}

func (s *EngineTestSuite) TearDownSuite() {
	s.TeardownDB()
}

func (s *EngineTestSuite) TestTopOpportunities() {
	recs, err := s.engine.TopOpportunities(db.DB(), 3)
	assert.Nil(s.T(), err)
	require.Len(s.T(), recs, 3)
	assert.Equal(s.T(), "UNH", recs[0].Ticker)
	assert.Equal(s.T(), "LLY", recs[1].Ticker)
	assert.Equal(s.T(), "XOM", recs[2].Ticker)
}

func (s *EngineTestSuite) TestSectorOpportunities() {
	recs, err := s.engine.SectorOpportunities(db.DB(), "Technology", 10)
	assert.Nil(s.T(), err)
	require.Len(s.T(), recs, 3)
	assert.Equal(s.T(), "MSFT", recs[0].Ticker)

	recs, err = s.engine.SectorOpportunities(db.DB(), "Quantum", 10)
	assert.Nil(s.T(), recs)
	assert.True(s.T(), oraerrors.IsNotFound(err))
}

func (s *EngineTestSuite) TestGrowthPicks() {
	recs, err := s.engine.GrowthPicks(db.DB(), 10)
	assert.Nil(s.T(), err)
	require.Len(s.T(), recs, 2)

	// NVDA only has two catalysts and is screened out
	assert.Equal(s.T(), "LLY", recs[0].Ticker)
	assert.Equal(s.T(), "MSFT", recs[1].Ticker)
}

func (s *EngineTestSuite) TestValuePicks() {
	recs, err := s.engine.ValuePicks(db.DB(), 10)
	assert.Nil(s.T(), err)
	require.Len(s.T(), recs, 2)

	// ranked by upside, and AMZN is excluded for having no pe metric
	assert.Equal(s.T(), "XOM", recs[0].Ticker)
	assert.Equal(s.T(), "JPM", recs[1].Ticker)
}

func (s *EngineTestSuite) TestDefensivePicks() {
	recs, err := s.engine.DefensivePicks(db.DB(), 10)
	assert.Nil(s.T(), err)

	// the defensive screen ignores strategy tags: healthcare rows and
	// low risk rows across the whole book qualify
	require.Len(s.T(), recs, 2)
	assert.Equal(s.T(), "UNH", recs[0].Ticker)
	assert.Equal(s.T(), "LLY", recs[1].Ticker)
}

func (s *EngineTestSuite) TestContrarianPicks() {
	recs, err := s.engine.ContrarianPicks(db.DB(), 10)
	assert.Nil(s.T(), err)

	// only rows tagged contrarian are fetched, and none exist
	assert.Empty(s.T(), recs)
}

func (s *EngineTestSuite) TestPicksUnknownStrategyFallsBack() {
	recs, err := s.engine.Picks(db.DB(), enum.Strategy("momentum"), 2)
	assert.Nil(s.T(), err)
	require.Len(s.T(), recs, 2)
	assert.Equal(s.T(), "UNH", recs[0].Ticker)
}

func (s *EngineTestSuite) TestFilter() {
	strategy := enum.Growth
	min := 8.6
	recs, err := s.engine.Filter(db.DB(), Filters{
		Strategy:      &strategy,
		MinConviction: &min,
	}, 10)
	assert.Nil(s.T(), err)
	require.Len(s.T(), recs, 1)
	assert.Equal(s.T(), "LLY", recs[0].Ticker)

	// sector narrowing is case-insensitive on this path
	sector := "technology"
	recs, err = s.engine.Filter(db.DB(), Filters{Sector: &sector}, 10)
	assert.Nil(s.T(), err)
	require.Len(s.T(), recs, 3)

	level := enum.RiskLow
	recs, err = s.engine.Filter(db.DB(), Filters{RiskLevel: &level}, 10)
	assert.Nil(s.T(), err)
	require.Len(s.T(), recs, 1)
	assert.Equal(s.T(), "UNH", recs[0].Ticker)
}

func (s *EngineTestSuite) TestAnalyzeSector() {
	analysis, err := s.engine.AnalyzeSector(db.DB(), "Healthcare")
	assert.Nil(s.T(), err)
	require.NotNil(s.T(), analysis)

	assert.Equal(s.T(), "Healthcare", analysis.Sector.Name)
	require.Len(s.T(), analysis.Recommendations, 2)

	stats := analysis.Statistics
	assert.Equal(s.T(), 2, stats.TotalRecommendations)
	assert.Equal(s.T(), "9.10", stats.AverageConviction)
	assert.Equal(s.T(), "20.25", stats.AverageUpside)
	assert.Equal(s.T(), 2, stats.HighConvictionCount)
	assert.Equal(s.T(), 1, stats.LowRiskCount)

	// an unknown sector produces no partial result
	analysis, err = s.engine.AnalyzeSector(db.DB(), "Quantum")
	assert.Nil(s.T(), analysis)
	assert.True(s.T(), oraerrors.IsNotFound(err))
}
