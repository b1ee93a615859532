package marketdata

import (
	"testing"

	"github.com/alphaoracle/alphaoracle/dbtest"
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/utils/date"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MarketDataTestSuite struct {
	dbtest.Suite
}

func TestMarketDataTestSuite(t *testing.T) {
	suite.Run(t, new(MarketDataTestSuite))
}

func (s *MarketDataTestSuite) SetupSuite() {
	s.SetupDB()
}

func (s *MarketDataTestSuite) TearDownSuite() {
	s.TeardownDB()
}

func (s *MarketDataTestSuite) TestUpsertIsIdempotent() {
	srv := marketDataService{tx: db.DB()}
	today := date.Today()

	err := srv.Upsert(&models.MarketData{
		Ticker:   "AAPL",
		Price:    decimal.RequireFromString("185.50"),
		Volume:   1000,
		DataDate: today,
	})
	require.Nil(s.T(), err)

	// a rerun for the same (ticker, data_date) replaces in place
	err = srv.Upsert(&models.MarketData{
		Ticker:   "AAPL",
		Price:    decimal.RequireFromString("186.20"),
		Volume:   2000,
		DataDate: today,
	})
	require.Nil(s.T(), err)

	ticker := "AAPL"
	rows, err := srv.List(&ticker, 0)
	assert.Nil(s.T(), err)
	require.Len(s.T(), rows, 1)
	assert.True(s.T(), rows[0].Price.Equal(decimal.RequireFromString("186.20")))
	assert.Equal(s.T(), int64(2000), rows[0].Volume)

	// a different day is a new row
	err = srv.Upsert(&models.MarketData{
		Ticker:   "AAPL",
		Price:    decimal.RequireFromString("183.10"),
		DataDate: date.Date{Date: today.AddDays(-1)},
	})
	require.Nil(s.T(), err)

	rows, err = srv.List(&ticker, 0)
	assert.Nil(s.T(), err)
	require.Len(s.T(), rows, 2)

	// most recent first
	assert.Equal(s.T(), today.String(), rows[0].DataDate.String())
}

func (s *MarketDataTestSuite) TestListFiltersAndLimits() {
	srv := marketDataService{tx: db.DB()}
	today := date.Today()

	for i, t := range []string{"MSFT", "NVDA", "GOOGL"} {
		require.Nil(s.T(), srv.Upsert(&models.MarketData{
			Ticker:   t,
			Price:    decimal.New(int64(100+i), 0),
			DataDate: today,
		}))
	}

	ticker := "NVDA"
	rows, err := srv.List(&ticker, 0)
	assert.Nil(s.T(), err)
	require.Len(s.T(), rows, 1)
	assert.Equal(s.T(), "NVDA", rows[0].Ticker)

	rows, err = srv.List(nil, 2)
	assert.Nil(s.T(), err)
	assert.Len(s.T(), rows, 2)
}
