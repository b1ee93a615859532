package georisk

import (
	"testing"

	"github.com/alphaoracle/alphaoracle/dbtest"
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GeoRiskTestSuite struct {
	dbtest.Suite
}

func TestGeoRiskTestSuite(t *testing.T) {
	suite.Run(t, new(GeoRiskTestSuite))
}

func (s *GeoRiskTestSuite) SetupSuite() {
	s.SetupDB()
}

func (s *GeoRiskTestSuite) TearDownSuite() {
	s.TeardownDB()
}

func (s *GeoRiskTestSuite) TestList() {
	srv := geoRiskService{tx: db.DB()}

	risks, err := srv.List()
	assert.Nil(s.T(), err)
	assert.Empty(s.T(), risks)

	for _, g := range []*models.GeopoliticalRisk{
		{
			EventName:       "Trade fragmentation",
			Severity:        enum.SeverityLow,
			AffectedSectors: pq.StringArray{"Industrials"},
		},
		{
			EventName:       "Taiwan tensions",
			Severity:        enum.SeverityMedium,
			AffectedSectors: pq.StringArray{"Technology", "Materials"},
		},
		{
			EventName:       "Taiwan blockade",
			Severity:        enum.SeverityHigh,
			AffectedSectors: pq.StringArray{"Technology"},
		},
	} {
		require.Nil(s.T(), db.DB().Create(g).Error)
	}

	risks, err = srv.List()
	assert.Nil(s.T(), err)
	require.Len(s.T(), risks, 3)

	// severity orders as text, descending: medium > low > high
	assert.Equal(s.T(), enum.SeverityMedium, risks[0].Severity)
	assert.Equal(s.T(), enum.SeverityLow, risks[1].Severity)
	assert.Equal(s.T(), enum.SeverityHigh, risks[2].Severity)
}
