package sector

import (
	"testing"

	"github.com/alphaoracle/alphaoracle/dbtest"
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SectorTestSuite struct {
	dbtest.Suite
}

func TestSectorTestSuite(t *testing.T) {
	suite.Run(t, new(SectorTestSuite))
}

func (s *SectorTestSuite) SetupSuite() {
	s.SetupDB()
}

func (s *SectorTestSuite) TearDownSuite() {
	s.TeardownDB()
}

func (s *SectorTestSuite) TestSector() {
	srv := sectorService{tx: db.DB()}

	sectors, err := srv.List()
	assert.Nil(s.T(), err)
	assert.Empty(s.T(), sectors)

	for _, fixture := range []*models.Sector{
		{Name: "Energy", ConvictionScore: 7.5},
		{Name: "Healthcare", ConvictionScore: 8.5},
		{Name: "Real Estate", ConvictionScore: 4.8},
	} {
		require.Nil(s.T(), db.DB().Create(fixture).Error)
	}

	sectors, err = srv.List()
	assert.Nil(s.T(), err)
	require.Len(s.T(), sectors, 3)

	// highest conviction first
	assert.Equal(s.T(), "Healthcare", sectors[0].Name)
	assert.Equal(s.T(), "Energy", sectors[1].Name)
	assert.Equal(s.T(), "Real Estate", sectors[2].Name)

	sector, err := srv.GetByName("Healthcare")
	assert.Nil(s.T(), err)
	require.NotNil(s.T(), sector)
	assert.Equal(s.T(), 8.5, sector.ConvictionScore)

	// the match is exact, not case-insensitive
	sector, err = srv.GetByName("healthcare")
	assert.Nil(s.T(), sector)
	assert.True(s.T(), oraerrors.IsNotFound(err))

	sector, err = srv.GetByName("Quantum")
	assert.Nil(s.T(), sector)
	assert.True(s.T(), oraerrors.IsNotFound(err))
}
