package engine

import (
	"testing"

	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/stretchr/testify/assert"
)

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil)

	assert.Equal(t, 0, stats.TotalRecommendations)
	assert.Equal(t, "0.00", stats.AverageConviction)
	assert.Equal(t, "0.00", stats.AverageUpside)
	assert.Equal(t, 0, stats.HighConvictionCount)
	assert.Equal(t, 0, stats.LowRiskCount)
}

func TestComputeStatistics(t *testing.T) {
	recs := []*models.Recommendation{
		fixture("A", "Healthcare", 9.2, 17.3, enum.RiskLow),
		fixture("B", "Healthcare", 7.8, 13.8, enum.RiskLow),
		// exactly at the threshold counts as high conviction
		fixture("C", "Healthcare", 8.0, 10.2, enum.RiskMedium),
	}

	stats := ComputeStatistics(recs)

	assert.Equal(t, 3, stats.TotalRecommendations)
	assert.Equal(t, "8.33", stats.AverageConviction)
	assert.Equal(t, "13.77", stats.AverageUpside)
	assert.Equal(t, 2, stats.HighConvictionCount)
	assert.Equal(t, 2, stats.LowRiskCount)
}

func TestComputeStatisticsFixedDecimals(t *testing.T) {
	recs := []*models.Recommendation{
		fixture("A", "Energy", 8, 20, enum.RiskMedium),
	}

	stats := ComputeStatistics(recs)

	// averages always carry two decimal places
	assert.Equal(t, "8.00", stats.AverageConviction)
	assert.Equal(t, "20.00", stats.AverageUpside)
}
