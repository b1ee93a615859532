package engine

import (
	"strconv"

	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/jinzhu/gorm"
)

// scores at or above this count as high conviction in the sector
// statistics
const highConvictionThreshold = 8.0

const analysisPickCount = 10

// SectorStatistics are descriptive statistics over a sector's top
// picks. The averages are fixed to two decimal places, serialized as
// strings the way the dashboard consumes them.
type SectorStatistics struct {
	TotalRecommendations int    `json:"totalRecommendations"`
	AverageConviction    string `json:"averageConviction"`
	AverageUpside        string `json:"averageUpside"`
	HighConvictionCount  int    `json:"highConvictionCount"`
	LowRiskCount         int    `json:"lowRiskCount"`
}

type SectorAnalysis struct {
	Sector          *models.Sector           `json:"sector"`
	Recommendations []*models.Recommendation `json:"recommendations"`
	Statistics      SectorStatistics         `json:"statistics"`
}

// AnalyzeSector returns the sector (matched by exact name), its top
// 10 picks by conviction, and statistics over those picks. An
// unknown name fails with NotFound and produces nothing.
func (e *Engine) AnalyzeSector(tx *gorm.DB, sectorName string) (*SectorAnalysis, error) {
	sector, err := e.services.Sector().WithTx(tx).GetByName(sectorName)
	if err != nil {
		return nil, err
	}

	recs, err := e.SectorOpportunities(tx, sectorName, analysisPickCount)
	if err != nil {
		return nil, err
	}

	return &SectorAnalysis{
		Sector:          sector,
		Recommendations: recs,
		Statistics:      ComputeStatistics(recs),
	}, nil
}

// ComputeStatistics aggregates a pick list. An empty list yields
// "0.00" averages and zero counts.
func ComputeStatistics(recs []*models.Recommendation) SectorStatistics {
	stats := SectorStatistics{
		TotalRecommendations: len(recs),
		AverageConviction:    fixed2(0),
		AverageUpside:        fixed2(0),
	}

	var convictionSum, upsideSum float64

	for _, r := range recs {
		convictionSum += r.ConvictionScore
		upsideSum += r.UpsidePercent

		if r.ConvictionScore >= highConvictionThreshold {
			stats.HighConvictionCount++
		}
		if r.RiskLevel == enum.RiskLow {
			stats.LowRiskCount++
		}
	}

	if len(recs) > 0 {
		n := float64(len(recs))
		stats.AverageConviction = fixed2(convictionSum / n)
		stats.AverageUpside = fixed2(upsideSum / n)
	}

	return stats
}

func fixed2(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
