package registry

import (
	"github.com/alphaoracle/alphaoracle/service/georisk"
	"github.com/alphaoracle/alphaoracle/service/indicator"
	"github.com/alphaoracle/alphaoracle/service/marketdata"
	"github.com/alphaoracle/alphaoracle/service/recommendation"
	"github.com/alphaoracle/alphaoracle/service/sector"
)

type Registry interface {
	Sector() sector.SectorService
	Recommendation() recommendation.RecommendationService
	MarketData() marketdata.MarketDataService
	Indicator() indicator.IndicatorService
	GeoRisk() georisk.GeoRiskService
}
