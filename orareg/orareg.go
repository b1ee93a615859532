package orareg

import (
	"github.com/alphaoracle/alphaoracle/service/georisk"
	"github.com/alphaoracle/alphaoracle/service/indicator"
	"github.com/alphaoracle/alphaoracle/service/marketdata"
	"github.com/alphaoracle/alphaoracle/service/recommendation"
	"github.com/alphaoracle/alphaoracle/service/registry"
	"github.com/alphaoracle/alphaoracle/service/sector"
)

// Services is the process-wide service registry.
var Services registry.Registry

type oraRegistry struct{}

func (r *oraRegistry) Sector() sector.SectorService {
	return sector.Service()
}

func (r *oraRegistry) Recommendation() recommendation.RecommendationService {
	return recommendation.Service()
}

func (r *oraRegistry) MarketData() marketdata.MarketDataService {
	return marketdata.Service()
}

func (r *oraRegistry) Indicator() indicator.IndicatorService {
	return indicator.Service()
}

func (r *oraRegistry) GeoRisk() georisk.GeoRiskService {
	return georisk.Service()
}

func init() {
	Services = &oraRegistry{}
}
