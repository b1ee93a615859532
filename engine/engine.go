// Package engine screens and ranks the recommendation book. It is a
// pure read path: it never mutates the rows it is handed, and every
// operation is deterministic for a fixed storage snapshot.
package engine

import (
	"strings"

	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/alphaoracle/alphaoracle/service/recommendation"
	"github.com/alphaoracle/alphaoracle/service/registry"
	"github.com/jinzhu/gorm"
)

// Filters narrows a combined recommendation query. A nil field means
// "don't care". Strategy must be one of the known tags to take
// effect; anything else falls back to the unscreened book.
type Filters struct {
	Strategy      *enum.Strategy
	MinConviction *float64
	Sector        *string
	RiskLevel     *enum.RiskLevel
}

type Engine struct {
	services registry.Registry
}

func New(services registry.Registry) *Engine {
	return &Engine{services: services}
}

// TopOpportunities returns the highest conviction picks across the
// whole book.
func (e *Engine) TopOpportunities(tx *gorm.DB, limit int) ([]*models.Recommendation, error) {
	recs, err := e.services.Recommendation().WithTx(tx).List(recommendation.Filters{})
	if err != nil {
		return nil, err
	}

	rank(recs, convictionKey)

	return head(recs, limit), nil
}

// SectorOpportunities returns the best picks within one sector,
// matched by exact name.
func (e *Engine) SectorOpportunities(tx *gorm.DB, sectorName string, limit int) ([]*models.Recommendation, error) {
	recs, err := e.services.Recommendation().WithTx(tx).List(recommendation.Filters{
		Sector: &sectorName,
	})
	if err != nil {
		return nil, err
	}

	rank(recs, convictionKey)

	return head(recs, limit), nil
}

// Picks screens the book with the given strategy's predicate and
// ranks the survivors by its designated key.
func (e *Engine) Picks(tx *gorm.DB, strategy enum.Strategy, limit int) ([]*models.Recommendation, error) {
	spec, ok := strategySpecs[strategy]
	if !ok {
		return e.TopOpportunities(tx, limit)
	}

	filters := recommendation.Filters{}
	if spec.narrowFetch {
		s := strategy
		filters.Strategy = &s
	}

	recs, err := e.services.Recommendation().WithTx(tx).List(filters)
	if err != nil {
		return nil, err
	}

	picked := screen(recs, spec.match)
	rank(picked, spec.rankKey)

	return head(picked, limit), nil
}

func (e *Engine) GrowthPicks(tx *gorm.DB, limit int) ([]*models.Recommendation, error) {
	return e.Picks(tx, enum.Growth, limit)
}

func (e *Engine) ValuePicks(tx *gorm.DB, limit int) ([]*models.Recommendation, error) {
	return e.Picks(tx, enum.Value, limit)
}

func (e *Engine) DefensivePicks(tx *gorm.DB, limit int) ([]*models.Recommendation, error) {
	return e.Picks(tx, enum.Defensive, limit)
}

func (e *Engine) ContrarianPicks(tx *gorm.DB, limit int) ([]*models.Recommendation, error) {
	return e.Picks(tx, enum.Contrarian, limit)
}

// Filter combines a strategy screen with the remaining criteria.
// With a known strategy it starts from an oversampled (2x limit)
// strategy pick list; otherwise from the unscreened book. The
// remaining filters AND together, and the result is truncated to
// limit.
func (e *Engine) Filter(tx *gorm.DB, f Filters, limit int) ([]*models.Recommendation, error) {
	var (
		recs []*models.Recommendation
		err  error
	)

	if f.Strategy != nil && f.Strategy.Valid() {
		recs, err = e.Picks(tx, *f.Strategy, limit*2)
	} else {
		recs, err = e.services.Recommendation().WithTx(tx).List(recommendation.Filters{
			MinConviction: f.MinConviction,
		})
	}

	if err != nil {
		return nil, err
	}

	return head(Narrow(recs, f), limit), nil
}

// Narrow applies the non-strategy criteria to an in-memory list,
// preserving input order. The sector match is case-insensitive,
// unlike the storage-layer lookup.
func Narrow(recs []*models.Recommendation, f Filters) []*models.Recommendation {
	out := recs

	if f.MinConviction != nil {
		min := *f.MinConviction
		out = screen(out, func(r *models.Recommendation) bool {
			return r.ConvictionScore >= min
		})
	}

	if f.Sector != nil {
		name := *f.Sector
		out = screen(out, func(r *models.Recommendation) bool {
			return strings.EqualFold(r.SectorName(), name)
		})
	}

	if f.RiskLevel != nil {
		level := *f.RiskLevel
		out = screen(out, func(r *models.Recommendation) bool {
			return r.RiskLevel == level
		})
	}

	return out
}
