package recommendation

import (
	"fmt"

	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/jinzhu/gorm"
)

// Filters narrows a recommendation listing at the storage layer.
// Sector is a sector name; it is resolved to a sector_id before the
// query runs, and an unknown name simply matches nothing there
// (case-sensitive at this layer, mirroring the store's equality).
type Filters struct {
	Strategy      *enum.Strategy
	MinConviction *float64
	Sector        *string
}

type RecommendationService interface {
	List(filters Filters) ([]*models.Recommendation, error)
	WithTx(tx *gorm.DB) RecommendationService
}

type recommendationService struct {
	RecommendationService
	tx *gorm.DB
}

func Service() RecommendationService {
	return &recommendationService{}
}

func (s *recommendationService) WithTx(tx *gorm.DB) RecommendationService {
	s.tx = tx
	return s
}

// List returns recommendations with their sector join preloaded,
// ordered by conviction score descending. The order here is the
// "input order" every downstream ranking tie-breaks against.
func (s *recommendationService) List(filters Filters) ([]*models.Recommendation, error) {
	recs := []*models.Recommendation{}

	q := s.tx.Preload("Sector").Order("conviction_score DESC")

	if filters.Strategy != nil {
		q = q.Where("strategy = ?", *filters.Strategy)
	}

	if filters.MinConviction != nil {
		q = q.Where("conviction_score >= ?", *filters.MinConviction)
	}

	if filters.Sector != nil {
		sector := &models.Sector{}

		sq := s.tx.Where("name = ?", *filters.Sector).Find(sector)

		if sq.RecordNotFound() {
			return nil, oraerrors.NotFound.WithMsg(fmt.Sprintf("sector not found for %v", *filters.Sector))
		}

		if sq.Error != nil {
			return nil, oraerrors.InternalServerError.WithError(sq.Error)
		}

		q = q.Where("sector_id = ?", sector.ID)
	}

	q = q.Find(&recs)

	if q.Error != nil && !q.RecordNotFound() {
		return nil, oraerrors.InternalServerError.WithError(q.Error)
	}

	return recs, nil
}
