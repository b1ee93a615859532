package indicator

import (
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/jinzhu/gorm"
)

const defaultLimit = 10

type IndicatorService interface {
	Create(row *models.EconomicIndicator) error
	List(limit int) ([]*models.EconomicIndicator, error)
	WithTx(tx *gorm.DB) IndicatorService
}

type indicatorService struct {
	IndicatorService
	tx *gorm.DB
}

func Service() IndicatorService {
	return &indicatorService{}
}

func (s *indicatorService) WithTx(tx *gorm.DB) IndicatorService {
	s.tx = tx
	return s
}

// Create appends an observation. There is deliberately no dedup key:
// repeated runs accumulate history for the same indicator and date.
func (s *indicatorService) Create(row *models.EconomicIndicator) error {
	if err := s.tx.Create(row).Error; err != nil {
		return oraerrors.InternalServerError.WithError(err)
	}
	return nil
}

// List returns the most recently ingested observations first,
// capped at limit (10 when unset).
func (s *indicatorService) List(limit int) ([]*models.EconomicIndicator, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows := []*models.EconomicIndicator{}

	q := s.tx.Order("created_at DESC").Limit(limit).Find(&rows)

	if q.Error != nil && !q.RecordNotFound() {
		return nil, oraerrors.InternalServerError.WithError(q.Error)
	}

	return rows, nil
}
