package georisk

import (
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/jinzhu/gorm"
)

type GeoRiskService interface {
	List() ([]*models.GeopoliticalRisk, error)
	WithTx(tx *gorm.DB) GeoRiskService
}

type geoRiskService struct {
	GeoRiskService
	tx *gorm.DB
}

func Service() GeoRiskService {
	return &geoRiskService{}
}

func (s *geoRiskService) WithTx(tx *gorm.DB) GeoRiskService {
	s.tx = tx
	return s
}

// List returns all tracked risk events. Ordering is a plain textual
// severity descending, matching what the dashboard has always shown.
func (s *geoRiskService) List() ([]*models.GeopoliticalRisk, error) {
	risks := []*models.GeopoliticalRisk{}

	q := s.tx.Order("severity DESC").Find(&risks)

	if q.Error != nil && !q.RecordNotFound() {
		return nil, oraerrors.InternalServerError.WithError(q.Error)
	}

	return risks, nil
}
