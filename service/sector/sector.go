package sector

import (
	"fmt"

	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/jinzhu/gorm"
)

type SectorService interface {
	List() ([]*models.Sector, error)
	GetByName(name string) (*models.Sector, error)
	WithTx(tx *gorm.DB) SectorService
}

type sectorService struct {
	SectorService
	tx *gorm.DB
}

func Service() SectorService {
	return &sectorService{}
}

func (s *sectorService) WithTx(tx *gorm.DB) SectorService {
	s.tx = tx
	return s
}

// List returns every sector, most favorable first.
func (s *sectorService) List() ([]*models.Sector, error) {
	sectors := []*models.Sector{}

	q := s.tx.Order("conviction_score DESC").Find(&sectors)

	if q.Error != nil && !q.RecordNotFound() {
		return nil, oraerrors.InternalServerError.WithError(q.Error)
	}

	return sectors, nil
}

// GetByName matches the sector name exactly.
func (s *sectorService) GetByName(name string) (*models.Sector, error) {
	sector := &models.Sector{}

	q := s.tx.Where("name = ?", name).Find(sector)

	if q.RecordNotFound() {
		return nil, oraerrors.NotFound.WithMsg(fmt.Sprintf("sector not found for %v", name))
	}

	if q.Error != nil {
		return nil, oraerrors.InternalServerError.WithError(q.Error)
	}

	return sector, nil
}
