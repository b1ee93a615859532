package models

import (
	"time"

	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
)

// Sector is one of the GICS sectors tracked by the analytics job.
// Rows are seeded externally and are read-only to this service.
type Sector struct {
	ID              string         `json:"id" gorm:"primary_key" sql:"type:uuid;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	Name            string         `json:"name" gorm:"unique_index" sql:"type:text"`
	ConvictionScore float64        `json:"conviction_score"`
	Trend           enum.Trend     `json:"trend" sql:"type:text"`
	CyclePhase      string         `json:"cycle_phase" sql:"type:text"`
	Tailwinds       pq.StringArray `json:"tailwinds" gorm:"type:text[]"`
	Headwinds       pq.StringArray `json:"headwinds" gorm:"type:text[]"`
	Thesis          string         `json:"thesis" sql:"type:text"`
}

func (s *Sector) BeforeCreate(scope *gorm.Scope) error {
	if s.ID == "" {
		s.ID = uuid.Must(uuid.NewV4()).String()
	}
	return scope.SetColumn("id", s.ID)
}
