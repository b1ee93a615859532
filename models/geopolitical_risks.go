package models

import (
	"time"

	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
)

// GeopoliticalRisk is an independently tracked macro event.
// affected_sectors holds sector names, not foreign keys.
type GeopoliticalRisk struct {
	ID               string         `json:"id" gorm:"primary_key" sql:"type:uuid;"`
	CreatedAt        time.Time      `json:"created_at"`
	EventName        string         `json:"event_name" sql:"type:text"`
	Severity         enum.Severity  `json:"severity" sql:"type:text"`
	AffectedSectors  pq.StringArray `json:"affected_sectors" gorm:"type:text[]"`
	Description      string         `json:"description" sql:"type:text"`
	ImpactAssessment string         `json:"impact_assessment" sql:"type:text"`
}

func (g *GeopoliticalRisk) BeforeCreate(scope *gorm.Scope) error {
	if g.ID == "" {
		g.ID = uuid.Must(uuid.NewV4()).String()
	}
	return scope.SetColumn("id", g.ID)
}
