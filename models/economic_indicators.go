package models

import (
	"time"

	"github.com/alphaoracle/alphaoracle/utils/date"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
)

// EconomicIndicator is one observation of a macro series. The table is
// append-only: every scheduled run inserts a fresh row, so a series
// accumulates history and reads are most-recent-first.
type EconomicIndicator struct {
	ID            string    `json:"id" gorm:"primary_key" sql:"type:uuid;"`
	CreatedAt     time.Time `json:"created_at"`
	IndicatorName string    `json:"indicator_name" gorm:"index" sql:"type:text"`
	Value         float64   `json:"value"`
	Unit          string    `json:"unit" sql:"type:text"`
	Trend         string    `json:"trend" sql:"type:text"`
	Impact        string    `json:"impact" sql:"type:text"`
	DataDate      date.Date `json:"data_date" sql:"type:date"`
}

func (e *EconomicIndicator) BeforeCreate(scope *gorm.Scope) error {
	if e.ID == "" {
		e.ID = uuid.Must(uuid.NewV4()).String()
	}
	return scope.SetColumn("id", e.ID)
}
