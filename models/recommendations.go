package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ValuationMetrics maps a metric name (pe, pb, ev_ebitda, ...) to its
// value, stored as a json column.
type ValuationMetrics map[string]float64

func (m ValuationMetrics) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *ValuationMetrics) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}

	buf, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported valuation_metrics source type %T", src)
	}

	return json.Unmarshal(buf, m)
}

// PE returns the price/earnings metric. The second return reports
// whether the metric is present at all; callers must not conflate a
// missing metric with a zero one.
func (m ValuationMetrics) PE() (float64, bool) {
	pe, ok := m["pe"]
	return pe, ok
}

// Recommendation is a stock pick produced by the upstream analytics
// job. conviction_score and upside_percent are snapshots computed
// upstream; this service never recomputes them.
type Recommendation struct {
	ID               string           `json:"id" gorm:"primary_key" sql:"type:uuid;"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Ticker           string           `json:"ticker" gorm:"index" sql:"type:text"`
	CompanyName      string           `json:"company_name" sql:"type:text"`
	SectorID         string           `json:"sector_id" gorm:"not null;index" sql:"type:uuid;"`
	Sector           *Sector          `json:"sectors,omitempty" gorm:"foreignkey:SectorID"`
	Strategy         enum.Strategy    `json:"strategy" gorm:"index" sql:"type:text"`
	ConvictionScore  float64          `json:"conviction_score"`
	TargetPrice      decimal.Decimal  `json:"target_price" sql:"type:decimal"`
	CurrentPrice     decimal.Decimal  `json:"current_price" sql:"type:decimal"`
	UpsidePercent    float64          `json:"upside_percent"`
	RiskLevel        enum.RiskLevel   `json:"risk_level" sql:"type:text"`
	Thesis           string           `json:"thesis" sql:"type:text"`
	Catalysts        pq.StringArray   `json:"catalysts" gorm:"type:text[]"`
	Risks            pq.StringArray   `json:"risks" gorm:"type:text[]"`
	ValuationMetrics ValuationMetrics `json:"valuation_metrics" sql:"type:json"`
}

func (r *Recommendation) BeforeCreate(scope *gorm.Scope) error {
	if r.ID == "" {
		r.ID = uuid.Must(uuid.NewV4()).String()
	}
	return scope.SetColumn("id", r.ID)
}

// SectorName returns the joined sector's name, or the empty string
// when the join is absent. Sector-membership predicates treat a
// missing join as matching nothing.
func (r *Recommendation) SectorName() string {
	if r.Sector == nil {
		return ""
	}
	return r.Sector.Name
}
