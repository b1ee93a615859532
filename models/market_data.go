package models

import (
	"time"

	"github.com/alphaoracle/alphaoracle/utils/date"
	"github.com/gofrs/uuid"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

// MarketData is the latest known quote for a ticker on a given day.
// The (ticker, data_date) pair is unique; ingestion upserts on it.
type MarketData struct {
	ID            string          `json:"id" gorm:"primary_key" sql:"type:uuid;"`
	CreatedAt     time.Time       `json:"created_at"`
	Ticker        string          `json:"ticker" gorm:"unique_index:idx_market_data_ticker_date" sql:"type:text"`
	Price         decimal.Decimal `json:"price" sql:"type:decimal"`
	ChangePercent float64         `json:"change_percent"`
	Volume        int64           `json:"volume"`
	MarketCap     int64           `json:"market_cap"`
	PERatio       float64         `json:"pe_ratio" gorm:"column:pe_ratio"`
	DataDate      date.Date       `json:"data_date" gorm:"unique_index:idx_market_data_ticker_date" sql:"type:date"`
}

func (m *MarketData) BeforeCreate(scope *gorm.Scope) error {
	if m.ID == "" {
		m.ID = uuid.Must(uuid.NewV4()).String()
	}
	return scope.SetColumn("id", m.ID)
}
