package marketdata

import (
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/jinzhu/gorm"
)

const defaultLimit = 50

type MarketDataService interface {
	Upsert(md *models.MarketData) error
	List(ticker *string, limit int) ([]*models.MarketData, error)
	WithTx(tx *gorm.DB) MarketDataService
}

type marketDataService struct {
	MarketDataService
	tx *gorm.DB
}

func Service() MarketDataService {
	return &marketDataService{}
}

func (s *marketDataService) WithTx(tx *gorm.DB) MarketDataService {
	s.tx = tx
	return s
}

// Upsert writes a quote keyed by (ticker, data_date). Re-running an
// update for the same key overwrites the row in place, so one row per
// ticker per day survives no matter how often ingestion repeats.
func (s *marketDataService) Upsert(md *models.MarketData) error {
	q := s.tx.Set("gorm:insert_option",
		`ON CONFLICT (ticker, data_date) DO UPDATE SET
			price = EXCLUDED.price,
			change_percent = EXCLUDED.change_percent,
			volume = EXCLUDED.volume,
			market_cap = EXCLUDED.market_cap,
			pe_ratio = EXCLUDED.pe_ratio`).
		Create(md)

	if q.Error != nil {
		return oraerrors.InternalServerError.WithError(q.Error)
	}

	return nil
}

// List returns quotes most-recent-first, optionally narrowed to one
// ticker, capped at limit (50 when unset).
func (s *marketDataService) List(ticker *string, limit int) ([]*models.MarketData, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	md := []*models.MarketData{}

	q := s.tx.Order("data_date DESC")

	if ticker != nil {
		q = q.Where("ticker = ?", *ticker)
	}

	q = q.Limit(limit).Find(&md)

	if q.Error != nil && !q.RecordNotFound() {
		return nil, oraerrors.InternalServerError.WithError(q.Error)
	}

	return md, nil
}
