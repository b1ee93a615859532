// Package ingest pulls quotes and macro observations from the two
// upstream providers and writes them to storage. Runs are strictly
// sequential with fixed inter-call delays; a single item failing is
// logged and skipped, never aborting the batch.
package ingest

import (
	"fmt"
	"sync"
	"time"

	"github.com/alphaoracle/alphaoracle/external/alphavantage"
	"github.com/alphaoracle/alphaoracle/external/fred"
	"github.com/alphaoracle/alphaoracle/external/slack"
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/orareg"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/alphaoracle/alphaoracle/utils/log"
	"github.com/alphaoracle/alphaoracle/workers/common"
)

// the fixed watchlist quotes are pulled for
var tickers = []string{
	"AAPL", "MSFT", "NVDA", "GOOGL", "AMZN", "TSLA", "UNH", "JPM", "XOM",
}

// the fixed macro series observations are pulled for
var series = []struct {
	ID   string
	Name string
}{
	{"GDP", "GDP Growth Rate"},
	{"UNRATE", "Unemployment Rate"},
	{"CPIAUCSL", "CPI (Inflation)"},
	{"DFF", "Federal Funds Rate"},
	{"DGS10", "10-Year Treasury Yield"},
}

type ingestWorker struct {
	fetchQuote       func(ticker string) (*alphavantage.Quote, error)
	fetchObservation func(seriesID, name string) (*fred.Observation, error)
	storeQuote       func(md *models.MarketData) error
	storeObservation func(row *models.EconomicIndicator) error
	quoteDelay       time.Duration
	observationDelay time.Duration
	done             chan struct{}
}

var (
	worker     *ingestWorker
	workerOnce sync.Once
)

func newWorker() *ingestWorker {
	w := &ingestWorker{
		fetchQuote:       alphavantage.GetQuote,
		fetchObservation: fred.GetLatestObservation,
		storeQuote: func(md *models.MarketData) error {
			return orareg.Services.MarketData().WithTx(db.DB()).Upsert(md)
		},
		storeObservation: func(row *models.EconomicIndicator) error {
			return orareg.Services.Indicator().WithTx(db.DB()).Create(row)
		},
		quoteDelay:       env.GetDuration("ALPHA_VANTAGE_DELAY"),
		observationDelay: env.GetDuration("FRED_DELAY"),
		done:             make(chan struct{}, 1),
	}
	w.done <- struct{}{}
	return w
}

// LiveMode reports whether both provider credentials are configured.
// Without them the scheduler and the startup update are inert.
func LiveMode() bool {
	return env.GetVar("ALPHA_VANTAGE_API_KEY") != "" && env.GetVar("FRED_API_KEY") != ""
}

// Work runs one full update: every watchlist quote, then every macro
// series. A second caller while a run is in flight logs and returns
// without doing anything.
func Work() {
	// the startup run and the first cron fire can arrive together
	workerOnce.Do(func() {
		if worker == nil {
			worker = newWorker()
		}
	})

	if !LiveMode() {
		log.Info("running in demo mode - data update skipped")
		return
	}

	// make sure not to overlap if a prior run is taking long
	if common.WaitTimeout(worker.done, time.Second) {
		log.Warn("data update already in progress - skipping this round")
		return
	}

	defer func() {
		worker.done <- struct{}{}
	}()

	log.Info("starting full data update")

	worker.updateMarketData()
	worker.updateEconomicIndicators()

	log.Info("full data update complete")
}

func notifyFailure(what, item string, err error) {
	msg := slack.NewIngestFailure()
	msg.SetBody(fmt.Sprintf("%s failed for %s: %v", what, item, oraerrors.Format(err)))
	slack.Notify(msg)
}

func (w *ingestWorker) updateMarketData() {
	log.Info("updating market data", "tickers", len(tickers))

	for _, ticker := range tickers {
		quote, err := w.fetchQuote(ticker)
		if err != nil {
			log.Error("quote fetch failed", "ticker", ticker, "error", oraerrors.Format(err))
			notifyFailure("quote fetch", ticker, err)
			w.sleep(w.quoteDelay)
			continue
		}

		md := &models.MarketData{
			Ticker:        quote.Ticker,
			Price:         quote.Price,
			ChangePercent: quote.ChangePercent,
			Volume:        quote.Volume,
			DataDate:      quote.DataDate,
		}

		if err := w.storeQuote(md); err != nil {
			log.Error("market data write failed", "ticker", ticker, "error", oraerrors.Format(err))
			notifyFailure("market data write", ticker, err)
		} else {
			log.Info("updated market data", "ticker", md.Ticker, "price", md.Price.String())
		}

		// fixed delay keeps us inside the provider's rate limit
		w.sleep(w.quoteDelay)
	}

	log.Info("market data update complete")
}

func (w *ingestWorker) updateEconomicIndicators() {
	log.Info("updating economic indicators", "series", len(series))

	for _, s := range series {
		obs, err := w.fetchObservation(s.ID, s.Name)
		if err != nil {
			log.Error("observation fetch failed", "series", s.ID, "error", oraerrors.Format(err))
			notifyFailure("observation fetch", s.ID, err)
			w.sleep(w.observationDelay)
			continue
		}

		row := &models.EconomicIndicator{
			IndicatorName: obs.IndicatorName,
			Value:         obs.Value,
			Unit:          obs.Unit,
			Trend:         obs.Trend,
			Impact:        obs.Impact,
			DataDate:      obs.DataDate,
		}

		if err := w.storeObservation(row); err != nil {
			log.Error("indicator write failed", "series", s.ID, "error", oraerrors.Format(err))
			notifyFailure("indicator write", s.ID, err)
		} else {
			log.Info("updated indicator", "name", row.IndicatorName, "value", row.Value)
		}

		w.sleep(w.observationDelay)
	}

	log.Info("economic indicators update complete")
}

func (w *ingestWorker) sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
