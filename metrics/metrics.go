package metrics

import (
	"fmt"
	"runtime"
	"time"

	"github.com/alphaoracle/alphaoracle/orareg"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// FreshnessMetrics includes the required data to analyze the health
// of the ingestion pipeline: how stale the newest rows are and how
// fast the read path answers.
type FreshnessMetrics struct {
	// stale data metrics
	OldestQuoteAge     time.Duration `json:"oldest_quote_age"`
	OldestIndicatorAge time.Duration `json:"oldest_indicator_age"`
	// latency metrics
	MarketDataLatency time.Duration `json:"market_data_latency"`
	IndicatorLatency  time.Duration `json:"indicator_latency"`
	// error metrics
	MarketDataError error `json:"market_data_error"`
	IndicatorError  error `json:"indicator_error"`
}

// GetFreshnessMetrics returns ingestion freshness metrics for alerts
// and analysis.
func GetFreshnessMetrics() (*FreshnessMetrics, error) {
	m := &FreshnessMetrics{}

	mdSrv := orareg.Services.MarketData().WithTx(db.DB())

	start := time.Now()
	rows, err := mdSrv.List(nil, 1)
	m.MarketDataLatency = time.Now().Sub(start)
	m.MarketDataError = err

	if err == nil && len(rows) > 0 {
		m.OldestQuoteAge = time.Now().Sub(rows[0].DataDate.In(time.UTC))
	}

	indSrv := orareg.Services.Indicator().WithTx(db.DB())

	start = time.Now()
	inds, err := indSrv.List(1)
	m.IndicatorLatency = time.Now().Sub(start)
	m.IndicatorError = err

	if err == nil && len(inds) > 0 {
		m.OldestIndicatorAge = time.Now().Sub(inds[0].CreatedAt)
	}

	return m, nil
}

// PerformanceMetrics includes all data relevant to the performance of
// the service.
type PerformanceMetrics struct {
	DatabaseLatency    time.Duration `json:"db_latency"`
	MemoryUsageTotal   uint64        `json:"mem_usage_total"`
	MemoryUsagePercent float64       `json:"mem_usage_pct"`
	GoRoutines         int64         `json:"goroutines"`
	CPUUsagePercent    float64       `json:"cpu_usage_pct"`
}

// GetPerformanceMetrics returns performance related metrics for
// alerts and analysis.
func GetPerformanceMetrics() (*PerformanceMetrics, error) {
	// memory stats
	v, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	// cpu stats
	pct, err := cpu.Percent(time.Second, false)
	if err != nil {
		return nil, err
	}

	if len(pct) == 0 {
		return nil, fmt.Errorf("failed to retrieve cpu usage stats")
	}

	// database latency
	start := time.Now()
	if err := db.DB().DB().Ping(); err != nil {
		return nil, err
	}

	dbLatency := time.Now().Sub(start)

	return &PerformanceMetrics{
		MemoryUsageTotal:   v.Used,
		MemoryUsagePercent: v.UsedPercent,
		CPUUsagePercent:    pct[0],
		DatabaseLatency:    dbLatency,
		GoRoutines:         int64(runtime.NumGoroutine()),
	}, nil
}
