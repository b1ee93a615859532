// sidecar ships service metrics to the datadog agent. It runs next to
// the API container and polls its metrics endpoint on an interval.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/alphaoracle/alphaoracle/metrics"
	"github.com/alphaoracle/alphaoracle/utils/log"
)

const (
	freshnessTag = "freshness"

	pollInterval = 10 * time.Second
)

var (
	port = func() (p string) {
		p = os.Getenv("ORACLE_METRICS_PORT")
		if p == "" {
			p = "7777"
		}
		return
	}()

	agentAddr = func() (a string) {
		a = os.Getenv("DD_AGENT_ADDR")
		if a == "" {
			a = "127.0.0.1:8125"
		}
		return
	}()
)

func metricsHandler(dd *statsd.Client) error {

	// freshness metrics
	{
		m, err := getFreshnessMetrics()
		if err != nil {
			return err
		}

		dd.Timing("market_data_latency", m.MarketDataLatency, []string{freshnessTag}, 1)
		dd.Timing("indicator_latency", m.IndicatorLatency, []string{freshnessTag}, 1)
		dd.Timing("oldest_quote", m.OldestQuoteAge, []string{freshnessTag}, 1)
		dd.Timing("oldest_indicator", m.OldestIndicatorAge, []string{freshnessTag}, 1)

		if m.MarketDataError != nil {
			dd.SimpleEvent("market data error", m.MarketDataError.Error())
		}
		if m.IndicatorError != nil {
			dd.SimpleEvent("indicator error", m.IndicatorError.Error())
		}
	}

	// performance metrics
	{
		m, err := getPerformanceMetrics()
		if err != nil {
			return err
		}

		dd.Gauge("cpu_usage", m.CPUUsagePercent, nil, 1)
		dd.Gauge("mem_usage", m.MemoryUsagePercent, nil, 1)
		dd.Count("goroutines", m.GoRoutines, nil, 1)
		dd.Timing("db_latency", m.DatabaseLatency, nil, 1)
	}

	return nil
}

func getFreshnessMetrics() (*metrics.FreshnessMetrics, error) {
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%v/metrics/freshness", port))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	m := &metrics.FreshnessMetrics{}

	if err := json.NewDecoder(resp.Body).Decode(m); err != nil {
		return nil, fmt.Errorf("failed to parse freshness metrics %v", err)
	}

	return m, nil
}

func getPerformanceMetrics() (*metrics.PerformanceMetrics, error) {
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%v/metrics/performance", port))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	m := &metrics.PerformanceMetrics{}

	if err := json.NewDecoder(resp.Body).Decode(m); err != nil {
		return nil, fmt.Errorf("failed to parse performance metrics %v", err)
	}

	return m, nil
}

func main() {
	log.Info("running alpha oracle sidecar container")

	dd, err := statsd.New(agentAddr)
	if err != nil {
		log.Fatal("failed to connect to datadog agent", "error", err)
	}

	dd.Namespace = "alphaoracle."

	for range time.Tick(pollInterval) {
		if err := metricsHandler(dd); err != nil {
			log.Error("failed to report metrics", "error", err)
		}
	}
}
