package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alphaoracle/alphaoracle/metrics"
	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/alphaoracle/alphaoracle/utils/log"
)

func freshnessMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metrics.GetFreshnessMetrics()
	if err != nil {
		log.Error("failed to retrieve freshness metrics", "error", err)
		return
	}

	json.NewEncoder(w).Encode(m)
}

func performanceMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metrics.GetPerformanceMetrics()
	if err != nil {
		log.Error("failed to retrieve performance metrics", "error", err)
		return
	}

	json.NewEncoder(w).Encode(m)
}

// Serve the metrics endpoint
func Serve() error {
	port := env.GetVar("ORACLE_METRICS_PORT")
	addr := ":" + port

	log.Info("start serving metrics endpoint")

	router := http.NewServeMux()
	router.HandleFunc("/metrics/freshness", freshnessMetricsHandler)
	router.HandleFunc("/metrics/performance", performanceMetricsHandler)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	return server.ListenAndServe()
}
