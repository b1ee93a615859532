package initializer

import (
	"github.com/alphaoracle/alphaoracle/utils/env"
)

// Initialize registers the service's required environment
// variables to their default values.
func Initialize() {
	// Service
	env.RegisterDefault("ORACLE_MODE", "DEV")
	env.RegisterDefault("ORACLE_PORT", "8000")
	env.RegisterDefault("LOG_LEVEL", "INFO")

	// Postgres
	env.RegisterDefault("PGDATABASE", "alphaoracle")
	env.RegisterDefault("PGHOST", "127.0.0.1")
	env.RegisterDefault("PGUSER", "postgres")
	env.RegisterDefault("PGPASSWORD", "postgres")

	// Metrics
	env.RegisterDefault("ORACLE_METRICS_PORT", "7777")
	env.RegisterDefault("DD_AGENT_ADDR", "127.0.0.1:8125")

	// Ingestion
	env.RegisterDefault("INGEST_SCHEDULE", "0 0 6 * * *")
	env.RegisterDefault("ALPHA_VANTAGE_URL", "https://www.alphavantage.co/query")
	env.RegisterDefault("FRED_URL", "https://api.stlouisfed.org/fred")
	// free tier allows 5 calls/minute
	env.RegisterDefault("ALPHA_VANTAGE_DELAY", "12s")
	env.RegisterDefault("FRED_DELAY", "1s")
}
