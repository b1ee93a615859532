package health

import (
	"time"

	"github.com/alphaoracle/alphaoracle/rest/api"
	"github.com/alphaoracle/alphaoracle/utils"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/alphaoracle/alphaoracle/workers/ingest"
	"github.com/kataras/iris"
)

type Report struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	Mode      string    `json:"mode"`
}

// Get probes the database and reports overall service health. A
// failing probe degrades the report and the status code to 503.
func Get(ctx api.Context) {
	report := Report{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "alpha-oracle",
		Version:   utils.Version,
		Database:  "connected",
		Mode:      "demo",
	}

	if ingest.LiveMode() {
		report.Mode = "live"
	}

	status := iris.StatusOK

	if err := db.DB().Exec("SELECT 1").Error; err != nil {
		report.Status = "degraded"
		report.Database = "disconnected"
		status = iris.StatusServiceUnavailable
	}

	ctx.RespondWithStatus(report, status)
}
