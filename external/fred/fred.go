// Package fred wraps the St. Louis Fed FRED API for latest-value
// observations of the macro series the dashboard tracks.
package fred

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/utils/date"
	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

const requestTimeout = 10 * time.Second

// Observation is the flat record a series observation normalizes to.
type Observation struct {
	IndicatorName string
	Value         float64
	Unit          string
	Trend         string
	Impact        string
	DataDate      date.Date
}

// units per series; FRED reports index levels for CPI and percents
// for the rest of the tracked set
var seriesUnits = map[string]string{
	"GDP":      "%",
	"UNRATE":   "%",
	"CPIAUCSL": "Index",
	"DFF":      "%",
	"DGS10":    "%",
}

func UnitFor(seriesID string) string {
	return seriesUnits[seriesID]
}

// GetLatestObservation fetches the most recent observation of a
// series and labels it with the given indicator name.
func GetLatestObservation(seriesID, indicatorName string) (*Observation, error) {
	url := fmt.Sprintf("%v/series/observations?series_id=%s&api_key=%s&file_type=json&sort_order=desc&limit=1",
		env.GetVar("FRED_URL"),
		seriesID,
		env.GetVar("FRED_API_KEY"))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(url)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := fasthttp.DoTimeout(req, resp, requestTimeout); err != nil {
		return nil, err
	}

	if resp.StatusCode() >= fasthttp.StatusMultipleChoices {
		return nil, fmt.Errorf("status code %v", resp.StatusCode())
	}

	return ParseObservation(resp.Body(), seriesID, indicatorName)
}

// ParseObservation validates an observations payload and normalizes
// its first entry. FRED publishes "." for unavailable values; that is
// a parse failure here, not a zero.
func ParseObservation(body []byte, seriesID, indicatorName string) (*Observation, error) {
	first, _, _, err := jsonparser.Get(body, "observations", "[0]")
	if err != nil {
		return nil, oraerrors.ParseError.WithError(
			errors.Wrapf(err, "no observations for %v", seriesID))
	}

	valueStr, err := jsonparser.GetString(first, "value")
	if err != nil {
		return nil, oraerrors.ParseError.WithError(
			errors.Wrapf(err, "missing observation value for %v", seriesID))
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return nil, oraerrors.ParseError.WithError(
			errors.Wrapf(err, "bad observation value %q for %v", valueStr, seriesID))
	}

	dateStr, err := jsonparser.GetString(first, "date")
	if err != nil {
		return nil, oraerrors.ParseError.WithError(
			errors.Wrapf(err, "missing observation date for %v", seriesID))
	}

	dataDate, err := date.ParseDate(dateStr)
	if err != nil {
		return nil, oraerrors.ParseError.WithError(
			errors.Wrapf(err, "bad observation date %q for %v", dateStr, seriesID))
	}

	return &Observation{
		IndicatorName: indicatorName,
		Value:         value,
		Unit:          UnitFor(seriesID),
		// trend/impact would need historical comparison; the
		// ingestion path stores neutral placeholders
		Trend:    "stable",
		Impact:   "Neutral",
		DataDate: dataDate,
	}, nil
}
