package fred

import (
	"testing"

	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var observationPayload = []byte(`{
	"realtime_start": "2024-02-09",
	"realtime_end": "2024-02-09",
	"observation_start": "1600-01-01",
	"observation_end": "9999-12-31",
	"units": "lin",
	"output_type": 1,
	"file_type": "json",
	"order_by": "observation_date",
	"sort_order": "desc",
	"count": 920,
	"offset": 0,
	"limit": 1,
	"observations": [
		{
			"realtime_start": "2024-02-09",
			"realtime_end": "2024-02-09",
			"date": "2024-01-01",
			"value": "3.8"
		}
	]
}`)

func TestParseObservation(t *testing.T) {
	obs, err := ParseObservation(observationPayload, "UNRATE", "Unemployment Rate")
	require.Nil(t, err)

	assert.Equal(t, "Unemployment Rate", obs.IndicatorName)
	assert.Equal(t, 3.8, obs.Value)
	assert.Equal(t, "%", obs.Unit)
	assert.Equal(t, "stable", obs.Trend)
	assert.Equal(t, "Neutral", obs.Impact)
	assert.Equal(t, "2024-01-01", obs.DataDate.String())
}

func TestParseObservationShapeMismatch(t *testing.T) {
	for _, body := range [][]byte{
		[]byte(`{"observations": []}`),
		[]byte(`{"error_code": 400, "error_message": "Bad Request."}`),
		[]byte(`{"observations": [{"date": "2024-01-01"}]}`),
		[]byte(`{"observations": [{"value": "3.8"}]}`),
	} {
		obs, err := ParseObservation(body, "UNRATE", "Unemployment Rate")
		assert.Nil(t, obs)
		assert.True(t, oraerrors.IsParseError(err), "expected parse error for %s", body)
	}
}

func TestParseObservationMissingValueDot(t *testing.T) {
	// FRED publishes "." for unavailable observations
	obs, err := ParseObservation([]byte(`{
		"observations": [{"date": "2024-01-01", "value": "."}]
	}`), "DGS10", "10-Year Treasury Yield")

	assert.Nil(t, obs)
	assert.True(t, oraerrors.IsParseError(err))
}

func TestUnitFor(t *testing.T) {
	assert.Equal(t, "%", UnitFor("GDP"))
	assert.Equal(t, "%", UnitFor("UNRATE"))
	assert.Equal(t, "Index", UnitFor("CPIAUCSL"))
	assert.Equal(t, "%", UnitFor("DFF"))
	assert.Equal(t, "%", UnitFor("DGS10"))
	assert.Equal(t, "", UnitFor("MYSTERY"))
}
