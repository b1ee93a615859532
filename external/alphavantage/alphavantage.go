// Package alphavantage wraps the Alpha Vantage HTTP API. Responses
// arrive with positional field names ("01. symbol", "05. price"), so
// every payload goes through an explicit parse/validate step that
// fails with a ParseError instead of leaking zero values downstream.
package alphavantage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/utils/date"
	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/buger/jsonparser"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
)

const requestTimeout = 10 * time.Second

// Quote is the flat record a GLOBAL_QUOTE response normalizes to.
type Quote struct {
	Ticker        string
	Price         decimal.Decimal
	ChangePercent float64
	Volume        int64
	DataDate      date.Date
}

func (q Quote) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Ticker, validation.Required),
		validation.Field(&q.Volume, validation.Min(0)),
	)
}

// Overview is the subset of a company OVERVIEW response the
// dashboard consumes.
type Overview struct {
	Ticker      string
	CompanyName string
	MarketCap   int64
	PERatio     float64
	Sector      string
	Industry    string
}

// GetQuote fetches and parses the latest quote for a ticker.
func GetQuote(ticker string) (*Quote, error) {
	body, err := get(fmt.Sprintf("%v?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		env.GetVar("ALPHA_VANTAGE_URL"),
		ticker,
		env.GetVar("ALPHA_VANTAGE_API_KEY")))
	if err != nil {
		return nil, err
	}

	return ParseQuote(body)
}

// ParseQuote validates the "Global Quote" envelope and normalizes it.
func ParseQuote(body []byte) (*Quote, error) {
	symbol, err := jsonparser.GetString(body, "Global Quote", "01. symbol")
	if err != nil {
		return nil, oraerrors.ParseError.WithError(errors.Wrap(err, "missing quote symbol"))
	}

	priceStr, err := jsonparser.GetString(body, "Global Quote", "05. price")
	if err != nil {
		return nil, oraerrors.ParseError.WithError(errors.Wrap(err, "missing quote price"))
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, oraerrors.ParseError.WithError(errors.Wrapf(err, "bad quote price %q", priceStr))
	}

	volumeStr, err := jsonparser.GetString(body, "Global Quote", "06. volume")
	if err != nil {
		return nil, oraerrors.ParseError.WithError(errors.Wrap(err, "missing quote volume"))
	}

	volume, err := strconv.ParseInt(volumeStr, 10, 64)
	if err != nil {
		return nil, oraerrors.ParseError.WithError(errors.Wrapf(err, "bad quote volume %q", volumeStr))
	}

	changeStr, err := jsonparser.GetString(body, "Global Quote", "10. change percent")
	if err != nil {
		return nil, oraerrors.ParseError.WithError(errors.Wrap(err, "missing quote change percent"))
	}

	change, err := strconv.ParseFloat(strings.TrimSuffix(changeStr, "%"), 64)
	if err != nil {
		return nil, oraerrors.ParseError.WithError(errors.Wrapf(err, "bad quote change percent %q", changeStr))
	}

	q := &Quote{
		Ticker:        symbol,
		Price:         price,
		ChangePercent: change,
		Volume:        volume,
		DataDate:      date.Today(),
	}

	if err := q.Validate(); err != nil {
		return nil, oraerrors.ParseError.WithError(err)
	}

	return q, nil
}

// GetOverview fetches company fundamentals for a ticker.
func GetOverview(ticker string) (*Overview, error) {
	body, err := get(fmt.Sprintf("%v?function=OVERVIEW&symbol=%s&apikey=%s",
		env.GetVar("ALPHA_VANTAGE_URL"),
		ticker,
		env.GetVar("ALPHA_VANTAGE_API_KEY")))
	if err != nil {
		return nil, err
	}

	return ParseOverview(body)
}

func ParseOverview(body []byte) (*Overview, error) {
	symbol, err := jsonparser.GetString(body, "Symbol")
	if err != nil {
		return nil, oraerrors.ParseError.WithError(errors.Wrap(err, "missing overview symbol"))
	}

	o := &Overview{Ticker: symbol}

	o.CompanyName, _ = jsonparser.GetString(body, "Name")
	o.Sector, _ = jsonparser.GetString(body, "Sector")
	o.Industry, _ = jsonparser.GetString(body, "Industry")

	if s, err := jsonparser.GetString(body, "MarketCapitalization"); err == nil {
		o.MarketCap, _ = strconv.ParseInt(s, 10, 64)
	}
	if s, err := jsonparser.GetString(body, "PERatio"); err == nil {
		o.PERatio, _ = strconv.ParseFloat(s, 64)
	}

	return o, nil
}

func get(url string) ([]byte, error) {
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

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	return body, nil
}
