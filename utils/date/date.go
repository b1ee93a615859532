package date

import (
	"database/sql/driver"
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar day (no time component) stored as a
// Postgres date column.
type Date struct {
	civil.Date
}

func DateOf(t time.Time) Date {
	var d Date
	d.Date.Year, d.Date.Month, d.Date.Day = t.Date()
	return d
}

func Today() Date {
	return DateOf(time.Now().UTC())
}

func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{Date: d}, nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Date.String(), nil
}

func (d *Date) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	t := value.(time.Time)
	if t.IsZero() {
		return nil
	}

	d.Date = civil.DateOf(t)
	return nil
}
